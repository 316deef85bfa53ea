package util

import (
	"regexp"
	"strings"
)

var unsafeFileChars = regexp.MustCompile(`[^\w.-]+`)

// ExportFileName derives a filesystem-safe attachment name from a document
// title: lowercased, unsafe runs collapsed to underscores, ".docx" appended.
func ExportFileName(title string) string {
	name := strings.ToLower(strings.TrimSpace(title))
	if name == "" {
		name = "document"
	}
	name = unsafeFileChars.ReplaceAllString(name, "_")
	if name == "" || strings.Trim(name, "_") == "" {
		name = "document"
	}
	return name + ".docx"
}
