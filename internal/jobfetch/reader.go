package jobfetch

import (
	"regexp"
	"strings"
)

const contentMarker = "Markdown Content:"

var (
	titleLine   = regexp.MustCompile(`(?m)^Title:\s*(.+)$`)
	urlLine     = regexp.MustCompile(`(?m)^URL Source:.*$`)
	imageMarkup = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkMarkup  = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	listMarker  = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	headMarker  = regexp.MustCompile(`(?m)^#{1,6}\s*`)
)

// parseReaderMarkdown splits a reader-proxy response into title and body.
// The proxy prefixes a "Title:" line and separates the page text with a
// "Markdown Content:" marker; everything before the marker is metadata.
func parseReaderMarkdown(md string) (title, body string) {
	if m := titleLine.FindStringSubmatch(md); m != nil {
		title = strings.TrimSpace(m[1])
	}

	body = md
	if idx := strings.Index(md, contentMarker); idx >= 0 {
		body = md[idx+len(contentMarker):]
	}
	body = urlLine.ReplaceAllString(body, "")
	body = imageMarkup.ReplaceAllString(body, "")
	body = linkMarkup.ReplaceAllString(body, "$1")
	body = listMarker.ReplaceAllString(body, "")
	body = headMarker.ReplaceAllString(body, "")
	return title, collapseWhitespace(body)
}
