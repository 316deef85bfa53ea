package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}
	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractDocx(t *testing.T) {
	data := buildDocx(t, `<w:p><w:r><w:t>Senior engineer with ten years of Go.</w:t></w:r></w:p><w:p><w:r><w:t>Shipped large systems.</w:t></w:r></w:p>`)

	res, err := Extract(context.Background(), data, "resume.docx", "")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(res.Text, "Senior engineer") {
		t.Fatalf("missing text, got %q", res.Text)
	}
	if !strings.Contains(res.Text, "\nShipped") {
		t.Fatalf("expected paragraph newline, got %q", res.Text)
	}
	if res.Chars != len(res.Text) {
		t.Fatalf("chars mismatch: %d vs %d", res.Chars, len(res.Text))
	}
}

func TestExtractDocxDeclaredAsZip(t *testing.T) {
	data := buildDocx(t, `<w:p><w:r><w:t>Plenty of extractable resume text here.</w:t></w:r></w:p>`)

	if _, err := Extract(context.Background(), data, "resume.bin", "application/zip"); err != nil {
		t.Fatalf("expected zip-declared docx to extract, got %v", err)
	}
}

func TestExtractShortDocxFails(t *testing.T) {
	data := buildDocx(t, `<w:p><w:r><w:t>too short</w:t></w:r></w:p>`)

	_, err := Extract(context.Background(), data, "resume.docx", "")
	if !errors.Is(err, ErrNoExtractableText) {
		t.Fatalf("expected ErrNoExtractableText, got %v", err)
	}
}

func TestExtractScannedPDFFails(t *testing.T) {
	// A PDF-named payload with no parsable text layer.
	_, err := Extract(context.Background(), []byte("%PDF-1.4 scanned image only"), "resume.pdf", "application/pdf")
	if !errors.Is(err, ErrNoExtractableText) {
		t.Fatalf("expected ErrNoExtractableText, got %v", err)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := Extract(context.Background(), []byte("plain text resume"), "resume.txt", "text/plain")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractPlainZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = Extract(context.Background(), buf.Bytes(), "notes.zip", "application/zip")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat for plain zip, got %v", err)
	}
}
