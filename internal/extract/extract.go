package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	// Anything shorter is treated as an unreadable scan or empty file.
	minExtractedChars = 20
)

var (
	// ErrUnsupportedFormat means the upload is neither a PDF nor a DOCX.
	ErrUnsupportedFormat = errors.New("unsupported file type, use PDF or DOCX")
	// ErrNoExtractableText means the file parsed but held no usable text layer.
	ErrNoExtractableText = errors.New("no readable text in file")
)

// Result is the extracted plain text plus its length.
type Result struct {
	Text  string
	Chars int
}

// Extract pulls plain text from an uploaded résumé. Dispatch is by declared
// MIME type and filename suffix, not content inspection; a mis-named file
// with correct content is rejected.
func Extract(ctx context.Context, data []byte, fileName, mimeType string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var (
		text string
		err  error
	)
	switch {
	case isPDF(fileName, mimeType):
		text, err = extractPDF(data)
	case isDOCX(fileName, mimeType, data):
		text, err = extractDOCX(data)
	default:
		return Result{}, ErrUnsupportedFormat
	}
	if err != nil {
		return Result{}, err
	}

	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if len(text) < minExtractedChars {
		return Result{}, ErrNoExtractableText
	}
	return Result{Text: text, Chars: len(text)}, nil
}

func isPDF(fileName, mimeType string) bool {
	if strings.Contains(cleanMime(mimeType), "pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(fileName), ".pdf")
}

func isDOCX(fileName, mimeType string, data []byte) bool {
	mime := cleanMime(mimeType)
	if mime == mimeDOCX || strings.Contains(mime, "word") {
		return true
	}
	// Browsers sometimes report DOCX as a bare zip.
	if mime == "application/zip" && hasWordDocument(data) {
		return true
	}
	lower := strings.ToLower(fileName)
	switch filepath.Ext(lower) {
	case ".docx", ".doc":
		return true
	}
	return false
}

func cleanMime(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", ErrNoExtractableText
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", ErrNoExtractableText
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", ErrNoExtractableText
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNoExtractableText
	}
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return "", ErrNoExtractableText
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if normalizeZipName(f.Name) == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", ErrNoExtractableText
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", ErrNoExtractableText
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", ErrNoExtractableText
	}

	return stripDocxXML(string(raw)), nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func hasWordDocument(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if normalizeZipName(f.Name) == "word/document.xml" {
			return true
		}
	}
	return false
}

func normalizeZipName(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}
