package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"
)

// Document is the export payload: a title plus heading/body sections.
type Document struct {
	Title    string
	Sections []Section
}

// Section is one exported block of generated content.
type Section struct {
	Heading string
	Body    string
}

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>
</Types>`

	rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>
</Relationships>`

	stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="22"/></w:rPr></w:rPrDefault></w:docDefaults>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:pPr><w:spacing w:after="240"/></w:pPr><w:rPr><w:b/><w:sz w:val="40"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:pPr><w:spacing w:before="240" w:after="120"/></w:pPr><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:pPr><w:spacing w:before="200" w:after="100"/></w:pPr><w:rPr><w:b/><w:sz w:val="26"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/><w:pPr><w:ind w:left="720"/></w:pPr></w:style>
</w:styles>`

	numberingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:abstractNum w:abstractNumId="0"><w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/><w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum>
<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
</w:numbering>`
)

// Build assembles the document into DOCX bytes.
func Build(doc Document) ([]byte, error) {
	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", numberingXML},
		{"word/document.xml", documentXML(doc)},
	}
	for _, part := range parts {
		dst, err := writer.Create(part.name)
		if err != nil {
			return nil, err
		}
		if _, err := dst.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func documentXML(doc Document) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	if title := strings.TrimSpace(doc.Title); title != "" {
		writeParagraph(&sb, "Title", []run{{Text: title}}, false)
	}

	for _, section := range doc.Sections {
		if heading := strings.TrimSpace(section.Heading); heading != "" {
			writeParagraph(&sb, "Heading2", []run{{Text: heading}}, false)
		}
		for _, b := range parseMarkdown(section.Body) {
			switch b.Kind {
			case blockHeading1:
				writeParagraph(&sb, "Heading1", b.Runs, false)
			case blockHeading2:
				writeParagraph(&sb, "Heading2", b.Runs, false)
			case blockBullets:
				for _, item := range b.Items {
					writeParagraph(&sb, "ListParagraph", item, true)
				}
			default:
				writeParagraph(&sb, "", b.Runs, false)
			}
		}
		// Spacer keeps sections visually separated.
		sb.WriteString(`<w:p/>`)
	}

	sb.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr>`)
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func writeParagraph(sb *strings.Builder, style string, runs []run, bullet bool) {
	sb.WriteString(`<w:p>`)
	if style != "" || bullet {
		sb.WriteString(`<w:pPr>`)
		if style != "" {
			sb.WriteString(`<w:pStyle w:val="` + style + `"/>`)
		}
		if bullet {
			sb.WriteString(`<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr>`)
		}
		sb.WriteString(`</w:pPr>`)
	}
	for _, r := range runs {
		sb.WriteString(`<w:r>`)
		if r.Bold {
			sb.WriteString(`<w:rPr><w:b/></w:rPr>`)
		}
		sb.WriteString(`<w:t xml:space="preserve">` + escapeXML(r.Text) + `</w:t>`)
		sb.WriteString(`</w:r>`)
	}
	sb.WriteString(`</w:p>`)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
