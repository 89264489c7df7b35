package docparse

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz" // Lightweight PDF renderer
	"github.com/nguyenthenguyen/docx"
)

// Hyperlink is a link recovered from a document alongside its text.
type Hyperlink struct {
	Label string
	URL   string
}

// Document is the plain-text view of an uploaded resume file.
type Document struct {
	Text  string
	Links []Hyperlink
}

var (
	textURLRe      = regexp.MustCompile(`https?://\S+`)
	xmlTagRe       = regexp.MustCompile(`<[^>]+>`)
	relationshipRe = regexp.MustCompile(`<Relationship\b[^>]*>`)
	relTargetRe    = regexp.MustCompile(`Target="(https?://[^"]+)"`)
)

// SupportedExtension reports whether filename has a file type Parse handles
// natively. Anything else falls back to plain-text decoding.
func SupportedExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".docx":
		return "docx"
	case ".txt", "":
		return "txt"
	default:
		return ""
	}
}

// Parse extracts text and hyperlinks from a resume file. The format is
// chosen by filename extension; unknown extensions are decoded as plain
// text.
func Parse(data []byte, filename string) (Document, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return parsePDF(data)
	case ".docx":
		return parseDOCX(data)
	default:
		return parseText(data), nil
	}
}

func parsePDF(data []byte) (Document, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var text strings.Builder
	var links []Hyperlink
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			return Document{}, fmt.Errorf("failed to read page %d: %w", i, err)
		}
		text.WriteString(pageText)
		text.WriteString("\n")
		links = append(links, textLinks(pageText)...)
	}

	return Document{Text: text.String(), Links: links}, nil
}

func parseDOCX(data []byte) (Document, error) {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer reader.Close()

	text := flattenDocumentXML(reader.Editable().GetContent())

	links, err := docxRelationshipLinks(data)
	if err != nil {
		return Document{}, err
	}

	return Document{Text: text, Links: links}, nil
}

func parseText(data []byte) Document {
	text := string(data)
	return Document{Text: text, Links: textLinks(text)}
}

// textLinks finds URLs mentioned in plain text.
func textLinks(text string) []Hyperlink {
	var links []Hyperlink
	for _, url := range textURLRe.FindAllString(text, -1) {
		links = append(links, Hyperlink{Label: "Profile", URL: url})
	}
	return links
}

// flattenDocumentXML turns WordprocessingML into plain text: paragraph ends
// become newlines, remaining tags are dropped and entities unescaped.
func flattenDocumentXML(content string) string {
	text := strings.ReplaceAll(content, "</w:p>", "\n")
	text = xmlTagRe.ReplaceAllString(text, "")
	return html.UnescapeString(text)
}

// docxRelationshipLinks reads hyperlink targets out of the document
// relationship part, where Word stores URLs instead of inlining them in the
// body XML.
func docxRelationshipLinks(data []byte) ([]Hyperlink, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read DOCX archive: %w", err)
	}

	var links []Hyperlink
	for _, file := range archive.File {
		if file.Name != "word/_rels/document.xml.rels" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open relationships: %w", err)
		}
		rels, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read relationships: %w", err)
		}

		for _, rel := range relationshipRe.FindAllString(string(rels), -1) {
			if !strings.Contains(rel, "hyperlink") {
				continue
			}
			if m := relTargetRe.FindStringSubmatch(rel); m != nil {
				links = append(links, Hyperlink{Label: "Profile", URL: m[1]})
			}
		}
	}
	return links, nil
}
