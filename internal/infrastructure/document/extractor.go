// Package document extracts plain text from uploaded legal documents.
// Supported formats: PDF (via ledongthuc/pdf), DOCX (the OOXML zip
// container), and plain text.  Extraction works on in-memory payloads; size
// limits are enforced by the caller before the bytes reach this package.
package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
)

// SupportedExtensions lists the file extensions Extract accepts, without the
// leading dot.
var SupportedExtensions = []string{"pdf", "docx", "doc", "txt"}

// Format returns the lowercased extension of filename without the leading
// dot, or "unknown" when there is none.  Used as a metric label.
func Format(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return "unknown"
	}
	return ext
}

// Extract dispatches on the file extension of filename and returns the
// document's plain text, already cleaned.  Unknown extensions return
// CodeUnsupportedFormat; undecodable payloads return CodeDocumentUnreadable.
func Extract(filename string, data []byte) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	var (
		text string
		err  error
	)
	switch ext {
	case "pdf":
		text, err = extractPDF(data)
	case "docx", "doc":
		text, err = extractDOCX(data)
	case "txt":
		text = string(data)
	default:
		return "", errors.Newf(errors.CodeUnsupportedFormat,
			"unsupported document format %q", ext)
	}
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, errors.CodeDocumentUnreadable, "failed to open PDF")
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeDocumentUnreadable, "failed to extract PDF text")
	}

	var b strings.Builder
	if _, err := io.Copy(&b, plain); err != nil {
		return "", errors.Wrap(err, errors.CodeDocumentUnreadable, "failed to read PDF text")
	}
	return b.String(), nil
}

// docx paragraph text lives in w:t runs inside w:p paragraphs of
// word/document.xml.  The decoder below collects character data of w:t
// elements and emits a newline per closed paragraph.
func extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, errors.CodeDocumentUnreadable, "failed to open DOCX container")
	}

	var doc *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New(errors.CodeDocumentUnreadable, "DOCX container has no word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeDocumentUnreadable, "failed to open DOCX document part")
	}
	defer rc.Close()

	var (
		b      strings.Builder
		inText bool
	)
	decoder := xml.NewDecoder(rc)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrap(err, errors.CodeDocumentUnreadable, "malformed DOCX document XML")
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

// CleanText normalizes extracted text: NUL bytes are dropped and all runs of
// whitespace collapse to single spaces.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	return strings.Join(strings.Fields(text), " ")
}
