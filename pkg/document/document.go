// Package document extracts plain text from résumé and job-description files.
package document

import (
	"bytes"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Supported file extensions.
const (
	FormatPDF  = ".pdf"
	FormatDOCX = ".docx"
	FormatTXT  = ".txt"
)

var (
	// ErrUnsupportedFormat is returned for files that are not pdf, docx or txt.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrUnreadable is returned when a supported file yields no text.
	ErrUnreadable = errors.New("unreadable document")
)

//nolint:gochecknoglobals // Static vocabulary
var supportedFormats = []string{FormatPDF, FormatDOCX, FormatTXT}

//nolint:gochecknoglobals // Compiled once
var (
	docxBreaks = strings.NewReplacer("</w:p>", "\n", "<w:br/>", "\n", "<w:tab/>", "\t")
	xmlTag     = regexp.MustCompile(`<[^>]+>`)
)

// SupportedFormats lists the accepted file extensions.
func SupportedFormats() (formats []string) {
	formats = append([]string{}, supportedFormats...)
	return formats
}

// IsSupported reports whether filename has an accepted extension.
func IsSupported(filename string) (ok bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range supportedFormats {
		if ext == f {
			ok = true
			return ok
		}
	}
	return ok
}

// ParseFile reads the file at path and extracts its text.
func ParseFile(path string) (text string, err error) {
	if !IsSupported(path) {
		err = errors.Wrapf(ErrUnsupportedFormat, "%s (supported: %s)", filepath.Ext(path), strings.Join(supportedFormats, ", "))
		return text, err
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return text, err
	}

	text, err = Parse(path, data)
	return text, err
}

// Parse extracts text from data, choosing the decoder by the extension of filename.
func Parse(filename string, data []byte) (text string, err error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case FormatTXT:
		text = decodeText(data)
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	default:
		err = errors.Wrapf(ErrUnsupportedFormat, "%q (supported: %s)", ext, strings.Join(supportedFormats, ", "))
		return text, err
	}

	if err != nil {
		err = errors.Wrapf(ErrUnreadable, "%s: %s", filename, err.Error())
		return text, err
	}

	if strings.TrimSpace(text) == "" {
		err = errors.Wrapf(ErrUnreadable, "%s: no text could be extracted", filename)
		return text, err
	}

	return text, err
}

// decodeText reads data as UTF-8, falling back to Latin-1.
func decodeText(data []byte) (text string) {
	if utf8.Valid(data) {
		text = string(data)
		return text
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		text = string(data)
		return text
	}

	text = string(decoded)
	return text
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("malformed pdf: %v", r)
		}
	}()

	var reader *pdf.Reader
	reader, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		err = errors.Wrap(err, "failed to read pdf")
		return text, err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		var pageText string
		pageText, err = page.GetPlainText(nil)
		if err != nil {
			err = errors.Wrapf(err, "failed to extract text from page %d", i)
			return text, err
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	text = sb.String()
	return text, err
}

func extractDOCX(data []byte) (text string, err error) {
	var doc *docx.ReplaceDocx
	doc, err = docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		err = errors.Wrap(err, "failed to parse docx")
		return text, err
	}
	defer doc.Close()

	text = docxText(doc.Editable().GetContent())
	return text, err
}

// docxText turns WordprocessingML into plain text, one paragraph per line.
func docxText(content string) (text string) {
	text = docxBreaks.Replace(content)
	text = xmlTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = strings.TrimSpace(text)
	return text
}
