// Package export serializes computed invoices into the four download
// encodings the product offers: a paginated PDF report, an XML document, an
// XLSX workbook and a CSV items table.
//
// Renderers never recompute: they serialize the derived fields exactly as
// stored. Feeding them an invoice that skipped the computation engine
// reproduces its stale numbers verbatim; keeping invoices computed is the
// editor's contract, not checked here.
package export

import (
	"errors"
	"fmt"

	"facturador/internal/domain/entities"
)

// Format identifies one export encoding; the value doubles as the file
// extension.
type Format string

const (
	FormatReport   Format = "pdf"
	FormatMarkup   Format = "xml"
	FormatWorkbook Format = "xlsx"
	FormatTabular  Format = "csv"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Document is a rendered invoice ready to be served as a download.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatReport, FormatMarkup, FormatWorkbook, FormatTabular:
		return Format(s), nil
	}
	return "", ErrUnknownFormat
}

// Render serializes a computed invoice in the requested format.
func Render(format Format, inv entities.Invoice) (Document, error) {
	var (
		data        []byte
		contentType string
		err         error
	)

	switch format {
	case FormatReport:
		data, err = RenderReport(inv)
		contentType = "application/pdf"
	case FormatMarkup:
		var text string
		text, err = RenderMarkup(inv)
		data = []byte(text)
		contentType = "application/xml"
	case FormatWorkbook:
		data, err = RenderWorkbook(inv)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatTabular:
		var text string
		text, err = RenderTabular(inv)
		data = []byte(text)
		contentType = "text/csv"
	default:
		return Document{}, ErrUnknownFormat
	}
	if err != nil {
		return Document{}, err
	}

	return Document{
		Filename:    Filename(inv, string(format)),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// Filename is the download naming convention shared by every renderer.
func Filename(inv entities.Invoice, ext string) string {
	return fmt.Sprintf("Invoice_%s-%s.%s", inv.Series, inv.Folio, ext)
}
