package export

import (
	"bytes"
	"fmt"

	"facturador/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
)

// Vertical cursor threshold (mm on an A4 page) checked once, after the items
// table: past it the Taxes/Fiscal Stamp sections start on a fresh page. The
// report deliberately uses this single fixed-threshold overflow check instead
// of flow layout.
const overflowThresholdY = 240.0

// Items table column widths, mm. Sum is 190 (A4 width minus 10mm margins).
var reportColWidths = []float64{68, 20, 18, 28, 26, 30}

// RenderReport produces the printable PDF report of a computed invoice.
func RenderReport(inv entities.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	// Core fonts are cp1252; free text (names, descriptions) goes through
	// the translator so accented characters survive.
	w := &reportWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	w.headerBand(fmt.Sprintf("Invoice %s-%s", inv.Series, inv.Folio))

	w.sectionTitle("General Data")
	w.field("Issue date", inv.IssueDate.Format("2006-01-02"))
	w.field("Status", string(inv.Status))
	w.field("Receiver", inv.Receiver.Name)
	w.field("Receiver tax ID", inv.Receiver.TaxID)
	w.field("Payment method", inv.PaymentMethod)
	w.field("Payment conditions", inv.PaymentConditions)
	w.field("Currency", inv.Currency)
	w.field("Place of issuance", inv.PlaceOfIssuance)

	w.sectionTitle("Issuer")
	w.field("Legal name", inv.Issuer.LegalName)
	w.field("Tax ID", inv.Issuer.TaxID)
	w.field("Fiscal regime", inv.Issuer.FiscalRegime)

	w.sectionTitle("Totals")
	w.field("Subtotal", formatMoney(inv.Subtotal))
	w.field("Discount", formatMoney(inv.GlobalDiscount))
	w.boldField("Total", formatMoney(inv.Total))

	w.itemsTable(inv.Items)

	if pdf.GetY() > overflowThresholdY {
		pdf.AddPage()
	}

	if len(inv.Taxes) > 0 {
		w.sectionTitle("Taxes")
		for _, t := range inv.Taxes {
			line := fmt.Sprintf("%s (%s%%): %s (%s)", t.Name, formatRate(t.Rate), formatMoney(t.Amount), formatTaxKind(t.Kind))
			pdf.CellFormat(0, 6, w.tr(line), "", 1, "L", false, 0, "")
		}
	}

	if inv.Stamp != nil {
		w.sectionTitle("Fiscal Stamp")
		w.field("Stamp ID", inv.Stamp.StampID)
		w.field("Authority serial", inv.Stamp.AuthoritySerial)
		w.field("Issued at", inv.Stamp.IssuedAt.Format("2006-01-02 15:04:05"))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type reportWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (w *reportWriter) headerBand(title string) {
	w.pdf.SetFillColor(31, 78, 121)
	w.pdf.SetTextColor(255, 255, 255)
	w.pdf.SetFont("Helvetica", "B", 16)
	w.pdf.CellFormat(0, 14, w.tr(title), "", 1, "C", true, 0, "")
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.SetFont("Helvetica", "", 10)
	w.pdf.Ln(2)
}

func (w *reportWriter) sectionTitle(title string) {
	w.pdf.Ln(2)
	w.pdf.SetFont("Helvetica", "B", 12)
	w.pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	w.pdf.SetFont("Helvetica", "", 10)
}

func (w *reportWriter) field(label, value string) {
	w.pdf.SetFont("Helvetica", "B", 10)
	w.pdf.CellFormat(45, 6, label+":", "", 0, "L", false, 0, "")
	w.pdf.SetFont("Helvetica", "", 10)
	w.pdf.CellFormat(0, 6, w.tr(value), "", 1, "L", false, 0, "")
}

func (w *reportWriter) boldField(label, value string) {
	w.pdf.SetFont("Helvetica", "B", 10)
	w.pdf.CellFormat(45, 6, label+":", "", 0, "L", false, 0, "")
	w.pdf.CellFormat(0, 6, w.tr(value), "", 1, "L", false, 0, "")
	w.pdf.SetFont("Helvetica", "", 10)
}

func (w *reportWriter) itemsTable(items []entities.LineItem) {
	w.sectionTitle("Line Items")

	w.pdf.SetFillColor(220, 220, 220)
	w.pdf.SetFont("Helvetica", "B", 9)
	for i, h := range itemsHeader {
		w.pdf.CellFormat(reportColWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	w.pdf.Ln(-1)

	w.pdf.SetFont("Helvetica", "", 9)
	for _, it := range items {
		record := itemRecord(it)
		for i, cell := range record {
			align := "R"
			if i == 0 || i == 2 {
				align = "L"
			}
			w.pdf.CellFormat(reportColWidths[i], 6, w.tr(cell), "1", 0, align, false, 0, "")
		}
		w.pdf.Ln(-1)
	}
}
