package export

import (
	"strconv"
	"strings"

	"facturador/internal/domain/entities"
)

// itemsHeader is the column set of the items table, shared verbatim by the
// report, the workbook "Items" sheet and the tabular export.
var itemsHeader = []string{"Description", "Quantity", "Unit", "Unit Price", "Discount", "Total"}

func itemRecord(it entities.LineItem) []string {
	return []string{
		it.Description,
		formatQuantity(it.Quantity),
		it.Unit,
		formatMoney(it.UnitPrice),
		formatMoney(it.Discount),
		formatMoney(it.Total),
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatQuantity keeps fractional quantities exact without trailing zeros.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatRate renders a tax rate without trailing zeros ("16", "10.5").
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTaxKind(k entities.TaxKind) string {
	return strings.ToUpper(string(k))
}
