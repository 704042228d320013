package export

import (
	"bytes"
	"encoding/csv"

	"facturador/internal/domain/entities"
)

// RenderTabular produces the CSV export: the items table only, with a header
// row, same columns as the workbook "Items" sheet.
func RenderTabular(inv entities.Invoice) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(itemsHeader); err != nil {
		return "", err
	}
	for _, it := range inv.Items {
		if err := w.Write(itemRecord(it)); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
