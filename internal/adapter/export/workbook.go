package export

import (
	"facturador/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	sheetGeneral = "General Data"
	sheetItems   = "Items"
)

// RenderWorkbook produces the XLSX export: a "General Data" sheet of
// attribute/value pairs and an "Items" sheet with one row per line item.
func RenderWorkbook(inv entities.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetGeneral); err != nil {
		return nil, err
	}

	general := [][]interface{}{
		{"Series", inv.Series},
		{"Folio", inv.Folio},
		{"Issue date", inv.IssueDate.Format("2006-01-02")},
		{"Receiver", inv.Receiver.Name},
		{"Receiver tax ID", inv.Receiver.TaxID},
		{"Issuer", inv.Issuer.LegalName},
		{"Issuer tax ID", inv.Issuer.TaxID},
		{"Fiscal regime", inv.Issuer.FiscalRegime},
		{"Subtotal", inv.Subtotal},
		{"Discount", inv.GlobalDiscount},
		{"Total", inv.Total},
		{"Status", string(inv.Status)},
		{"Payment method", inv.PaymentMethod},
		{"Payment conditions", inv.PaymentConditions},
		{"Currency", inv.Currency},
		{"Place of issuance", inv.PlaceOfIssuance},
	}
	for i, row := range general {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetGeneral, cell, &row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(sheetItems); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(itemsHeader))
	for i, h := range itemsHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetItems, "A1", &header); err != nil {
		return nil, err
	}
	for i, it := range inv.Items {
		row := []interface{}{it.Description, it.Quantity, it.Unit, it.UnitPrice, it.Discount, it.Total}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetItems, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
