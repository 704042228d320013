package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRenderWorkbook_TwoSheets(t *testing.T) {
	data, err := RenderWorkbook(computedTestInvoice())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "General Data" || sheets[1] != "Items" {
		t.Fatalf("expected sheets [General Data, Items], got %v", sheets)
	}
}

func TestRenderWorkbook_GeneralDataPairs(t *testing.T) {
	data, err := RenderWorkbook(computedTestInvoice())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	cases := []struct {
		cell string
		want string
	}{
		{"A1", "Series"},
		{"B1", "A"},
		{"A2", "Folio"},
		{"B2", "1001"},
		{"A9", "Subtotal"},
		{"B9", "8000"},
		{"A11", "Total"},
		{"B11", "8700"},
		{"A12", "Status"},
		{"B12", "active"},
	}
	for _, tc := range cases {
		got, err := f.GetCellValue("General Data", tc.cell)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.cell, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.cell, tc.want, got)
		}
	}
}

func TestRenderWorkbook_ItemsRows(t *testing.T) {
	data, err := RenderWorkbook(computedTestInvoice())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Items")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 item row, got %d", len(rows))
	}
	if rows[0][0] != "Description" || rows[0][5] != "Total" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "Workstation laptop" || rows[1][1] != "4" || rows[1][5] != "8000" {
		t.Fatalf("unexpected item row: %v", rows[1])
	}
}
