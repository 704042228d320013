package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"facturador/internal/domain/entities"
)

func TestRenderTabular_ItemsOnly(t *testing.T) {
	inv := computedTestInvoice()
	inv.Items = append(inv.Items, entities.LineItem{
		Description: "Instalación, configuración", Quantity: 1.5, Unit: "SERV", UnitPrice: 800, Discount: 100, Total: 1100,
	})

	out, err := RenderTabular(inv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	wantHeader := []string{"Description", "Quantity", "Unit", "Unit Price", "Discount", "Total"}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Fatalf("expected header %v, got %v", wantHeader, records[0])
		}
	}
	if records[1][0] != "Workstation laptop" || records[1][5] != "8000.00" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	// the embedded comma survives quoting, the fractional quantity stays exact
	if records[2][0] != "Instalación, configuración" || records[2][1] != "1.5" {
		t.Fatalf("unexpected second row: %v", records[2])
	}

	// no general-data section: nothing but the items table
	if strings.Contains(out, inv.Receiver.Name) || strings.Contains(out, inv.Folio) {
		t.Fatalf("tabular export must carry items only:\n%s", out)
	}
}

func TestRenderTabular_EmptyItems(t *testing.T) {
	inv := computedTestInvoice()
	inv.Items = nil

	out, err := RenderTabular(inv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %v", records)
	}
}
