package usecase

import (
	"testing"

	"facturador/internal/domain/entities"
)

func TestRecompute_ReferenceScenarios(t *testing.T) {
	cases := []struct {
		name          string
		quantity      float64
		unitPrice     float64
		discount      float64
		wantLineTotal float64
		wantSubtotal  float64
		wantTaxAmount float64
		wantTotal     float64
	}{
		{name: "four units with global discount", quantity: 4, unitPrice: 2000, discount: 500, wantLineTotal: 8000, wantSubtotal: 8000, wantTaxAmount: 1200, wantTotal: 8700},
		{name: "three units no discount", quantity: 3, unitPrice: 2000, discount: 0, wantLineTotal: 6000, wantSubtotal: 6000, wantTaxAmount: 960, wantTotal: 6960},
		{name: "two units with global discount", quantity: 2, unitPrice: 4500, discount: 1000, wantLineTotal: 9000, wantSubtotal: 9000, wantTaxAmount: 1280, wantTotal: 9280},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := Recompute(entities.Invoice{
				Items:          []entities.LineItem{{Quantity: tc.quantity, UnitPrice: tc.unitPrice}},
				Taxes:          []entities.TaxCharge{{Name: "IVA", Rate: 16, Kind: entities.TaxKindTransferred}},
				GlobalDiscount: tc.discount,
			})

			if got := inv.Items[0].Total; got != tc.wantLineTotal {
				t.Fatalf("line total: expected %v, got %v", tc.wantLineTotal, got)
			}
			if inv.Subtotal != tc.wantSubtotal {
				t.Fatalf("subtotal: expected %v, got %v", tc.wantSubtotal, inv.Subtotal)
			}
			if got := inv.Taxes[0].Amount; got != tc.wantTaxAmount {
				t.Fatalf("tax amount: expected %v, got %v", tc.wantTaxAmount, got)
			}
			if inv.Total != tc.wantTotal {
				t.Fatalf("total: expected %v, got %v", tc.wantTotal, inv.Total)
			}
		})
	}
}

func TestRecompute_EmptyItems(t *testing.T) {
	inv := Recompute(entities.Invoice{})

	if inv.Subtotal != 0 {
		t.Fatalf("expected subtotal 0, got %v", inv.Subtotal)
	}
	if inv.Total != 0 {
		t.Fatalf("expected total 0, got %v", inv.Total)
	}
}

func TestRecompute_RoundsHalfUpPerField(t *testing.T) {
	// 3 * 0.335 = 1.005 rounds up to 1.01 at the line, and the subtotal works
	// off the rounded line total, not the raw product.
	inv := Recompute(entities.Invoice{
		Items: []entities.LineItem{{Quantity: 3, UnitPrice: 0.335}},
	})

	if got := inv.Items[0].Total; got != 1.01 {
		t.Fatalf("expected line total 1.01, got %v", got)
	}
	if inv.Subtotal != 1.01 {
		t.Fatalf("expected subtotal 1.01, got %v", inv.Subtotal)
	}
}

func TestRecompute_LineDiscountSubtractsBeforeRounding(t *testing.T) {
	inv := Recompute(entities.Invoice{
		Items: []entities.LineItem{{Quantity: 2, UnitPrice: 10.504, Discount: 0.01}},
	})

	// 2*10.504 - 0.01 = 20.998 -> 21.00
	if got := inv.Items[0].Total; got != 21.00 {
		t.Fatalf("expected line total 21.00, got %v", got)
	}
}

func TestRecompute_NegativeTotalsPassThrough(t *testing.T) {
	inv := Recompute(entities.Invoice{
		Items:          []entities.LineItem{{Quantity: 1, UnitPrice: 100, Discount: 250}},
		Taxes:          []entities.TaxCharge{{Name: "IVA", Rate: 16}},
		GlobalDiscount: 50,
	})

	if got := inv.Items[0].Total; got != -150 {
		t.Fatalf("expected line total -150, got %v", got)
	}
	if inv.Subtotal != -150 {
		t.Fatalf("expected subtotal -150, got %v", inv.Subtotal)
	}
	// taxable base -200, 16% of it is -32, total -232
	if got := inv.Taxes[0].Amount; got != -32 {
		t.Fatalf("expected tax amount -32, got %v", got)
	}
	if inv.Total != -232 {
		t.Fatalf("expected total -232, got %v", inv.Total)
	}
}

func TestRecompute_TaxAppliesAfterGlobalDiscount(t *testing.T) {
	inv := Recompute(entities.Invoice{
		Items:          []entities.LineItem{{Quantity: 1, UnitPrice: 1000}},
		Taxes:          []entities.TaxCharge{{Name: "IVA", Rate: 16}},
		GlobalDiscount: 100,
	})

	// 16% of 900, never of 1000.
	if got := inv.Taxes[0].Amount; got != 144 {
		t.Fatalf("expected tax amount 144, got %v", got)
	}
	if inv.Total != 1044 {
		t.Fatalf("expected total 1044, got %v", inv.Total)
	}
}

func TestRecompute_RetainedTaxSumsWithSignedAmount(t *testing.T) {
	inv := Recompute(entities.Invoice{
		Items: []entities.LineItem{{Quantity: 1, UnitPrice: 1000}},
		Taxes: []entities.TaxCharge{
			{Name: "IVA", Rate: 16, Kind: entities.TaxKindTransferred},
			{Name: "ISR", Rate: -10, Kind: entities.TaxKindRetained},
		},
	})

	if got := inv.Taxes[1].Amount; got != -100 {
		t.Fatalf("expected retained amount -100, got %v", got)
	}
	if inv.Total != 1060 {
		t.Fatalf("expected total 1060, got %v", inv.Total)
	}
}

func TestRecompute_DoesNotMutateInput(t *testing.T) {
	original := entities.Invoice{
		Items: []entities.LineItem{{Quantity: 4, UnitPrice: 2000}},
		Taxes: []entities.TaxCharge{{Name: "IVA", Rate: 16}},
	}

	_ = Recompute(original)

	if original.Items[0].Total != 0 {
		t.Fatalf("input line item was mutated: %v", original.Items[0].Total)
	}
	if original.Taxes[0].Amount != 0 {
		t.Fatalf("input tax charge was mutated: %v", original.Taxes[0].Amount)
	}
	if original.Subtotal != 0 || original.Total != 0 {
		t.Fatalf("input invoice was mutated: %+v", original)
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	once := Recompute(entities.Invoice{
		Items:          []entities.LineItem{{Quantity: 2, UnitPrice: 4500}},
		Taxes:          []entities.TaxCharge{{Name: "IVA", Rate: 16}},
		GlobalDiscount: 1000,
	})
	twice := Recompute(once)

	if once.Total != twice.Total || once.Subtotal != twice.Subtotal {
		t.Fatalf("recompute is not idempotent: %v vs %v", once, twice)
	}
}
