package usecase

import (
	"time"

	"facturador/internal/domain/entities"
)

// SeedInvoices returns the canonical example set guaranteed present after the
// first load of an empty store.
//
// IDs are fixed literals on purpose: store seeding is keyed by ID, so stable
// IDs make the seed idempotent across process restarts, not just within one.
// Derived fields are produced by the engine itself rather than hardcoded.
func SeedInvoices() []entities.Invoice {
	return []entities.Invoice{
		Recompute(entities.Invoice{
			ID:                "c1a7e6d0-0f5b-4f7e-9b1a-3d2c8a94e001",
			Series:            "A",
			Folio:             "1001",
			IssueDate:         time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			PaymentTerms:      "30 days",
			PaymentConditions: "Single payment",
			PaymentMethod:     "Wire transfer",
			Currency:          "MXN",
			PlaceOfIssuance:   "Guadalajara, Jalisco",
			Status:            entities.InvoiceStatusActive,
			Issuer:            seedIssuer,
			Receiver:          entities.Receiver{TaxID: "CACX7605101P8", Name: "Comercializadora El Roble SA de CV"},
			Items: []entities.LineItem{
				{Description: "Workstation laptop 14\"", Quantity: 4, Unit: "PZA", UnitPrice: 2000},
			},
			Taxes:          []entities.TaxCharge{{Name: "IVA", Rate: 16, Kind: entities.TaxKindTransferred}},
			GlobalDiscount: 500,
		}),
		Recompute(entities.Invoice{
			ID:                "c1a7e6d0-0f5b-4f7e-9b1a-3d2c8a94e002",
			Series:            "A",
			Folio:             "1002",
			IssueDate:         time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
			PaymentTerms:      "15 days",
			PaymentConditions: "Single payment",
			PaymentMethod:     "Cash",
			Currency:          "MXN",
			PlaceOfIssuance:   "Guadalajara, Jalisco",
			Status:            entities.InvoiceStatusPending,
			Issuer:            seedIssuer,
			Receiver:          entities.Receiver{TaxID: "MAHJ280603MS9", Name: "Juan Martinez Hernandez"},
			Items: []entities.LineItem{
				{Description: "On-site network installation", Quantity: 3, Unit: "SERV", UnitPrice: 2000},
			},
			Taxes: []entities.TaxCharge{{Name: "IVA", Rate: 16, Kind: entities.TaxKindTransferred}},
		}),
		Recompute(entities.Invoice{
			ID:                "c1a7e6d0-0f5b-4f7e-9b1a-3d2c8a94e003",
			Series:            "B",
			Folio:             "2001",
			IssueDate:         time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			PaymentTerms:      "30 days",
			PaymentConditions: "Two installments",
			PaymentMethod:     "Wire transfer",
			Currency:          "MXN",
			PlaceOfIssuance:   "Guadalajara, Jalisco",
			Status:            entities.InvoiceStatusActive,
			Issuer:            seedIssuer,
			Receiver:          entities.Receiver{TaxID: "OIGA830910BZ4", Name: "Grupo Industrial Aguascalientes SA"},
			Items: []entities.LineItem{
				{Description: "Color laser printer", Quantity: 2, Unit: "PZA", UnitPrice: 4500},
			},
			Taxes:          []entities.TaxCharge{{Name: "IVA", Rate: 16, Kind: entities.TaxKindTransferred}},
			GlobalDiscount: 1000,
		}),
	}
}

var seedIssuer = entities.Issuer{
	TaxID:        "TSO991022PB6",
	LegalName:    "Tecnologia y Soluciones de Occidente SA de CV",
	FiscalRegime: "601",
}
