package usecase

import (
	"facturador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Recompute derives every calculated field of an invoice from its inputs:
//
//	line total   = round2(quantity*unitPrice - lineDiscount)
//	subtotal     = round2(sum of line totals)
//	taxable base = subtotal - globalDiscount  (not re-rounded, not floored)
//	tax amount   = round2(taxableBase * rate / 100)
//	total        = round2(taxableBase + sum of tax amounts)
//
// Rounding happens at each derived field independently (half-up to cents).
// Summing the rounded parts can drift a cent versus rounding once at the end;
// that per-field policy is the documented behavior of the product and the
// seed data depends on it, so it must not be "fixed".
//
// The function is pure: the input invoice and its slices are left untouched,
// zero-valued numeric fields simply compute as zero, and no error is ever
// returned. Negative results (a discount exceeding the extended price, a
// global discount exceeding the subtotal) pass through unclamped.
func Recompute(inv entities.Invoice) entities.Invoice {
	items := make([]entities.LineItem, len(inv.Items))
	subtotal := decimal.Zero
	for i, it := range inv.Items {
		lineTotal := round2(decimal.NewFromFloat(it.Quantity).
			Mul(decimal.NewFromFloat(it.UnitPrice)).
			Sub(decimal.NewFromFloat(it.Discount)))
		it.Total = lineTotal.InexactFloat64()
		items[i] = it
		subtotal = subtotal.Add(lineTotal)
	}
	inv.Items = items

	roundedSubtotal := round2(subtotal)
	inv.Subtotal = roundedSubtotal.InexactFloat64()

	taxableBase := roundedSubtotal.Sub(decimal.NewFromFloat(inv.GlobalDiscount))

	taxes := make([]entities.TaxCharge, len(inv.Taxes))
	taxSum := decimal.Zero
	for i, t := range inv.Taxes {
		amount := round2(taxableBase.
			Mul(decimal.NewFromFloat(t.Rate)).
			Div(decimal.NewFromInt(100)))
		t.Amount = amount.InexactFloat64()
		taxes[i] = t
		taxSum = taxSum.Add(amount)
	}
	inv.Taxes = taxes

	inv.Total = round2(taxableBase.Add(taxSum)).InexactFloat64()
	return inv
}

// round2 rounds half away from zero to cents, which matches the half-up
// policy for the positive amounts invoices carry in practice.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
