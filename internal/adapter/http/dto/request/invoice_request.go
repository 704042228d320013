package request

import (
	"time"

	"facturador/internal/domain/entities"
)

type IssuerRequest struct {
	TaxID        string `json:"tax_id"`
	LegalName    string `json:"legal_name"`
	FiscalRegime string `json:"fiscal_regime"`
}

type ReceiverRequest struct {
	TaxID string `json:"tax_id"`
	Name  string `json:"name" binding:"required"`
}

type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
}

type TaxChargeRequest struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
	Kind string  `json:"kind" binding:"omitempty,oneof=transferred retained"`
}

// InvoiceRequest is the draft payload the editor sends on every save.
//
// The binding rules are the editor-level validation contract: a missing
// series, folio, issue date or receiver name blocks the save before anything
// is computed or persisted. Derived fields (line totals, subtotal, total,
// tax amounts) are intentionally absent; the computation engine is the only
// writer of those.
type InvoiceRequest struct {
	ID                string             `json:"id"`
	Series            string             `json:"series" binding:"required"`
	Folio             string             `json:"folio" binding:"required"`
	IssueDate         time.Time          `json:"issue_date" binding:"required"`
	PaymentTerms      string             `json:"payment_terms"`
	PaymentConditions string             `json:"payment_conditions"`
	PaymentMethod     string             `json:"payment_method"`
	Currency          string             `json:"currency"`
	PlaceOfIssuance   string             `json:"place_of_issuance"`
	Status            string             `json:"status" binding:"omitempty,oneof=pending active cancelled"`
	Issuer            IssuerRequest      `json:"issuer"`
	Receiver          ReceiverRequest    `json:"receiver" binding:"required"`
	Items             []LineItemRequest  `json:"items"`
	Taxes             []TaxChargeRequest `json:"taxes"`
	GlobalDiscount    float64            `json:"global_discount"`
	Notes             string             `json:"notes"`
	RelatedDocumentID string             `json:"related_document_id"`
}

// ToInvoice maps the payload onto the domain draft handed to the use case.
func (r InvoiceRequest) ToInvoice() entities.Invoice {
	inv := entities.Invoice{
		ID:                r.ID,
		Series:            r.Series,
		Folio:             r.Folio,
		IssueDate:         r.IssueDate,
		PaymentTerms:      r.PaymentTerms,
		PaymentConditions: r.PaymentConditions,
		PaymentMethod:     r.PaymentMethod,
		Currency:          r.Currency,
		PlaceOfIssuance:   r.PlaceOfIssuance,
		Status:            entities.InvoiceStatus(r.Status),
		Issuer: entities.Issuer{
			TaxID:        r.Issuer.TaxID,
			LegalName:    r.Issuer.LegalName,
			FiscalRegime: r.Issuer.FiscalRegime,
		},
		Receiver: entities.Receiver{
			TaxID: r.Receiver.TaxID,
			Name:  r.Receiver.Name,
		},
		GlobalDiscount:    r.GlobalDiscount,
		Notes:             r.Notes,
		RelatedDocumentID: r.RelatedDocumentID,
	}
	for _, it := range r.Items {
		inv.Items = append(inv.Items, entities.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
		})
	}
	for _, t := range r.Taxes {
		kind := entities.TaxKind(t.Kind)
		if kind == "" {
			kind = entities.TaxKindTransferred
		}
		inv.Taxes = append(inv.Taxes, entities.TaxCharge{
			Name: t.Name,
			Rate: t.Rate,
			Kind: kind,
		})
	}
	return inv
}
