package response

import (
	"time"

	"facturador/internal/domain/entities"
)

type IssuerResponse struct {
	TaxID        string `json:"tax_id"`
	LegalName    string `json:"legal_name"`
	FiscalRegime string `json:"fiscal_regime"`
}

type ReceiverResponse struct {
	TaxID string `json:"tax_id"`
	Name  string `json:"name"`
}

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

type TaxChargeResponse struct {
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	Kind   string  `json:"kind"`
	Amount float64 `json:"amount"`
}

type FiscalStampResponse struct {
	StampID         string    `json:"stamp_id"`
	IssuedAt        time.Time `json:"issued_at"`
	Signature       string    `json:"signature"`
	AuthoritySerial string    `json:"authority_serial"`
	AuthorityID     string    `json:"authority_id"`
}

type InvoiceResponse struct {
	ID                string               `json:"id"`
	Series            string               `json:"series"`
	Folio             string               `json:"folio"`
	IssueDate         time.Time            `json:"issue_date"`
	PaymentTerms      string               `json:"payment_terms"`
	PaymentConditions string               `json:"payment_conditions"`
	PaymentMethod     string               `json:"payment_method"`
	Currency          string               `json:"currency"`
	PlaceOfIssuance   string               `json:"place_of_issuance"`
	Status            string               `json:"status"`
	Issuer            IssuerResponse       `json:"issuer"`
	Receiver          ReceiverResponse     `json:"receiver"`
	Items             []LineItemResponse   `json:"items"`
	Taxes             []TaxChargeResponse  `json:"taxes"`
	GlobalDiscount    float64              `json:"global_discount"`
	Subtotal          float64              `json:"subtotal"`
	Total             float64              `json:"total"`
	Stamp             *FiscalStampResponse `json:"stamp,omitempty"`
	Notes             string               `json:"notes,omitempty"`
	RelatedDocumentID string               `json:"related_document_id,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:                inv.ID,
		Series:            inv.Series,
		Folio:             inv.Folio,
		IssueDate:         inv.IssueDate,
		PaymentTerms:      inv.PaymentTerms,
		PaymentConditions: inv.PaymentConditions,
		PaymentMethod:     inv.PaymentMethod,
		Currency:          inv.Currency,
		PlaceOfIssuance:   inv.PlaceOfIssuance,
		Status:            string(inv.Status),
		Issuer: IssuerResponse{
			TaxID:        inv.Issuer.TaxID,
			LegalName:    inv.Issuer.LegalName,
			FiscalRegime: inv.Issuer.FiscalRegime,
		},
		Receiver: ReceiverResponse{
			TaxID: inv.Receiver.TaxID,
			Name:  inv.Receiver.Name,
		},
		Items:             []LineItemResponse{},
		Taxes:             []TaxChargeResponse{},
		GlobalDiscount:    inv.GlobalDiscount,
		Subtotal:          inv.Subtotal,
		Total:             inv.Total,
		Notes:             inv.Notes,
		RelatedDocumentID: inv.RelatedDocumentID,
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			Total:       it.Total,
		})
	}
	for _, t := range inv.Taxes {
		resp.Taxes = append(resp.Taxes, TaxChargeResponse{
			Name:   t.Name,
			Rate:   t.Rate,
			Kind:   string(t.Kind),
			Amount: t.Amount,
		})
	}
	if inv.Stamp != nil {
		resp.Stamp = &FiscalStampResponse{
			StampID:         inv.Stamp.StampID,
			IssuedAt:        inv.Stamp.IssuedAt,
			Signature:       inv.Stamp.Signature,
			AuthoritySerial: inv.Stamp.AuthoritySerial,
			AuthorityID:     inv.Stamp.AuthorityID,
		}
	}
	return resp
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
