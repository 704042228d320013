package entities

import "time"

// InvoiceStatus represents the lifecycle of an invoice.
//
// Domain notes:
//   - The status is a flat enum; no transition rules are enforced by this
//     service. Cancelling or re-activating an invoice is an editor decision.

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusActive    InvoiceStatus = "active"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// TaxKind distinguishes taxes charged to the receiver (transferred) from
// taxes withheld by the receiver (retained). Both sum into the total with
// their signed amount as computed.

type TaxKind string

const (
	TaxKindTransferred TaxKind = "transferred"
	TaxKindRetained    TaxKind = "retained"
)

// Issuer is the business emitting the invoice.
type Issuer struct {
	TaxID        string `json:"tax_id"`
	LegalName    string `json:"legal_name"`
	FiscalRegime string `json:"fiscal_regime"`
}

// Receiver is the party being billed.
type Receiver struct {
	TaxID string `json:"tax_id"`
	Name  string `json:"name"`
}

// LineItem is one billed product or service row.
//
// Total is derived (quantity*unit_price - discount, rounded to cents) and is
// only trustworthy after the invoice went through usecase.Recompute. Negative
// totals are allowed: a discount larger than the extended price passes
// through unclamped.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// TaxCharge is one named, rated tax applied to the taxable base
// (subtotal - global discount). Amount is derived.
type TaxCharge struct {
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	Kind   TaxKind `json:"kind"`
	Amount float64 `json:"amount"`
}

// FiscalStamp is the certification record attached to an invoice.
//
// It stands in for an external certification event: once attached it is
// immutable and carried unchanged through later edits, never recomputed.
type FiscalStamp struct {
	StampID         string    `json:"stamp_id"`
	IssuedAt        time.Time `json:"issued_at"`
	Signature       string    `json:"signature"`
	AuthoritySerial string    `json:"authority_serial"`
	AuthorityID     string    `json:"authority_id"`
}

// Invoice is the full billing document persisted by the service.
//
// Storage model (DynamoDB):
//   - the whole collection is mirrored under a single payload key; identity
//     within the collection is ID.
//
// Monetary representation:
//   - amounts are float64 rounded to cents by the computation engine; the
//     derived fields (line totals, tax amounts, Subtotal, Total) must never
//     be set by callers directly.
//
// Series+Folio form the human document number and are NOT unique by design;
// ID is the only identity.
type Invoice struct {
	ID                string        `json:"id"`
	Series            string        `json:"series"`
	Folio             string        `json:"folio"`
	IssueDate         time.Time     `json:"issue_date"`
	PaymentTerms      string        `json:"payment_terms"`
	PaymentConditions string        `json:"payment_conditions"`
	PaymentMethod     string        `json:"payment_method"`
	Currency          string        `json:"currency"`
	PlaceOfIssuance   string        `json:"place_of_issuance"`
	Status            InvoiceStatus `json:"status"`
	Issuer            Issuer        `json:"issuer"`
	Receiver          Receiver      `json:"receiver"`
	Items             []LineItem    `json:"items"`
	Taxes             []TaxCharge   `json:"taxes"`
	GlobalDiscount    float64       `json:"global_discount"`
	Subtotal          float64       `json:"subtotal"`
	Total             float64       `json:"total"`
	Stamp             *FiscalStamp  `json:"stamp,omitempty"`
	Notes             string        `json:"notes,omitempty"`
	RelatedDocumentID string        `json:"related_document_id,omitempty"`
}
