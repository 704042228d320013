package export

import (
	"encoding/xml"
	"time"

	"facturador/internal/domain/entities"
)

// The markup document mirrors the invoice fields one to one, with line items
// repeated under an Items container. Going through encoding/xml means every
// free-text field (descriptions, names, notes) gets its reserved characters
// escaped, which the screens this replaces never did.

type markupInvoice struct {
	XMLName           xml.Name       `xml:"Invoice"`
	ID                string         `xml:"Id"`
	Series            string         `xml:"Series"`
	Folio             string         `xml:"Folio"`
	IssueDate         string         `xml:"IssueDate"`
	Status            string         `xml:"Status"`
	PaymentTerms      string         `xml:"PaymentTerms"`
	PaymentConditions string         `xml:"PaymentConditions"`
	PaymentMethod     string         `xml:"PaymentMethod"`
	Currency          string         `xml:"Currency"`
	PlaceOfIssuance   string         `xml:"PlaceOfIssuance"`
	Issuer            markupIssuer   `xml:"Issuer"`
	Receiver          markupReceiver `xml:"Receiver"`
	Items             markupItems    `xml:"Items"`
	Taxes             markupTaxes    `xml:"Taxes"`
	GlobalDiscount    string         `xml:"GlobalDiscount"`
	Subtotal          string         `xml:"Subtotal"`
	Total             string         `xml:"Total"`
	Stamp             *markupStamp   `xml:"FiscalStamp,omitempty"`
	Notes             string         `xml:"Notes,omitempty"`
	RelatedDocumentID string         `xml:"RelatedDocumentId,omitempty"`
}

type markupIssuer struct {
	TaxID        string `xml:"TaxId"`
	LegalName    string `xml:"LegalName"`
	FiscalRegime string `xml:"FiscalRegime"`
}

type markupReceiver struct {
	TaxID string `xml:"TaxId"`
	Name  string `xml:"Name"`
}

type markupItems struct {
	Items []markupItem `xml:"Item"`
}

type markupItem struct {
	Description string `xml:"Description"`
	Quantity    string `xml:"Quantity"`
	Unit        string `xml:"Unit"`
	UnitPrice   string `xml:"UnitPrice"`
	Discount    string `xml:"Discount"`
	Total       string `xml:"Total"`
}

type markupTaxes struct {
	Taxes []markupTax `xml:"Tax"`
}

type markupTax struct {
	Name   string `xml:"Name"`
	Rate   string `xml:"Rate"`
	Kind   string `xml:"Kind"`
	Amount string `xml:"Amount"`
}

type markupStamp struct {
	StampID         string `xml:"StampId"`
	IssuedAt        string `xml:"IssuedAt"`
	Signature       string `xml:"Signature"`
	AuthoritySerial string `xml:"AuthoritySerial"`
	AuthorityID     string `xml:"AuthorityId"`
}

// RenderMarkup produces the XML export of a computed invoice.
func RenderMarkup(inv entities.Invoice) (string, error) {
	doc := markupInvoice{
		ID:                inv.ID,
		Series:            inv.Series,
		Folio:             inv.Folio,
		IssueDate:         inv.IssueDate.Format(time.RFC3339),
		Status:            string(inv.Status),
		PaymentTerms:      inv.PaymentTerms,
		PaymentConditions: inv.PaymentConditions,
		PaymentMethod:     inv.PaymentMethod,
		Currency:          inv.Currency,
		PlaceOfIssuance:   inv.PlaceOfIssuance,
		Issuer: markupIssuer{
			TaxID:        inv.Issuer.TaxID,
			LegalName:    inv.Issuer.LegalName,
			FiscalRegime: inv.Issuer.FiscalRegime,
		},
		Receiver: markupReceiver{
			TaxID: inv.Receiver.TaxID,
			Name:  inv.Receiver.Name,
		},
		GlobalDiscount:    formatMoney(inv.GlobalDiscount),
		Subtotal:          formatMoney(inv.Subtotal),
		Total:             formatMoney(inv.Total),
		Notes:             inv.Notes,
		RelatedDocumentID: inv.RelatedDocumentID,
	}

	for _, it := range inv.Items {
		doc.Items.Items = append(doc.Items.Items, markupItem{
			Description: it.Description,
			Quantity:    formatQuantity(it.Quantity),
			Unit:        it.Unit,
			UnitPrice:   formatMoney(it.UnitPrice),
			Discount:    formatMoney(it.Discount),
			Total:       formatMoney(it.Total),
		})
	}
	for _, t := range inv.Taxes {
		doc.Taxes.Taxes = append(doc.Taxes.Taxes, markupTax{
			Name:   t.Name,
			Rate:   formatRate(t.Rate),
			Kind:   formatTaxKind(t.Kind),
			Amount: formatMoney(t.Amount),
		})
	}
	if inv.Stamp != nil {
		doc.Stamp = &markupStamp{
			StampID:         inv.Stamp.StampID,
			IssuedAt:        inv.Stamp.IssuedAt.Format(time.RFC3339),
			Signature:       inv.Stamp.Signature,
			AuthoritySerial: inv.Stamp.AuthoritySerial,
			AuthorityID:     inv.Stamp.AuthorityID,
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(out) + "\n", nil
}
