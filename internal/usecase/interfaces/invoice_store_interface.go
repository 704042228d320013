package interfaces

import (
	"context"

	"facturador/internal/domain/entities"
)

// IInvoiceStore abstracts the ordered invoice collection.
//
// The invoicing service must be able to:
//   - upsert a computed invoice (replace by ID, otherwise insert at the
//     front; listing order is newest-first)
//   - find an invoice by ID (zero-value invoice means not found)
//   - list invoices, optionally filtered case-insensitively against the
//     receiver name, receiver tax id and folio
//   - seed the canonical examples exactly once, surviving restarts

type IInvoiceStore interface {
	Upsert(ctx context.Context, inv entities.Invoice) error
	Find(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, term string) ([]entities.Invoice, error)
	Seed(ctx context.Context, examples []entities.Invoice) error
}
