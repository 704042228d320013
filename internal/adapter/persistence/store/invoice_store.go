package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"facturador/internal/domain/entities"
	"facturador/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// collectionKey is the single scoped key under which the whole invoice
// collection lives in the key-value collaborator.
const collectionKey = "invoices"

// InvoiceStore owns the ordered invoice collection (newest first) and mirrors
// it into an injected key-value collaborator on every mutation.
//
// The mirror is whole-collection: each mutating call serializes the full
// slice and writes it under collectionKey. Reads are served from memory, so
// an upsert followed by a find/list always observes the upsert.

type InvoiceStore struct {
	kv interfaces.IKeyValueStore

	mu       sync.Mutex
	invoices []entities.Invoice
}

var _ interfaces.IInvoiceStore = (*InvoiceStore)(nil)

// NewInvoiceStore loads the persisted collection. A missing key starts empty;
// a payload that fails to parse is discarded and also starts empty (recovered
// locally, logged, never surfaced). Only a failing read is an error.
func NewInvoiceStore(ctx context.Context, kv interfaces.IKeyValueStore) (*InvoiceStore, error) {
	s := &InvoiceStore{kv: kv}

	payload, ok, err := kv.Read(ctx, collectionKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal([]byte(payload), &s.invoices); err != nil {
			log.Warn().Err(err).Msg("persisted invoice collection is unreadable, starting empty")
			s.invoices = nil
		}
	}
	return s, nil
}

// Upsert replaces the invoice with the same ID in place, or inserts the
// invoice at the front so listing stays newest-first.
func (s *InvoiceStore) Upsert(ctx context.Context, inv entities.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.invoices {
		if s.invoices[i].ID == inv.ID {
			s.invoices[i] = inv
			replaced = true
			break
		}
	}
	if !replaced {
		s.invoices = append([]entities.Invoice{inv}, s.invoices...)
	}
	return s.flush(ctx)
}

// Find returns the zero-value invoice when the ID is unknown.
func (s *InvoiceStore) Find(ctx context.Context, id string) (entities.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return entities.Invoice{}, nil
}

// List returns invoices in store order. A non-empty term filters
// case-insensitively against receiver name, receiver tax id and folio.
func (s *InvoiceStore) List(ctx context.Context, term string) ([]entities.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if term == "" {
		return append([]entities.Invoice(nil), s.invoices...), nil
	}

	needle := strings.ToLower(term)
	matched := []entities.Invoice{}
	for _, inv := range s.invoices {
		if strings.Contains(strings.ToLower(inv.Receiver.Name), needle) ||
			strings.Contains(strings.ToLower(inv.Receiver.TaxID), needle) ||
			strings.Contains(strings.ToLower(inv.Folio), needle) {
			matched = append(matched, inv)
		}
	}
	return matched, nil
}

// Seed appends every example whose ID is not present yet, in the given order.
// Seeding an already-seeded store (same process or a later restart over the
// same collaborator) is a no-op and skips the mirror write entirely.
func (s *InvoiceStore) Seed(ctx context.Context, examples []entities.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make(map[string]struct{}, len(s.invoices))
	for _, inv := range s.invoices {
		known[inv.ID] = struct{}{}
	}

	added := 0
	for _, example := range examples {
		if _, ok := known[example.ID]; ok {
			continue
		}
		s.invoices = append(s.invoices, example)
		known[example.ID] = struct{}{}
		added++
	}
	if added == 0 {
		return nil
	}

	log.Info().Int("count", added).Msg("seeded example invoices")
	return s.flush(ctx)
}

func (s *InvoiceStore) flush(ctx context.Context) error {
	payload, err := json.Marshal(s.invoices)
	if err != nil {
		return err
	}
	return s.kv.Write(ctx, collectionKey, string(payload))
}
