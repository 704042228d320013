package store

import (
	"context"
	"encoding/json"
	"testing"

	"facturador/internal/domain/entities"
	"facturador/internal/usecase"
)

// fakeKV is a map-backed collaborator. Seed/restart tests need state that
// survives across store instances, which a mock cannot give cheaply.
type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Read(_ context.Context, key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Write(_ context.Context, key, value string) error {
	f.data[key] = value
	return nil
}

func mustNewStore(t *testing.T, kv *fakeKV) *InvoiceStore {
	t.Helper()
	s, err := NewInvoiceStore(context.Background(), kv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestInvoiceStore_UpsertOrdering(t *testing.T) {
	ctx := context.Background()
	s := mustNewStore(t, newFakeKV())

	first := entities.Invoice{ID: "inv-1", Folio: "1001"}
	second := entities.Invoice{ID: "inv-2", Folio: "1002"}
	if err := s.Upsert(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Upsert(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := s.List(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "inv-2" || list[1].ID != "inv-1" {
		t.Fatalf("expected newest-first ordering, got %+v", list)
	}
}

func TestInvoiceStore_UpsertReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	s := mustNewStore(t, newFakeKV())

	_ = s.Upsert(ctx, entities.Invoice{ID: "inv-1", Folio: "1001"})
	_ = s.Upsert(ctx, entities.Invoice{ID: "inv-2", Folio: "1002"})
	if err := s.Upsert(ctx, entities.Invoice{ID: "inv-1", Folio: "1001-B"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, _ := s.List(ctx, "")
	if len(list) != 2 {
		t.Fatalf("upsert of an existing id must not grow the store, got %d", len(list))
	}
	// replaced in place: inv-1 keeps its old position at the back
	if list[1].ID != "inv-1" || list[1].Folio != "1001-B" {
		t.Fatalf("expected in-place replacement, got %+v", list)
	}
}

func TestInvoiceStore_UpsertIdempotent(t *testing.T) {
	ctx := context.Background()
	s := mustNewStore(t, newFakeKV())

	inv := entities.Invoice{ID: "inv-1", Folio: "1001", Total: 8700}
	_ = s.Upsert(ctx, inv)
	_ = s.Upsert(ctx, inv)

	list, _ := s.List(ctx, "")
	if len(list) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(list))
	}
	if list[0].Total != 8700 {
		t.Fatalf("unexpected field change: %+v", list[0])
	}
}

func TestInvoiceStore_FindAbsent(t *testing.T) {
	s := mustNewStore(t, newFakeKV())

	inv, err := s.Find(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.ID != "" {
		t.Fatalf("expected zero-value invoice, got %+v", inv)
	}
}

func TestInvoiceStore_ListFilters(t *testing.T) {
	ctx := context.Background()
	s := mustNewStore(t, newFakeKV())

	_ = s.Upsert(ctx, entities.Invoice{ID: "inv-1", Folio: "1001", Receiver: entities.Receiver{Name: "Comercializadora El Roble", TaxID: "CACX7605101P8"}})
	_ = s.Upsert(ctx, entities.Invoice{ID: "inv-2", Folio: "2001", Receiver: entities.Receiver{Name: "Juan Martinez", TaxID: "MAHJ280603MS9"}})

	cases := []struct {
		term string
		want []string
	}{
		{"roble", []string{"inv-1"}},
		{"MARTINEZ", []string{"inv-2"}},
		{"cacx", []string{"inv-1"}},
		{"1001", []string{"inv-1"}},
		{"inv", nil},
		{"20", []string{"inv-2"}},
	}
	for _, tc := range cases {
		list, err := s.List(ctx, tc.term)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != len(tc.want) {
			t.Fatalf("term %q: expected %d matches, got %+v", tc.term, len(tc.want), list)
		}
		for i, id := range tc.want {
			if list[i].ID != id {
				t.Fatalf("term %q: expected %v, got %+v", tc.term, tc.want, list)
			}
		}
	}
}

func TestInvoiceStore_SeedIdempotentSameProcess(t *testing.T) {
	ctx := context.Background()
	s := mustNewStore(t, newFakeKV())
	seeds := usecase.SeedInvoices()

	if err := s.Seed(ctx, seeds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Seed(ctx, seeds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, _ := s.List(ctx, "")
	if len(list) != len(seeds) {
		t.Fatalf("expected %d invoices after double seed, got %d", len(seeds), len(list))
	}
}

func TestInvoiceStore_SeedIdempotentAcrossRestart(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	seeds := usecase.SeedInvoices()

	s1 := mustNewStore(t, kv)
	if err := s1.Seed(ctx, seeds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// new store over the same collaborator, as after a process restart
	s2 := mustNewStore(t, kv)
	if err := s2.Seed(ctx, seeds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, _ := s2.List(ctx, "")
	if len(list) != len(seeds) {
		t.Fatalf("expected %d invoices after restart seed, got %d", len(seeds), len(list))
	}
}

func TestInvoiceStore_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()

	s1 := mustNewStore(t, kv)
	_ = s1.Upsert(ctx, entities.Invoice{ID: "inv-1", Folio: "1001", Total: 8700})

	s2 := mustNewStore(t, kv)
	inv, err := s2.Find(ctx, "inv-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.ID != "inv-1" || inv.Total != 8700 {
		t.Fatalf("expected persisted invoice, got %+v", inv)
	}
}

func TestInvoiceStore_MalformedPayloadStartsEmpty(t *testing.T) {
	kv := newFakeKV()
	kv.data["invoices"] = "{not json"

	s := mustNewStore(t, kv)

	list, err := s.List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty store, got %+v", list)
	}
}

func TestInvoiceStore_MirrorHoldsFullCollection(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	s := mustNewStore(t, kv)

	_ = s.Upsert(ctx, entities.Invoice{ID: "inv-1"})
	_ = s.Upsert(ctx, entities.Invoice{ID: "inv-2"})

	var persisted []entities.Invoice
	if err := json.Unmarshal([]byte(kv.data["invoices"]), &persisted); err != nil {
		t.Fatalf("mirror is not valid JSON: %v", err)
	}
	if len(persisted) != 2 {
		t.Fatalf("expected full collection in mirror, got %+v", persisted)
	}
}
