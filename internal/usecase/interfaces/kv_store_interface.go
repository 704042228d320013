package interfaces

import "context"

// IKeyValueStore is the scoped key-value collaborator the invoice store
// mirrors its collection into (one fixed key holds the whole serialized
// collection).
//
// Required contract:
//   - Read returns ok=false when the key was never written.
//   - Write replaces the full value; no partial-write semantics are assumed.
//
//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mock_interfaces facturador/internal/usecase/interfaces IKeyValueStore,IInvoiceStore

type IKeyValueStore interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key string, value string) error
}
