package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"facturador/internal/domain/entities"
	"facturador/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvalidInvoiceID    = errors.New("invalid invoice id")
	ErrMissingSeries       = errors.New("missing series")
	ErrMissingFolio        = errors.New("missing folio")
	ErrMissingIssueDate    = errors.New("missing issue date")
	ErrMissingReceiverName = errors.New("missing receiver name")
	ErrAlreadyStamped      = errors.New("invoice already stamped")
)

// Fabricated certification identity used for locally issued stamps. These are
// placeholder values, not a fiscal-authority integration.
const (
	stampAuthoritySerial = "30001000000400002495"
	stampAuthorityID     = "SAT970701NN3"
)

// IInvoiceUseCase exposes the editor-facing invoice operations.
//
// Contract notes:
//   - SaveDraft is the only write path for drafts: it validates the required
//     fields, runs the computation engine and only then upserts, so every
//     invoice that reaches the store satisfies the arithmetic invariants.
//   - Stamp fabricates a local fiscal stamp exactly once per invoice and
//     never touches amounts; renderers downstream rely on that.
//
//go:generate mockgen -destination=../adapter/http/handlers/mocks/mock_usecase.go -package=mocks facturador/internal/usecase IInvoiceUseCase

type IInvoiceUseCase interface {
	SaveDraft(ctx context.Context, draft entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, term string) ([]entities.Invoice, error)
	Stamp(ctx context.Context, id string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	store interfaces.IInvoiceStore
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(store interfaces.IInvoiceStore) *InvoiceUseCase {
	return &InvoiceUseCase{store: store}
}

func (u *InvoiceUseCase) SaveDraft(ctx context.Context, draft entities.Invoice) (entities.Invoice, error) {
	if err := validateDraft(draft); err != nil {
		return entities.Invoice{}, err
	}

	draft.ID = strings.TrimSpace(draft.ID)
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	if draft.Status == "" {
		draft.Status = entities.InvoiceStatusPending
	}

	// A stamp, once issued, survives every later edit. Whatever the editor
	// sent, the stored stamp wins.
	existing, err := u.store.Find(ctx, draft.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if existing.ID != "" && existing.Stamp != nil {
		draft.Stamp = existing.Stamp
	}

	computed := Recompute(draft)
	if err := u.store.Upsert(ctx, computed); err != nil {
		return entities.Invoice{}, err
	}

	log.Debug().
		Str("invoice_id", computed.ID).
		Str("document", computed.Series+"-"+computed.Folio).
		Float64("total", computed.Total).
		Msg("draft saved")
	return computed, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.store.Find(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, term string) ([]entities.Invoice, error) {
	return u.store.List(ctx, strings.TrimSpace(term))
}

func (u *InvoiceUseCase) Stamp(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Stamp != nil {
		return entities.Invoice{}, ErrAlreadyStamped
	}

	inv.Stamp = &entities.FiscalStamp{
		StampID:         uuid.NewString(),
		IssuedAt:        time.Now().UTC(),
		Signature:       fabricateSignature(inv),
		AuthoritySerial: stampAuthoritySerial,
		AuthorityID:     stampAuthorityID,
	}
	if err := u.store.Upsert(ctx, inv); err != nil {
		return entities.Invoice{}, err
	}

	log.Info().
		Str("invoice_id", inv.ID).
		Str("stamp_id", inv.Stamp.StampID).
		Msg("invoice stamped")
	return inv, nil
}

func validateDraft(draft entities.Invoice) error {
	switch {
	case strings.TrimSpace(draft.Series) == "":
		return ErrMissingSeries
	case strings.TrimSpace(draft.Folio) == "":
		return ErrMissingFolio
	case draft.IssueDate.IsZero():
		return ErrMissingIssueDate
	case strings.TrimSpace(draft.Receiver.Name) == "":
		return ErrMissingReceiverName
	}
	return nil
}

// fabricateSignature produces a stable placeholder signature block over the
// document identity and total. It only has to look like a signature.
func fabricateSignature(inv entities.Invoice) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%.2f", inv.ID, inv.Series, inv.Folio, inv.Total)))
	return base64.StdEncoding.EncodeToString(sum[:])
}
