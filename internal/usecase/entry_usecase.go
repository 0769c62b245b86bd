package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
	"github.com/fieldops/cashflow/internal/infrastructure/metrics"
)

// EntryUseCase handles manual ledger entry management: the back-office
// write path that feeds the ledger the engine later reads. Settling an
// entry is what turns expected movement into realized movement.
type EntryUseCase struct {
	entryRepo   EntryRepository
	accountRepo AccountRepository
	idGen       IDGenerator
	clock       Clock
	metrics     *metrics.Metrics
}

// NewEntryUseCase creates a new EntryUseCase. m may be nil.
func NewEntryUseCase(entryRepo EntryRepository, accountRepo AccountRepository, idGen IDGenerator, clock Clock, m *metrics.Metrics) *EntryUseCase {
	return &EntryUseCase{
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
		idGen:       idGen,
		clock:       clock,
		metrics:     m,
	}
}

// CreateEntryInput represents input for a manual ledger entry.
type CreateEntryInput struct {
	Description string
	Amount      decimal.Decimal
	Direction   domain.Direction
	DueDate     domain.Date
	AccountID   string
}

// CreateEntry records a manual payable or receivable in OPEN state.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := domain.ValidateDirection(input.Direction); err != nil {
		return nil, err
	}
	if input.DueDate.IsZero() {
		return nil, domain.ErrInvalidDate
	}
	if input.AccountID != "" {
		if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	entry := &domain.Entry{
		ID:          uc.idGen.Generate(),
		Description: input.Description,
		Amount:      input.Amount,
		Direction:   input.Direction,
		Status:      domain.StatusOpen,
		DueDate:     input.DueDate,
		AccountID:   input.AccountID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesCreated.WithLabelValues(string(entry.Direction)).Inc()
	}

	return entry, nil
}

// SettleEntry marks an open entry as paid. When paidAt is zero the current
// day is used.
func (uc *EntryUseCase) SettleEntry(ctx context.Context, id string, paidAt domain.Date) (*domain.Entry, error) {
	entry, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.StatusOpen && entry.Status != domain.StatusPartial {
		return nil, domain.ErrEntryNotOpen
	}

	if paidAt.IsZero() {
		paidAt = uc.clock.Today()
	}

	now := time.Now().UTC()
	if err := uc.entryRepo.UpdateStatus(ctx, id, domain.StatusPaid, paidAt, now); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesSettled.Inc()
	}

	entry.Status = domain.StatusPaid
	entry.PaidAt = paidAt
	entry.UpdatedAt = now
	return entry, nil
}

// CancelEntry voids an open entry. Canceled entries are excluded from all
// balance math.
func (uc *EntryUseCase) CancelEntry(ctx context.Context, id string) (*domain.Entry, error) {
	entry, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.StatusOpen && entry.Status != domain.StatusPartial {
		return nil, domain.ErrEntryNotOpen
	}

	now := time.Now().UTC()
	if err := uc.entryRepo.UpdateStatus(ctx, id, domain.StatusCanceled, domain.Date{}, now); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesCanceled.Inc()
	}

	entry.Status = domain.StatusCanceled
	entry.UpdatedAt = now
	return entry, nil
}

// ListEntriesInput represents input for listing entries.
type ListEntriesInput struct {
	Limit  int
	Offset int
}

// ListEntries lists ledger entries with pagination.
func (uc *EntryUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.Entry, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.entryRepo.List(ctx, limit, offset)
}
