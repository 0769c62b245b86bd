package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/adapter/http/dto"
	"github.com/fieldops/cashflow/internal/domain"
	"github.com/fieldops/cashflow/internal/usecase"
)

type entryServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateEntryInput) (*domain.Entry, error)
	settleFn func(ctx context.Context, id string, paidAt domain.Date) (*domain.Entry, error)
	cancelFn func(ctx context.Context, id string) (*domain.Entry, error)
	listFn   func(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.Entry, error)
}

func (s *entryServiceStub) CreateEntry(ctx context.Context, input usecase.CreateEntryInput) (*domain.Entry, error) {
	return s.createFn(ctx, input)
}

func (s *entryServiceStub) SettleEntry(ctx context.Context, id string, paidAt domain.Date) (*domain.Entry, error) {
	return s.settleFn(ctx, id, paidAt)
}

func (s *entryServiceStub) CancelEntry(ctx context.Context, id string) (*domain.Entry, error) {
	return s.cancelFn(ctx, id)
}

func (s *entryServiceStub) ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.Entry, error) {
	return s.listFn(ctx, input)
}

func newEntryRequest(t *testing.T, method, target, id string, body []byte) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}

func TestEntryHandler_Create_Success(t *testing.T) {
	entry := &domain.Entry{
		ID:        "e1",
		Amount:    decimal.RequireFromString("350.75"),
		Direction: domain.DirectionPay,
		Status:    domain.StatusOpen,
		DueDate:   domain.NewDate(2024, time.April, 15),
	}

	var captured usecase.CreateEntryInput
	handler := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateEntryInput) (*domain.Entry, error) {
			captured = input
			return entry, nil
		},
	})

	body, _ := json.Marshal(dto.CreateEntryRequest{
		Description: "supplier invoice",
		Amount:      decimal.RequireFromString("350.75"),
		Direction:   "PAY",
		DueDate:     domain.NewDate(2024, time.April, 15),
	})

	rec := httptest.NewRecorder()
	handler.Create(rec, newEntryRequest(t, http.MethodPost, "/entries", "", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Direction != domain.DirectionPay {
		t.Fatalf("expected PAY direction, got %s", captured.Direction)
	}

	var resp dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "e1" || resp.Status != "OPEN" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestEntryHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateEntryInput) (*domain.Entry, error) {
			t.Fatal("CreateEntry should not be called for invalid payload")
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.Create(rec, newEntryRequest(t, http.MethodPost, "/entries", "", []byte("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_Settle_WithDate(t *testing.T) {
	paidAt := domain.NewDate(2024, time.April, 18)

	var capturedID string
	var capturedDate domain.Date
	handler := NewEntryHandler(&entryServiceStub{
		settleFn: func(ctx context.Context, id string, d domain.Date) (*domain.Entry, error) {
			capturedID = id
			capturedDate = d
			return &domain.Entry{ID: id, Status: domain.StatusPaid, PaidAt: d}, nil
		},
	})

	body, _ := json.Marshal(dto.SettleEntryRequest{PaidAt: paidAt})
	rec := httptest.NewRecorder()
	handler.Settle(rec, newEntryRequest(t, http.MethodPost, "/entries/e1/settle", "e1", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if capturedID != "e1" || !capturedDate.Equal(paidAt) {
		t.Fatalf("expected settle(e1, %s), got settle(%s, %s)", paidAt, capturedID, capturedDate)
	}
}

func TestEntryHandler_Settle_EmptyBody(t *testing.T) {
	var capturedDate domain.Date
	handler := NewEntryHandler(&entryServiceStub{
		settleFn: func(ctx context.Context, id string, d domain.Date) (*domain.Entry, error) {
			capturedDate = d
			return &domain.Entry{ID: id, Status: domain.StatusPaid}, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.Settle(rec, newEntryRequest(t, http.MethodPost, "/entries/e1/settle", "e1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty body, got %d: %s", rec.Code, rec.Body.String())
	}
	if !capturedDate.IsZero() {
		t.Fatalf("expected zero date passthrough, got %s", capturedDate)
	}
}

func TestEntryHandler_Settle_NotOpen(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		settleFn: func(ctx context.Context, id string, d domain.Date) (*domain.Entry, error) {
			return nil, domain.ErrEntryNotOpen
		},
	})

	rec := httptest.NewRecorder()
	handler.Settle(rec, newEntryRequest(t, http.MethodPost, "/entries/e1/settle", "e1", nil))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestEntryHandler_Cancel(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		cancelFn: func(ctx context.Context, id string) (*domain.Entry, error) {
			return &domain.Entry{ID: id, Status: domain.StatusCanceled}, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.Cancel(rec, newEntryRequest(t, http.MethodPost, "/entries/e1/cancel", "e1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "CANCELED" {
		t.Fatalf("expected CANCELED, got %s", resp.Status)
	}
}

func TestEntryHandler_List(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		listFn: func(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.Entry, error) {
			return []*domain.Entry{{ID: "e1"}, {ID: "e2"}}, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.List(rec, newEntryRequest(t, http.MethodGet, "/entries", "", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListEntriesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("expected 2 entries, got %d", resp.Total)
	}
}
