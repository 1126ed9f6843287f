package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales-metrics-service/internal/sales/core/domain"
	"sales-metrics-service/internal/sales/core/ports"
	"sales-metrics-service/internal/sales/core/usecase"
)

// fakeSnapshot serves fixed data through every read port.
type fakeSnapshot struct {
	fakeSalesReader
	fakeHistoryReader
	fakeCatalogReader
}

func loaderFor(snap *fakeSnapshot, got *[]domain.RawSale) ports.SnapshotLoader {
	return func(raw []domain.RawSale) ports.Snapshot {
		*got = raw
		snap.ReadFn = func(ctx context.Context, f ports.SalesFilter) ([]domain.RawSale, error) {
			return raw, nil
		}
		return snap
	}
}

func TestAnalyzeSnapshot_EmptyBatch(t *testing.T) {
	var loaded []domain.RawSale
	uc := usecase.NewAnalyzeSnapshotUseCase(loaderFor(&fakeSnapshot{}, &loaded), usecase.DefaultConfig(), 10)

	_, err := uc.Execute(context.Background(), usecase.AnalyzeInput{})
	if !errors.Is(err, usecase.ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
	if loaded != nil {
		t.Fatalf("loader must not run for an empty batch")
	}
}

func TestAnalyzeSnapshot_BatchTooLarge(t *testing.T) {
	var loaded []domain.RawSale
	uc := usecase.NewAnalyzeSnapshotUseCase(loaderFor(&fakeSnapshot{}, &loaded), usecase.DefaultConfig(), 1)

	records := []domain.RawSale{
		sale("1", "2024-01-01", "a", "A", "1", "COMPLETED"),
		sale("2", "2024-01-01", "a", "A", "1", "COMPLETED"),
	}
	_, err := uc.Execute(context.Background(), usecase.AnalyzeInput{Records: records})
	if !errors.Is(err, usecase.ErrBatchTooLarge) {
		t.Fatalf("expected ErrBatchTooLarge, got %v", err)
	}
}

func TestAnalyzeSnapshot_InvalidReferenceTime(t *testing.T) {
	var loaded []domain.RawSale
	uc := usecase.NewAnalyzeSnapshotUseCase(loaderFor(&fakeSnapshot{}, &loaded), usecase.DefaultConfig(), 0)

	_, err := uc.Execute(context.Background(), usecase.AnalyzeInput{
		Records: []domain.RawSale{sale("1", "2024-01-01", "a", "A", "1", "COMPLETED")},
		Now:     "yesterday",
	})
	if !errors.Is(err, usecase.ErrInvalidReferenceTime) {
		t.Fatalf("expected ErrInvalidReferenceTime, got %v", err)
	}
}

func TestAnalyzeSnapshot_Success(t *testing.T) {
	snap := &fakeSnapshot{
		fakeHistoryReader: fakeHistoryReader{History: []domain.CustomerOrderHistory{
			{CustomerID: "c1", Name: "Ana", TotalOrders: 3, LastOrderAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}},
	}
	var loaded []domain.RawSale
	uc := usecase.NewAnalyzeSnapshotUseCase(loaderFor(snap, &loaded), usecase.DefaultConfig(), 100)

	records := []domain.RawSale{
		sale("1", "2024-01-05T10:00:00Z", "iFood", "Centro", "40", "COMPLETED"),
		sale("2", "2024-01-06T10:00:00Z", "iFood", "Centro", "60", "delivered"),
		sale("2", "2024-01-07T10:00:00Z", "iFood", "Centro", "60", "COMPLETED"),
		sale("", "2024-01-07T10:00:00Z", "iFood", "Centro", "60", "COMPLETED"),
	}
	res, err := uc.Execute(context.Background(), usecase.AnalyzeInput{
		Records: records,
		Now:     "2024-03-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(loaded) != 4 {
		t.Fatalf("expected the full batch handed to the loader, got %d", len(loaded))
	}
	if res.Received != 4 || res.Accepted != 2 || len(res.Rejected) != 2 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.Dashboard == nil || res.Dashboard.Overview.Orders != 2 {
		t.Fatalf("unexpected dashboard: %+v", res.Dashboard)
	}
	// no window, so the series is monthly
	if res.Dashboard.TimeSeries.Granularity != domain.Monthly {
		t.Fatalf("expected monthly series, got %s", res.Dashboard.TimeSeries.Granularity)
	}
	// reference time pinned to 2024-03-01: Ana idle 60 days
	if len(res.Dashboard.LostCustomers) != 1 || res.Dashboard.LostCustomers[0].DaysSinceLastOrder != 60 {
		t.Fatalf("unexpected lost customers: %+v", res.Dashboard.LostCustomers)
	}
}
