package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// ------------------------------------------------------------
// METADATA
// ------------------------------------------------------------

func TestSalesRepository_ListStores(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{int64(1), "Centro", "Recife", "PE", true, true}},
				{values: []any{int64(2), "Norte", nil, nil, nil, false}},
			}}, nil
		},
	}

	stores, err := NewSalesRepository(db).ListStores(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.queries[0].query, "FROM stores") {
		t.Fatalf("unexpected query:\n%s", db.queries[0].query)
	}
	if len(stores) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(stores))
	}
	if s := stores[0]; s.Name != "Centro" || s.City != "Recife" || s.State != "PE" || !s.Active || !s.Own {
		t.Fatalf("unexpected first store: %+v", s)
	}
	if s := stores[1]; s.City != "" || s.Active || s.Own {
		t.Fatalf("expected nulls to read as zero values, got %+v", s)
	}
}

func TestSalesRepository_ListChannels(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{int64(3), "Balcão", "P"}},
				{values: []any{int64(4), "iFood", "D"}},
			}}, nil
		},
	}

	channels, err := NewSalesRepository(db).ListChannels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(channels) != 2 || channels[0].Type != "P" || channels[1].Name != "iFood" || channels[1].Type != "D" {
		t.Fatalf("unexpected channels: %+v", channels)
	}
}

func TestSalesRepository_ListCustomers(t *testing.T) {
	last := time.Date(2024, 4, 2, 18, 0, 0, 0, time.UTC)
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				{values: []any{"42", "Ana", "ana@example.com", nil, last}},
				{values: []any{"43", "", nil, nil, nil}},
			}}, nil
		},
	}

	customers, err := NewSalesRepository(db).ListCustomers(context.Background(), 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := db.queries[0]
	if !strings.Contains(q.query, "LIMIT $1") || len(q.args) != 1 || q.args[0] != 25 {
		t.Fatalf("expected limit as $1, got %v in:\n%s", q.args, q.query)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
	if c := customers[0]; c.ID != "42" || c.Email != "ana@example.com" || c.LastPurchase == nil || !c.LastPurchase.Equal(last) {
		t.Fatalf("unexpected first customer: %+v", c)
	}
	if c := customers[1]; c.Name != "N/A" || c.LastPurchase != nil {
		t.Fatalf("unexpected second customer: %+v", c)
	}
}

func TestSalesRepository_MetadataQueryError(t *testing.T) {
	boom := errors.New("boom")
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, boom
		},
	}
	repo := NewSalesRepository(db)

	if _, err := repo.ListStores(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := repo.ListChannels(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := repo.ListCustomers(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
