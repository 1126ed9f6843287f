package memory

import (
	"context"
	"testing"
	"time"

	"sales-metrics-service/internal/sales/core/domain"
	"sales-metrics-service/internal/sales/core/ports"
)

func amt(s string) domain.Amount { return domain.ParseAmount(s) }

func batch() []domain.RawSale {
	return []domain.RawSale{
		{
			SaleID: "1", StoreID: 1, ChannelID: 10, CustomerID: "c1", CustomerName: "Ana",
			Timestamp: "2024-01-05T12:00:00Z", Amount: amt("30"), Status: "COMPLETED",
			Products: []domain.RawProductLine{{Name: "Pizza", Quantity: 1, LineTotal: amt("30")}},
		},
		{
			SaleID: "2", StoreID: 2, ChannelID: 20, CustomerID: "c1", CustomerName: "Ana",
			Timestamp: "2024-02-05T12:00:00Z", Amount: amt("12"), Status: "COMPLETED",
			Products: []domain.RawProductLine{{Name: "Soda", Quantity: 2, LineTotal: amt("12")}},
		},
		{
			SaleID: "3", StoreID: 1, ChannelID: 20, CustomerID: "c2", CustomerName: "Bia",
			Timestamp: "2024-03-05T12:00:00Z", Amount: amt("40"), Status: "CANCELED",
			Products: []domain.RawProductLine{{Name: "Pizza", Quantity: 1, LineTotal: amt("40")}},
		},
		{SaleID: "", Timestamp: "garbage"},
	}
}

func TestSnapshot_ReadSalesFiltersByIDs(t *testing.T) {
	s := NewSnapshot(batch())

	all, err := s.ReadSales(context.Background(), ports.SalesFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected raw rows to pass through untouched, got %d", len(all))
	}

	got, err := s.ReadSales(context.Background(), ports.SalesFilter{StoreIDs: []int64{1}, ChannelIDs: []int64{20}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].SaleID != "3" {
		t.Fatalf("expected only sale 3, got %+v", got)
	}
}

func TestSnapshot_ReadSalesHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewSnapshot(batch()).ReadSales(ctx, ports.SalesFilter{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestSnapshot_ReadCustomerHistory(t *testing.T) {
	history, err := NewSnapshot(batch()).ReadCustomerHistory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(history))
	}
	if history[0].CustomerID != "c1" || history[0].TotalOrders != 2 {
		t.Fatalf("unexpected c1 history: %+v", history[0])
	}
	want := time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC)
	if !history[0].LastOrderAt.Equal(want) {
		t.Fatalf("expected last order %v, got %v", want, history[0].LastOrderAt)
	}
}

func TestSnapshot_ReadCatalog(t *testing.T) {
	s := NewSnapshot(batch())

	catalog, err := s.ReadCatalog(context.Background(), ports.CatalogFilter{ChannelIDs: []int64{10}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("expected 2 products, got %d", len(catalog))
	}

	pizza, soda := catalog[0], catalog[1]
	if pizza.Name != "Pizza" || pizza.ID != 1 {
		t.Fatalf("unexpected first product: %+v", pizza)
	}
	if pizza.LastSaleAt == nil || !pizza.LastSaleAt.Equal(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected pizza last sale on channel 10, got %v", pizza.LastSaleAt)
	}
	if soda.LastSaleAt != nil {
		t.Fatalf("expected soda never sold on channel 10, got %v", *soda.LastSaleAt)
	}
}

func TestSnapshot_DoesNotAliasInput(t *testing.T) {
	raw := batch()
	s := NewSnapshot(raw)
	raw[0].SaleID = "changed"

	got, _ := s.ReadSales(context.Background(), ports.SalesFilter{StoreIDs: []int64{1}, ChannelIDs: []int64{10}})
	if len(got) != 1 || got[0].SaleID != "1" {
		t.Fatalf("expected snapshot to keep its own copy, got %+v", got)
	}
}

func TestSnapshot_ListStoresAndChannels(t *testing.T) {
	s := NewSnapshot(batch())

	stores, err := s.ListStores(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stores) != 2 || stores[0].ID != 1 || stores[1].ID != 2 {
		t.Fatalf("unexpected stores: %+v", stores)
	}
	if stores[0].Name != domain.PlaceholderName {
		t.Fatalf("expected placeholder store name, got %q", stores[0].Name)
	}

	channels, err := s.ListChannels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(channels) != 2 || channels[0].ID != 10 || channels[1].ID != 20 {
		t.Fatalf("unexpected channels: %+v", channels)
	}
}

func TestSnapshot_ListCustomersLatestFirst(t *testing.T) {
	s := NewSnapshot(batch())

	customers, err := s.ListCustomers(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(customers) != 2 || customers[0].ID != "c2" || customers[1].ID != "c1" {
		t.Fatalf("unexpected customers: %+v", customers)
	}
	if customers[0].Name != "Bia" || customers[0].LastPurchase == nil ||
		!customers[0].LastPurchase.Equal(time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first customer: %+v", customers[0])
	}

	limited, err := s.ListCustomers(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "c2" {
		t.Fatalf("expected only c2, got %+v", limited)
	}
}
