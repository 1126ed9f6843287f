package engine

import (
	"fmt"
	"time"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rawAmount(s string) domain.Amount { return domain.ParseAmount(s) }

func intPtr(i int) *int { return &i }

func int64Ptr(i int64) *int64 { return &i }

func completedSale(id string, ts time.Time, channel, store, value string) domain.SaleRecord {
	return domain.SaleRecord{
		SaleID:      id,
		StoreName:   store,
		ChannelName: channel,
		Timestamp:   ts,
		Amount:      amount(value),
		Status:      domain.StatusCompleted,
	}
}

var (
	fakeChannels = []string{"iFood", "Rappi", "Balcão", "Delivery Próprio", "WhatsApp"}
	fakeStores   = []string{"Loja Centro", "Loja São João", "Shopping Norte"}
	fakeStatuses = []domain.Status{domain.StatusCompleted, domain.StatusCompleted, domain.StatusCanceled, domain.StatusPending}
)

// fakeSales builds n reproducible sales spread over January-March 2024.
func fakeSales(seed uint64, n int) []domain.SaleRecord {
	f := gofakeit.New(seed)
	products := make([]string, 6)
	for i := range products {
		products[i] = f.ProductName()
	}

	start := at(2024, time.January, 1, 0)
	end := at(2024, time.March, 31, 23)
	out := make([]domain.SaleRecord, n)
	for i := range out {
		lines := make([]domain.ProductLine, f.IntRange(1, 3))
		for j := range lines {
			lines[j] = domain.ProductLine{
				Name:      products[f.IntRange(0, len(products)-1)],
				Quantity:  int64(f.IntRange(1, 4)),
				LineTotal: decimal.NewFromFloat(f.Price(1, 80)).Round(2),
			}
		}
		var delivery *int64
		if f.IntRange(0, 1) == 1 {
			delivery = int64Ptr(int64(f.IntRange(600, 4800)))
		}
		out[i] = domain.SaleRecord{
			SaleID:          fmt.Sprintf("S%05d", i),
			StoreName:       fakeStores[f.IntRange(0, len(fakeStores)-1)],
			ChannelName:     fakeChannels[f.IntRange(0, len(fakeChannels)-1)],
			CustomerID:      fmt.Sprintf("C%03d", f.IntRange(1, 40)),
			CustomerName:    f.FirstName(),
			Timestamp:       f.DateRange(start, end).UTC(),
			Amount:          decimal.NewFromFloat(f.Price(5, 250)).Round(2),
			Status:          fakeStatuses[f.IntRange(0, len(fakeStatuses)-1)],
			Products:        lines,
			DeliverySeconds: delivery,
		}
	}
	return out
}
