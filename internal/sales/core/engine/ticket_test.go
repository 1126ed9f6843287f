package engine

import (
	"testing"
	"time"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversion(t *testing.T) {
	records := []domain.SaleRecord{
		{Status: domain.StatusCompleted},
		{Status: domain.StatusCompleted},
		{Status: domain.StatusCanceled},
		{Status: domain.StatusPending},
	}
	got := Conversion(records)
	assert.Equal(t, domain.Conversion{Completed: 2, Canceled: 1, Percentage: 66.7}, got)

	assert.Equal(t, domain.Conversion{}, Conversion(nil))
	assert.Equal(t, 0.0, Conversion([]domain.SaleRecord{{Status: domain.StatusPending}}).Percentage)
}

func TestTicket(t *testing.T) {
	records := []domain.SaleRecord{
		completedSale("1", at(2024, time.January, 1, 10), "iFood", "Centro", "30"),
		completedSale("2", at(2024, time.January, 1, 11), "iFood", "Centro", "10"),
		completedSale("3", at(2024, time.January, 1, 12), "Balcão", "Centro", "50"),
		completedSale("4", at(2024, time.January, 1, 13), "iFood", "Norte", "10"),
	}
	got := TicketBreakdown(records)

	assert.Equal(t, 4, got.Orders)
	assert.True(t, got.Overall.Equal(amount("25")), got.Overall.String())
	require.Len(t, got.Entries, 3)
	assert.Equal(t, "Balcão", got.Entries[0].ChannelName)
	assert.True(t, got.Entries[0].Ticket.Equal(amount("50")))
	assert.Equal(t, "Centro", got.Entries[1].StoreName)
	assert.True(t, got.Entries[1].Ticket.Equal(amount("20")))
	assert.Equal(t, 2, got.Entries[1].Orders)
	assert.Equal(t, "Norte", got.Entries[2].StoreName)
}

func TestTicketRoundsToCents(t *testing.T) {
	records := []domain.SaleRecord{
		completedSale("1", at(2024, time.January, 1, 10), "a", "A", "10"),
		completedSale("2", at(2024, time.January, 1, 10), "a", "A", "10"),
		completedSale("3", at(2024, time.January, 1, 10), "a", "A", "0"),
	}
	assert.Equal(t, "6.67", AverageTicket(records).StringFixed(2))
}

func TestTicketEmpty(t *testing.T) {
	got := TicketBreakdown(nil)
	assert.True(t, got.Overall.IsZero())
	assert.Equal(t, 0, got.Orders)
	assert.Empty(t, got.Entries)
	assert.True(t, AverageTicket(nil).IsZero())
}

func TestOverview(t *testing.T) {
	a := completedSale("1", at(2024, time.January, 1, 10), "a", "A", "40")
	a.ProductionSeconds = int64Ptr(600)
	a.DeliverySeconds = int64Ptr(1800)
	b := completedSale("2", at(2024, time.January, 1, 10), "a", "A", "20")
	b.ProductionSeconds = int64Ptr(901)

	got := Overview([]domain.SaleRecord{a, b})
	assert.True(t, got.Revenue.Equal(amount("60")))
	assert.Equal(t, 2, got.Orders)
	assert.True(t, got.AverageTicket.Equal(amount("30")))
	assert.Equal(t, 750.5, got.AverageProductionSeconds)
	assert.Equal(t, 1800.0, got.AverageDeliverySeconds)

	empty := Overview(nil)
	assert.True(t, empty.AverageTicket.IsZero())
	assert.Equal(t, 0.0, empty.AverageDeliverySeconds)
}
