package engine

import (
	"errors"
	"testing"
	"time"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentOrders(t *testing.T) {
	canceled := completedSale("c", at(2024, time.January, 3, 9), "a", "A", "5")
	canceled.Status = domain.StatusCanceled
	records := []domain.SaleRecord{
		completedSale("a", at(2024, time.January, 1, 9), "a", "A", "10"),
		completedSale("d", at(2024, time.January, 4, 9), "a", "A", "20"),
		canceled,
		completedSale("b", at(2024, time.January, 4, 9), "a", "A", "30"),
	}

	t.Run("newest first with sale id tie-break", func(t *testing.T) {
		page, err := RecentOrders(records, nil, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 4, page.Total)
		ids := make([]string, 0, len(page.Orders))
		for _, o := range page.Orders {
			ids = append(ids, o.SaleID)
		}
		assert.Equal(t, []string{"b", "d", "c", "a"}, ids)
	})

	t.Run("pages with limit and offset", func(t *testing.T) {
		page, err := RecentOrders(records, nil, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, 4, page.Total)
		assert.Equal(t, 2, page.Limit)
		assert.Equal(t, 1, page.Offset)
		require.Len(t, page.Orders, 2)
		assert.Equal(t, "d", page.Orders[0].SaleID)
		assert.Equal(t, "c", page.Orders[1].SaleID)
	})

	t.Run("offset past the end is an empty page", func(t *testing.T) {
		page, err := RecentOrders(records, nil, 5, 9)
		require.NoError(t, err)
		assert.Equal(t, 4, page.Total)
		assert.NotNil(t, page.Orders)
		assert.Empty(t, page.Orders)
	})

	t.Run("filters by status", func(t *testing.T) {
		page, err := RecentOrders(records, []domain.Status{domain.StatusCanceled}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Total)
		require.Len(t, page.Orders, 1)
		assert.Equal(t, "c", page.Orders[0].SaleID)
	})

	t.Run("does not reorder the input", func(t *testing.T) {
		_, err := RecentOrders(records, nil, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, "a", records[0].SaleID)
	})

	t.Run("rejects bad paging", func(t *testing.T) {
		_, err := RecentOrders(records, nil, 0, 0)
		assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))
		_, err = RecentOrders(records, nil, 1, -1)
		assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))
	})
}
