package engine

import (
	"errors"
	"testing"
	"time"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateTimeSeriesDailyZeroFill(t *testing.T) {
	records := []domain.SaleRecord{
		completedSale("1", at(2024, time.January, 1, 10), "iFood", "A", "100"),
		completedSale("2", at(2024, time.January, 31, 20), "iFood", "A", "50"),
	}

	ts, err := AggregateTimeSeries(records, domain.GroupByTotal, domain.Daily)
	require.NoError(t, err)

	assert.Equal(t, []string{domain.TotalGroupKey}, ts.Keys)
	require.Len(t, ts.Buckets, 31)
	zero := 0
	for _, b := range ts.Buckets {
		if b.Orders == 0 {
			zero++
			assert.True(t, b.Revenue.IsZero())
		}
	}
	assert.Equal(t, 29, zero)
	assert.Equal(t, "2024-01-01", ts.Buckets[0].Time)
	assert.Equal(t, "2024-01-31", ts.Buckets[30].Time)
	assert.True(t, ts.Buckets[0].Revenue.Equal(decimal.NewFromInt(100)))
}

func TestAggregateTimeSeriesByChannel(t *testing.T) {
	records := []domain.SaleRecord{
		completedSale("1", at(2024, time.January, 1, 10), "iFood", "A", "10"),
		completedSale("2", at(2024, time.January, 1, 11), "Balcão", "A", "20"),
		completedSale("3", at(2024, time.January, 2, 12), "iFood", "A", "30"),
	}

	ts, err := AggregateTimeSeries(records, domain.GroupByChannel, domain.Daily)
	require.NoError(t, err)

	assert.Equal(t, []string{"Balcao", "iFood"}, ts.Keys)
	require.Len(t, ts.Buckets, 4)

	want := []struct {
		time, key, label, revenue string
		orders                    int
	}{
		{"2024-01-01", "Balcao", "Balcão", "20", 1},
		{"2024-01-01", "iFood", "iFood", "10", 1},
		{"2024-01-02", "Balcao", "Balcão", "0", 0},
		{"2024-01-02", "iFood", "iFood", "30", 1},
	}
	for i, w := range want {
		b := ts.Buckets[i]
		assert.Equal(t, w.time, b.Time)
		assert.Equal(t, w.key, b.Key)
		assert.Equal(t, w.label, b.Label)
		assert.True(t, b.Revenue.Equal(amount(w.revenue)), "bucket %d revenue %s", i, b.Revenue)
		assert.Equal(t, w.orders, b.Orders)
	}
}

func TestAggregateTimeSeriesMonthly(t *testing.T) {
	records := []domain.SaleRecord{
		completedSale("1", at(2024, time.March, 5, 10), "iFood", "Centro", "10"),
		completedSale("2", at(2024, time.January, 5, 10), "iFood", "Norte", "20"),
	}

	ts, err := AggregateTimeSeries(records, domain.GroupByStore, domain.Monthly)
	require.NoError(t, err)

	// months without sales are not filled
	require.Len(t, ts.Buckets, 4)
	assert.Equal(t, "2024-01", ts.Buckets[0].Time)
	assert.Equal(t, "2024-03", ts.Buckets[2].Time)
	assert.Equal(t, []string{"Centro", "Norte"}, ts.Keys)
}

func TestAggregateTimeSeriesEmpty(t *testing.T) {
	ts, err := AggregateTimeSeries(nil, domain.GroupByTotal, domain.Daily)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.TotalGroupKey}, ts.Keys)
	assert.Empty(t, ts.Buckets)

	ts, err = AggregateTimeSeries(nil, domain.GroupByChannel, domain.Daily)
	require.NoError(t, err)
	assert.Empty(t, ts.Keys)
	assert.Empty(t, ts.Buckets)
}

func TestAggregateTimeSeriesRejectsUnknownOptions(t *testing.T) {
	_, err := AggregateTimeSeries(nil, domain.Grouping("region"), domain.Daily)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))

	_, err = AggregateTimeSeries(nil, domain.GroupByTotal, domain.Granularity("hourly"))
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "granularity", cfgErr.Field)
}

func TestResolveGrouping(t *testing.T) {
	assert.Equal(t, domain.GroupByTotal, ResolveGrouping(3, 0))
	assert.Equal(t, domain.GroupByStore, ResolveGrouping(2, 1))
	assert.Equal(t, domain.GroupByChannel, ResolveGrouping(1, 2))
	assert.Equal(t, domain.GroupByChannel, ResolveGrouping(0, 1))
}

func TestResolveGranularity(t *testing.T) {
	assert.Equal(t, domain.Monthly, ResolveGranularity(Window{}))
	assert.Equal(t, domain.Daily, ResolveGranularity(Window{Start: at(2024, 1, 1, 0), End: at(2024, 1, 2, 0)}))
}
