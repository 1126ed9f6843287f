package engine

import (
	"testing"
	"time"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bucket(day time.Time, orders int) domain.Bucket {
	return domain.Bucket{Time: day.Format(dateLayout), Start: day, Key: domain.TotalGroupKey, Orders: orders}
}

func TestIntraday(t *testing.T) {
	got := Intraday(1000)
	require.Len(t, got, 6)
	assert.Equal(t, domain.LabeledValue{Label: "00-06h", Value: 20}, got[0])
	assert.Equal(t, domain.LabeledValue{Label: "11-15h", Value: 350}, got[2])
	assert.Equal(t, domain.LabeledValue{Label: "19-23h", Value: 400}, got[4])

	// floored shares may undercount
	small := Intraday(7)
	sum := 0
	for _, v := range small {
		sum += v.Value
	}
	assert.LessOrEqual(t, sum, 7)
	assert.Equal(t, 2, small[4].Value)
}

func TestWeekly(t *testing.T) {
	// 2024-01-01 is a Monday
	buckets := []domain.Bucket{
		bucket(at(2024, time.January, 1, 0), 5),
		bucket(at(2024, time.January, 7, 0), 2),
		bucket(at(2024, time.January, 8, 0), 3),
		bucket(at(2024, time.January, 9, 0), 0),
	}
	got := Weekly(buckets)
	assert.Equal(t, []domain.LabeledValue{
		{Label: "Sun", Value: 2},
		{Label: "Mon", Value: 8},
		{Label: "Tue", Value: 0},
	}, got)
}

func TestMonthlyAndBaseline(t *testing.T) {
	buckets := []domain.Bucket{
		bucket(at(2024, time.February, 3, 0), 4),
		bucket(at(2024, time.January, 3, 0), 10),
		bucket(at(2024, time.January, 4, 0), 2),
		bucket(at(2024, time.March, 1, 0), 1),
	}
	months := Monthly(buckets)
	require.Len(t, months, 3)
	assert.Equal(t, "2024-01", months[0].Month)
	assert.Equal(t, "Jan 2024", months[0].Label)
	assert.Equal(t, 12, months[0].Current)
	assert.Nil(t, months[0].Previous)
	assert.Nil(t, months[0].Variation)

	previous := []domain.SaleRecord{
		completedSale("p1", at(2023, time.January, 9, 10), "a", "A", "1"),
		completedSale("p2", at(2023, time.January, 10, 10), "a", "A", "1"),
		completedSale("p3", at(2023, time.January, 11, 10), "a", "A", "1"),
		completedSale("p4", at(2023, time.February, 11, 10), "a", "A", "1"),
		completedSale("p5", at(2023, time.February, 12, 10), "a", "A", "1"),
		completedSale("p6", at(2023, time.February, 13, 10), "a", "A", "1"),
	}
	base := MonthlyBaseline(previous, func(t time.Time) time.Time { return t.AddDate(1, 0, 0) })
	assert.Equal(t, Baseline{"2024-01": 3, "2024-02": 3}, base)

	got := ApplyBaseline(months, base)
	require.NotNil(t, got[0].Previous)
	assert.Equal(t, 3, *got[0].Previous)
	require.NotNil(t, got[0].Variation)
	assert.Equal(t, 300.0, *got[0].Variation)
	require.NotNil(t, got[1].Variation)
	assert.Equal(t, 33.3, *got[1].Variation)
	assert.Nil(t, got[2].Previous)
	assert.Nil(t, got[2].Variation)

	// input untouched
	assert.Nil(t, months[0].Previous)
}

func TestApplyBaselineZeroPrevious(t *testing.T) {
	months := []domain.MonthlyPattern{{Month: "2024-01", Current: 5}}
	got := ApplyBaseline(months, Baseline{"2024-01": 0})
	require.NotNil(t, got[0].Previous)
	assert.Equal(t, 0, *got[0].Previous)
	assert.Nil(t, got[0].Variation)

	assert.Equal(t, months, ApplyBaseline(months, nil))
}

func TestTemporalEmpty(t *testing.T) {
	p := Temporal(nil)
	require.Len(t, p.Intraday, 6)
	for _, v := range p.Intraday {
		assert.Equal(t, 0, v.Value)
	}
	assert.Empty(t, p.Weekly)
	assert.Empty(t, p.Monthly)
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "Sun", WeekdayLabel(0))
	assert.Equal(t, "Sat", WeekdayLabel(6))
	assert.Equal(t, domain.PlaceholderName, WeekdayLabel(7))
}
