package engine

import (
	"testing"
	"time"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviousWindow(t *testing.T) {
	w := Window{Start: at(2024, time.January, 11, 0), End: at(2024, time.January, 20, 0)}

	prev, ok := PreviousWindow(w)
	require.True(t, ok)
	assert.Equal(t, at(2024, time.January, 1, 0), prev.Start)
	assert.Equal(t, at(2024, time.January, 10, 0), prev.End)
	assert.Equal(t, w.Days(), prev.Days())

	year, ok := PreviousYearWindow(w)
	require.True(t, ok)
	assert.Equal(t, at(2023, time.January, 11, 0), year.Start)

	_, ok = PreviousWindow(Window{Start: w.Start})
	assert.False(t, ok)
	_, ok = PreviousYearWindow(Window{})
	assert.False(t, ok)
}

func TestPeriodPerformance(t *testing.T) {
	cur := []domain.SaleRecord{completedSale("1", at(2024, time.February, 1, 10), "a", "A", "150")}
	prev := []domain.SaleRecord{
		completedSale("2", at(2024, time.January, 1, 10), "a", "A", "60"),
		completedSale("3", at(2024, time.January, 2, 10), "a", "A", "60"),
	}

	got := PeriodPerformance(cur, prev)
	assert.True(t, got.Current.Equal(amount("150")))
	assert.True(t, got.Previous.Equal(amount("120")))
	assert.Equal(t, 25.0, got.Performance)

	assert.Equal(t, 0.0, PeriodPerformance(cur, nil).Performance)
	assert.Equal(t, -100.0, PeriodPerformance(nil, prev).Performance)
}

func TestWeeklyAnomalies(t *testing.T) {
	var records []domain.SaleRecord
	// eight Mondays starting 2024-01-01, 100 per week, one spike
	for w := 0; w < 8; w++ {
		day := at(2024, time.January, 1, 12).AddDate(0, 0, 7*w)
		value := "100"
		if w == 5 {
			value = "1000"
		}
		records = append(records, completedSale("s"+day.Format(dateLayout), day, "a", "A", value))
	}

	got, err := WeeklyAnomalies(records, 1)
	require.NoError(t, err)
	require.Len(t, got.Anomalies, 1)
	assert.Equal(t, "2024-02-05", got.Anomalies[0].Week)
	assert.Equal(t, domain.AnomalyPeak, got.Anomalies[0].Kind)
	assert.Equal(t, 212.5, got.MeanRevenue)

	quiet, err := WeeklyAnomalies(records, 2)
	require.NoError(t, err)
	assert.Empty(t, quiet.Anomalies)
}

func TestWeeklyAnomaliesWeekStartsMonday(t *testing.T) {
	// Sunday 2024-01-07 belongs to the week of Monday 2024-01-01
	assert.Equal(t, at(2024, time.January, 1, 0), weekStart(at(2024, time.January, 7, 23)))
	assert.Equal(t, at(2024, time.January, 8, 0), weekStart(at(2024, time.January, 8, 0)))
}

func TestWeeklyAnomaliesEmptyAndInvalid(t *testing.T) {
	got, err := WeeklyAnomalies(nil, 0)
	require.NoError(t, err)
	assert.NotNil(t, got.Anomalies)
	assert.Empty(t, got.Anomalies)

	_, err = WeeklyAnomalies(nil, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}
