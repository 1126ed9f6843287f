package engine

import (
	"math"
	"sort"
	"time"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/shopspring/decimal"
)

// PreviousWindow is the window of the same length ending the day before w
// starts. An unbounded window has no predecessor.
func PreviousWindow(w Window) (Window, bool) {
	if !w.Bounded() {
		return Window{}, false
	}
	days := w.Days()
	return Window{
		Start: w.Start.AddDate(0, 0, -days),
		End:   w.Start.AddDate(0, 0, -1),
	}, true
}

// PreviousYearWindow is w moved one year back.
func PreviousYearWindow(w Window) (Window, bool) {
	if !w.Bounded() {
		return Window{}, false
	}
	return Window{Start: w.Start.AddDate(-1, 0, 0), End: w.End.AddDate(-1, 0, 0)}, true
}

// PeriodPerformance compares revenue of two record sets. Performance is the
// percent change with two decimals, 0 when the previous revenue is 0.
func PeriodPerformance(current, previous []domain.SaleRecord) domain.PeriodPerformance {
	p := domain.PeriodPerformance{Current: sumAmounts(current), Previous: sumAmounts(previous)}
	p.Performance = percentChange(p.Current, p.Previous, 2)
	return p
}

// WeeklyAnomalies buckets revenue per week (weeks start on Monday) and flags
// weeks more than two population standard deviations away from the mean.
// Weeks with fewer than minOrders orders are never flagged.
func WeeklyAnomalies(records []domain.SaleRecord, minOrders int) (domain.AnomalyReport, error) {
	if minOrders < 0 {
		return domain.AnomalyReport{}, domain.NewConfigurationError("min_orders", "must not be negative")
	}

	type week struct {
		revenue decimal.Decimal
		orders  int
	}
	weeks := make(map[time.Time]*week)
	for _, r := range records {
		k := weekStart(r.Timestamp)
		w, ok := weeks[k]
		if !ok {
			w = &week{revenue: decimal.Zero}
			weeks[k] = w
		}
		w.revenue = w.revenue.Add(r.Amount)
		w.orders++
	}

	report := domain.AnomalyReport{Anomalies: make([]domain.WeeklyAnomaly, 0)}
	if len(weeks) == 0 {
		return report, nil
	}

	starts := make([]time.Time, 0, len(weeks))
	for k := range weeks {
		starts = append(starts, k)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	var sum float64
	for _, k := range starts {
		sum += weeks[k].revenue.InexactFloat64()
	}
	mean := sum / float64(len(starts))
	var sq float64
	for _, k := range starts {
		d := weeks[k].revenue.InexactFloat64() - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(starts)))

	report.MeanRevenue = roundFloat(mean, 2)
	report.StdDev = roundFloat(std, 2)
	for _, k := range starts {
		w := weeks[k]
		if w.orders < minOrders {
			continue
		}
		rev := w.revenue.InexactFloat64()
		var kind domain.AnomalyKind
		switch {
		case rev > mean+2*std:
			kind = domain.AnomalyPeak
		case rev < mean-2*std:
			kind = domain.AnomalyDrop
		default:
			continue
		}
		report.Anomalies = append(report.Anomalies, domain.WeeklyAnomaly{
			Week:    k.Format(dateLayout),
			Kind:    kind,
			Revenue: w.revenue,
			Orders:  w.orders,
		})
	}
	return report, nil
}

func weekStart(t time.Time) time.Time {
	d := calendarDay(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func sumAmounts(records []domain.SaleRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

func roundFloat(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
