package engine

import (
	"sort"
	"time"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/shopspring/decimal"
)

// IntradayWeights is a fixed share of daily orders per hour window, in
// percent. It approximates the intraday curve without per-sale hours and is
// not a measured histogram.
var IntradayWeights = []struct {
	Label   string
	Percent int
}{
	{"00-06h", 2},
	{"06-11h", 8},
	{"11-15h", 35},
	{"15-19h", 10},
	{"19-23h", 40},
	{"23-24h", 5},
}

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayLabel returns the short English name of weekday 0-6 (Sunday first).
func WeekdayLabel(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return domain.PlaceholderName
	}
	return weekdayLabels[weekday]
}

// TotalOrders sums the order counts of buckets.
func TotalOrders(buckets []domain.Bucket) int {
	n := 0
	for _, b := range buckets {
		n += b.Orders
	}
	return n
}

// Intraday spreads totalOrders over the six hour windows with
// IntradayWeights, flooring each share.
func Intraday(totalOrders int) []domain.LabeledValue {
	out := make([]domain.LabeledValue, len(IntradayWeights))
	for i, w := range IntradayWeights {
		out[i] = domain.LabeledValue{Label: w.Label, Value: totalOrders * w.Percent / 100}
	}
	return out
}

// Weekly sums order counts per weekday of the bucket dates. Weekdays with no
// bucket at all are absent, not zero.
func Weekly(buckets []domain.Bucket) []domain.LabeledValue {
	var sums [7]int
	var present [7]bool
	for _, b := range buckets {
		wd := int(b.Start.Weekday())
		sums[wd] += b.Orders
		present[wd] = true
	}
	out := make([]domain.LabeledValue, 0, 7)
	for wd := 0; wd < 7; wd++ {
		if present[wd] {
			out = append(out, domain.LabeledValue{Label: weekdayLabels[wd], Value: sums[wd]})
		}
	}
	return out
}

// Monthly sums order counts per calendar month. Previous and Variation stay
// nil; see ApplyBaseline.
func Monthly(buckets []domain.Bucket) []domain.MonthlyPattern {
	sums := make(map[time.Time]int)
	for _, b := range buckets {
		sums[calendarMonth(b.Start)] += b.Orders
	}
	months := make([]time.Time, 0, len(sums))
	for m := range sums {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make([]domain.MonthlyPattern, len(months))
	for i, m := range months {
		out[i] = domain.MonthlyPattern{
			Month:   m.Format(monthLayout),
			Label:   m.Format("Jan 2006"),
			Current: sums[m],
		}
	}
	return out
}

// Baseline holds comparison order counts keyed by the current month
// ("2006-01") they are compared against.
type Baseline map[string]int

// MonthlyBaseline counts previous-period orders per month after moving each
// timestamp onto the current period with shift.
func MonthlyBaseline(previous []domain.SaleRecord, shift func(time.Time) time.Time) Baseline {
	b := make(Baseline)
	for _, r := range previous {
		b[calendarMonth(shift(r.Timestamp)).Format(monthLayout)]++
	}
	return b
}

// ApplyBaseline returns a copy of months with Previous filled from baseline
// and Variation as the percent change. Months missing from the baseline, or
// whose baseline is zero, keep a nil Variation.
func ApplyBaseline(months []domain.MonthlyPattern, baseline Baseline) []domain.MonthlyPattern {
	out := make([]domain.MonthlyPattern, len(months))
	copy(out, months)
	if baseline == nil {
		return out
	}
	for i := range out {
		prev, ok := baseline[out[i].Month]
		if !ok {
			out[i].Previous, out[i].Variation = nil, nil
			continue
		}
		p := prev
		out[i].Previous = &p
		out[i].Variation = nil
		if prev > 0 {
			v := percentChange(decimal.NewFromInt(int64(out[i].Current)), decimal.NewFromInt(int64(prev)), 1)
			out[i].Variation = &v
		}
	}
	return out
}

// Temporal derives the three temporal views from one bucket series.
func Temporal(buckets []domain.Bucket) domain.TemporalPatterns {
	return domain.TemporalPatterns{
		Intraday: Intraday(TotalOrders(buckets)),
		Weekly:   Weekly(buckets),
		Monthly:  Monthly(buckets),
	}
}

func percentChange(current, previous decimal.Decimal, places int32) float64 {
	if previous.IsZero() {
		return 0
	}
	return current.Sub(previous).Mul(hundred).Div(previous).Round(places).InexactFloat64()
}
