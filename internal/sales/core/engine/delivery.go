package engine

import (
	"sort"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/shopspring/decimal"
)

// DeliveryRecords extracts the timing of every sale that reports a delivery
// duration.
func DeliveryRecords(records []domain.SaleRecord) []domain.DeliveryRecord {
	out := make([]domain.DeliveryRecord, 0)
	for _, r := range records {
		if r.DeliverySeconds == nil {
			continue
		}
		out = append(out, domain.DeliveryRecord{
			Weekday: int(r.Timestamp.Weekday()),
			Hour:    r.Timestamp.Hour(),
			Minutes: float64(*r.DeliverySeconds) / 60,
		})
	}
	return out
}

type minutesAcc struct {
	sum decimal.Decimal
	n   int
}

func (a *minutesAcc) add(m float64) {
	a.sum = a.sum.Add(decimal.NewFromFloat(m))
	a.n++
}

func (a minutesAcc) mean() float64 {
	return a.sum.DivRound(decimal.NewFromInt(int64(a.n)), 2).InexactFloat64()
}

// AverageDeliveryByWeekday is the mean delivery time per weekday, Sunday
// first. Weekdays without deliveries are omitted.
func AverageDeliveryByWeekday(deliveries []domain.DeliveryRecord) []domain.WeekdayDelivery {
	var acc [7]minutesAcc
	for _, d := range deliveries {
		if d.Weekday < 0 || d.Weekday > 6 || d.Minutes < 0 {
			continue
		}
		acc[d.Weekday].add(d.Minutes)
	}

	out := make([]domain.WeekdayDelivery, 0, 7)
	for wd := range acc {
		if acc[wd].n == 0 {
			continue
		}
		out = append(out, domain.WeekdayDelivery{
			Weekday:        wd,
			Label:          weekdayLabels[wd],
			AverageMinutes: acc[wd].mean(),
			Deliveries:     acc[wd].n,
		})
	}
	return out
}

// AverageDeliveryByWeekdayHour is the same mean split further by hour of day.
func AverageDeliveryByWeekdayHour(deliveries []domain.DeliveryRecord) []domain.WeekdayHourDelivery {
	type slot struct{ weekday, hour int }
	acc := make(map[slot]*minutesAcc)
	for _, d := range deliveries {
		if d.Weekday < 0 || d.Weekday > 6 || d.Hour < 0 || d.Hour > 23 || d.Minutes < 0 {
			continue
		}
		k := slot{d.Weekday, d.Hour}
		if acc[k] == nil {
			acc[k] = &minutesAcc{sum: decimal.Zero}
		}
		acc[k].add(d.Minutes)
	}

	out := make([]domain.WeekdayHourDelivery, 0, len(acc))
	for k, a := range acc {
		out = append(out, domain.WeekdayHourDelivery{
			Weekday:        k.weekday,
			Hour:           k.hour,
			AverageMinutes: a.mean(),
			Deliveries:     a.n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weekday != out[j].Weekday {
			return out[i].Weekday < out[j].Weekday
		}
		return out[i].Hour < out[j].Hour
	})
	return out
}
