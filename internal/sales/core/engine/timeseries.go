package engine

import (
	"sort"
	"time"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

// AggregateTimeSeries buckets records per time point and per group. Every
// timeline point carries a bucket for every discovered group, zero-valued
// when nothing sold, so revenue and order totals are conserved exactly.
func AggregateTimeSeries(records []domain.SaleRecord, grouping domain.Grouping, granularity domain.Granularity) (domain.TimeSeries, error) {
	labelOf, err := groupLabeler(grouping)
	if err != nil {
		return domain.TimeSeries{}, err
	}
	truncate, layout, err := timeTruncator(granularity)
	if err != nil {
		return domain.TimeSeries{}, err
	}

	labels := make([]string, 0)
	seenLabel := make(map[string]struct{})
	for _, r := range records {
		l := labelOf(r)
		if _, ok := seenLabel[l]; !ok {
			seenLabel[l] = struct{}{}
			labels = append(labels, l)
		}
	}
	if grouping == domain.GroupByTotal && len(labels) == 0 {
		labels = append(labels, domain.TotalGroupKey)
	}
	keyOf, orderedLabels := assignKeys(labels)

	keys := make([]string, len(orderedLabels))
	for i, l := range orderedLabels {
		keys[i] = keyOf[l]
	}

	timeline := buildTimeline(records, granularity, truncate)

	type slot struct {
		revenue decimal.Decimal
		orders  int
	}
	acc := make(map[time.Time]map[string]*slot, len(timeline))
	for _, t := range timeline {
		row := make(map[string]*slot, len(keys))
		for _, k := range keys {
			row[k] = &slot{revenue: decimal.Zero}
		}
		acc[t] = row
	}
	for _, r := range records {
		s := acc[truncate(r.Timestamp)][keyOf[labelOf(r)]]
		s.revenue = s.revenue.Add(r.Amount)
		s.orders++
	}

	buckets := make([]domain.Bucket, 0, len(timeline)*len(keys))
	for _, t := range timeline {
		for i, k := range keys {
			s := acc[t][k]
			buckets = append(buckets, domain.Bucket{
				Time:    t.Format(layout),
				Start:   t,
				Key:     k,
				Label:   orderedLabels[i],
				Revenue: s.revenue,
				Orders:  s.orders,
			})
		}
	}

	return domain.TimeSeries{
		Grouping:    grouping,
		Granularity: granularity,
		Keys:        keys,
		Buckets:     buckets,
	}, nil
}

// ResolveGrouping picks the series dimension for a filter selection: no
// channel selected collapses to the total, comparing several stores groups by
// store, otherwise by channel.
func ResolveGrouping(storeCount, channelCount int) domain.Grouping {
	switch {
	case channelCount == 0:
		return domain.GroupByTotal
	case storeCount > 1:
		return domain.GroupByStore
	default:
		return domain.GroupByChannel
	}
}

// ResolveGranularity is daily for an explicit window and monthly otherwise.
func ResolveGranularity(w Window) domain.Granularity {
	if w.Bounded() {
		return domain.Daily
	}
	return domain.Monthly
}

func groupLabeler(g domain.Grouping) (func(domain.SaleRecord) string, error) {
	switch g {
	case domain.GroupByTotal:
		return func(domain.SaleRecord) string { return domain.TotalGroupKey }, nil
	case domain.GroupByStore:
		return func(r domain.SaleRecord) string { return r.StoreName }, nil
	case domain.GroupByChannel:
		return func(r domain.SaleRecord) string { return r.ChannelName }, nil
	default:
		return nil, domain.NewConfigurationError("grouping", "unsupported value "+quote(string(g)))
	}
}

func timeTruncator(g domain.Granularity) (func(time.Time) time.Time, string, error) {
	switch g {
	case domain.Daily:
		return calendarDay, dateLayout, nil
	case domain.Monthly:
		return calendarMonth, monthLayout, nil
	default:
		return nil, "", domain.NewConfigurationError("granularity", "unsupported value "+quote(string(g)))
	}
}

func buildTimeline(records []domain.SaleRecord, g domain.Granularity, truncate func(time.Time) time.Time) []time.Time {
	if len(records) == 0 {
		return nil
	}
	if g == domain.Daily {
		first, last := truncate(records[0].Timestamp), truncate(records[0].Timestamp)
		for _, r := range records[1:] {
			d := truncate(r.Timestamp)
			if d.Before(first) {
				first = d
			}
			if d.After(last) {
				last = d
			}
		}
		days := make([]time.Time, 0, int(last.Sub(first).Hours()/24)+1)
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
		return days
	}

	seen := make(map[time.Time]struct{})
	months := make([]time.Time, 0)
	for _, r := range records {
		m := truncate(r.Timestamp)
		if _, ok := seen[m]; !ok {
			seen[m] = struct{}{}
			months = append(months, m)
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	return months
}
