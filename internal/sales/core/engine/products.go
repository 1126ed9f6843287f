package engine

import (
	"sort"
	"time"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/shopspring/decimal"
)

// HourWindows are the fixed intraday windows, in chronological order.
var HourWindows = []domain.HourWindow{
	{Label: "00-06h", Start: 0, End: 6},
	{Label: "06-11h", Start: 6, End: 11},
	{Label: "11-15h", Start: 11, End: 15},
	{Label: "15-19h", Start: 15, End: 19},
	{Label: "19-23h", Start: 19, End: 23},
	{Label: "23-24h", Start: 23, End: 24},
}

// TimeSelector narrows records to a weekday and/or an inclusive hour range.
// Nil fields do not filter.
type TimeSelector struct {
	Weekday   *int
	StartHour *int
	EndHour   *int
}

func (s TimeSelector) Validate() error {
	if s.Weekday != nil && (*s.Weekday < 0 || *s.Weekday > 6) {
		return domain.NewConfigurationError("weekday", "must be between 0 and 6")
	}
	if (s.StartHour == nil) != (s.EndHour == nil) {
		return domain.NewConfigurationError("hours", "start_hour and end_hour go together")
	}
	if s.StartHour != nil {
		if *s.StartHour < 0 || *s.EndHour > 23 || *s.StartHour > *s.EndHour {
			return domain.NewConfigurationError("hours", "expected 0 <= start_hour <= end_hour <= 23")
		}
	}
	return nil
}

// Select returns the records matching s.
func (s TimeSelector) Select(records []domain.SaleRecord) []domain.SaleRecord {
	out := make([]domain.SaleRecord, 0, len(records))
	for _, r := range records {
		if s.Weekday != nil && int(r.Timestamp.Weekday()) != *s.Weekday {
			continue
		}
		if s.StartHour != nil {
			h := r.Timestamp.Hour()
			if h < *s.StartHour || h > *s.EndHour {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// RankProducts accumulates quantity and revenue per product name, sorted by
// quantity descending, ties by name.
func RankProducts(records []domain.SaleRecord) []domain.ProductAggregate {
	byName := make(map[string]*domain.ProductAggregate)
	for _, r := range records {
		for _, p := range r.Products {
			agg, ok := byName[p.Name]
			if !ok {
				agg = &domain.ProductAggregate{Name: p.Name, Revenue: decimal.Zero}
				byName[p.Name] = agg
			}
			agg.Quantity += p.Quantity
			agg.Revenue = agg.Revenue.Add(p.LineTotal)
		}
	}

	out := make([]domain.ProductAggregate, 0, len(byName))
	for _, agg := range byName {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ProductMargins accumulates revenue and cost per product name. Cost is the
// quantity times the unit base price. Highest margin first, ties by name.
func ProductMargins(records []domain.SaleRecord) []domain.ProductMargin {
	byName := make(map[string]*domain.ProductMargin)
	for _, r := range records {
		for _, p := range r.Products {
			m, ok := byName[p.Name]
			if !ok {
				m = &domain.ProductMargin{Name: p.Name, Revenue: decimal.Zero, Cost: decimal.Zero}
				byName[p.Name] = m
			}
			m.Quantity += p.Quantity
			m.Revenue = m.Revenue.Add(p.LineTotal)
			m.Cost = m.Cost.Add(p.BasePrice.Mul(decimal.NewFromInt(p.Quantity)))
		}
	}

	out := make([]domain.ProductMargin, 0, len(byName))
	for _, m := range byName {
		m.Margin = m.Revenue.Sub(m.Cost)
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Margin.Cmp(out[j].Margin); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ProductsByHour reports, for each HourWindow, the best and worst selling
// product among those with at least one unit sold there. Quiet windows carry
// zero quantities under the placeholder name.
func ProductsByHour(records []domain.SaleRecord) []domain.HourWindowTrend {
	perWindow := make([]map[string]int64, len(HourWindows))
	for i := range perWindow {
		perWindow[i] = make(map[string]int64)
	}
	for _, r := range records {
		w := hourWindowIndex(r.Timestamp.Hour())
		if w < 0 {
			continue
		}
		for _, p := range r.Products {
			perWindow[w][p.Name] += p.Quantity
		}
	}

	out := make([]domain.HourWindowTrend, len(HourWindows))
	for i, window := range HourWindows {
		empty := domain.ProductQuantity{Name: domain.PlaceholderName}
		trend := domain.HourWindowTrend{Window: window, Top: empty, Worst: empty}

		names := make([]string, 0, len(perWindow[i]))
		for name, qty := range perWindow[i] {
			if qty > 0 {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		for n, name := range names {
			qty := perWindow[i][name]
			if n == 0 || qty > trend.Top.Quantity {
				trend.Top = domain.ProductQuantity{Name: name, Quantity: qty}
			}
			if n == 0 || qty < trend.Worst.Quantity {
				trend.Worst = domain.ProductQuantity{Name: name, Quantity: qty}
			}
		}
		out[i] = trend
	}
	return out
}

// BestOfDay is the top product of the first window, in chronological order,
// that sold anything.
func BestOfDay(trends []domain.HourWindowTrend) (domain.HourWindowTrend, bool) {
	for _, t := range trends {
		if t.Top.Quantity > 0 {
			return t, true
		}
	}
	return domain.HourWindowTrend{}, false
}

func hourWindowIndex(hour int) int {
	for i, w := range HourWindows {
		if hour >= w.Start && hour < w.End {
			return i
		}
	}
	return -1
}

// StaleConfig sets the staleness floor and risk tier thresholds, in days.
type StaleConfig struct {
	FloorDays  int
	MediumDays int
	HighDays   int
}

func DefaultStaleConfig() StaleConfig {
	return StaleConfig{FloorDays: 30, MediumDays: 60, HighDays: 90}
}

func (c StaleConfig) Validate() error {
	if c.FloorDays < 0 {
		return domain.NewConfigurationError("stale.floor_days", "must not be negative")
	}
	if c.MediumDays <= c.FloorDays {
		return domain.NewConfigurationError("stale.medium_days", "must be greater than floor_days")
	}
	if c.HighDays <= c.MediumDays {
		return domain.NewConfigurationError("stale.high_days", "must be greater than medium_days")
	}
	return nil
}

func (c StaleConfig) tier(days int) domain.RiskTier {
	switch {
	case days >= c.HighDays:
		return domain.RiskHigh
	case days >= c.MediumDays:
		return domain.RiskMedium
	default:
		return domain.RiskWatch
	}
}

// StaleProducts lists catalog products without a sale for more than
// FloorDays, tiered by risk. Products that never sold rank first as high
// risk; the rest follow by days without sale, descending.
func StaleProducts(catalog []domain.CatalogProduct, now time.Time, cfg StaleConfig) ([]domain.StaleProduct, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := make([]domain.StaleProduct, 0)
	for _, p := range catalog {
		if p.LastSaleAt == nil {
			out = append(out, domain.StaleProduct{ID: p.ID, Name: p.Name, NeverSold: true, Tier: domain.RiskHigh})
			continue
		}
		days := wholeDays(now.Sub(*p.LastSaleAt))
		if days <= cfg.FloorDays {
			continue
		}
		last := *p.LastSaleAt
		out = append(out, domain.StaleProduct{
			ID:              p.ID,
			Name:            p.Name,
			LastSaleAt:      &last,
			DaysWithoutSale: days,
			Tier:            cfg.tier(days),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.NeverSold != b.NeverSold {
			return a.NeverSold
		}
		if a.DaysWithoutSale != b.DaysWithoutSale {
			return a.DaysWithoutSale > b.DaysWithoutSale
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return out, nil
}

func wholeDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}
