package engine

import (
	"sort"
	"time"

	"sales-metrics-service/internal/sales/core/domain"
)

type ChurnConfig struct {
	MinOrders      int
	InactivityDays int
}

func DefaultChurnConfig() ChurnConfig {
	return ChurnConfig{MinOrders: 3, InactivityDays: 30}
}

func (c ChurnConfig) Validate() error {
	if c.MinOrders < 0 {
		return domain.NewConfigurationError("min_orders", "must not be negative")
	}
	if c.InactivityDays < 0 {
		return domain.NewConfigurationError("inactivity_days", "must not be negative")
	}
	return nil
}

// BuildCustomerHistory folds records into one history per customer id.
// Records without a customer are ignored. Feed it the whole order history,
// not a dashboard window.
func BuildCustomerHistory(records []domain.SaleRecord) []domain.CustomerOrderHistory {
	byID := make(map[string]*domain.CustomerOrderHistory)
	for _, r := range records {
		if r.CustomerID == "" {
			continue
		}
		h, ok := byID[r.CustomerID]
		if !ok {
			h = &domain.CustomerOrderHistory{CustomerID: r.CustomerID, Name: r.CustomerName}
			byID[r.CustomerID] = h
		}
		h.TotalOrders++
		if r.Timestamp.After(h.LastOrderAt) {
			h.LastOrderAt = r.Timestamp
			if r.CustomerName != domain.PlaceholderName {
				h.Name = r.CustomerName
			}
		}
	}

	out := make([]domain.CustomerOrderHistory, 0, len(byID))
	for _, h := range byID {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out
}

// LostCustomers returns customers with at least MinOrders orders whose last
// order is InactivityDays or more before now. Both bounds are inclusive.
// Longest inactive first, ties by name then id.
func LostCustomers(history []domain.CustomerOrderHistory, now time.Time, cfg ChurnConfig) ([]domain.LostCustomer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	threshold := time.Duration(cfg.InactivityDays) * 24 * time.Hour

	out := make([]domain.LostCustomer, 0)
	for _, h := range history {
		if h.TotalOrders < cfg.MinOrders {
			continue
		}
		idle := now.Sub(h.LastOrderAt)
		if idle < threshold {
			continue
		}
		out = append(out, domain.LostCustomer{
			CustomerID:         h.CustomerID,
			Name:               h.Name,
			TotalOrders:        h.TotalOrders,
			LastOrderAt:        h.LastOrderAt,
			DaysSinceLastOrder: wholeDays(idle),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.DaysSinceLastOrder != b.DaysSinceLastOrder {
			return a.DaysSinceLastOrder > b.DaysSinceLastOrder
		}
		if !a.LastOrderAt.Equal(b.LastOrderAt) {
			return a.LastOrderAt.Before(b.LastOrderAt)
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.CustomerID < b.CustomerID
	})
	return out, nil
}
