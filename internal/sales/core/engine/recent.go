package engine

import (
	"slices"
	"sort"

	"sales-metrics-service/internal/sales/core/domain"
)

// RecentOrders pages the records with one of statuses, newest first, ties
// by sale id. No statuses keeps every record.
func RecentOrders(records []domain.SaleRecord, statuses []domain.Status, limit, offset int) (domain.RecentOrders, error) {
	if limit < 1 {
		return domain.RecentOrders{}, domain.NewConfigurationError("limit", "must be positive")
	}
	if offset < 0 {
		return domain.RecentOrders{}, domain.NewConfigurationError("offset", "must not be negative")
	}

	selected := make([]domain.SaleRecord, 0, len(records))
	for _, r := range records {
		if len(statuses) == 0 || slices.Contains(statuses, r.Status) {
			selected = append(selected, r)
		}
	}
	sort.Slice(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return a.SaleID < b.SaleID
	})

	page := domain.RecentOrders{
		Total:  len(selected),
		Limit:  limit,
		Offset: offset,
		Orders: make([]domain.SaleRecord, 0),
	}
	if offset < len(selected) {
		page.Orders = append(page.Orders, selected[offset:min(offset+limit, len(selected))]...)
	}
	return page, nil
}
