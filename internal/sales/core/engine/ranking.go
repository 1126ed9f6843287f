package engine

import (
	"sort"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/shopspring/decimal"
)

type RankDimension string

const (
	RankByChannel RankDimension = "channel"
	RankByStore   RankDimension = "store"
)

var hundred = decimal.NewFromInt(100)

// Rank orders channels or stores by revenue, highest first, ties by name.
// Each percentage is 100 * revenue / total rounded to one decimal on its own,
// so equal revenues get equal shares and the sum is 100 up to rounding.
func Rank(records []domain.SaleRecord, by RankDimension) ([]domain.RankingEntry, error) {
	var nameOf func(domain.SaleRecord) string
	switch by {
	case RankByChannel:
		nameOf = func(r domain.SaleRecord) string { return r.ChannelName }
	case RankByStore:
		nameOf = func(r domain.SaleRecord) string { return r.StoreName }
	default:
		return nil, domain.NewConfigurationError("rank_by", "unsupported value "+quote(string(by)))
	}

	revenue := make(map[string]decimal.Decimal)
	for _, r := range records {
		name := nameOf(r)
		revenue[name] = revenue[name].Add(r.Amount)
	}

	entries := make([]domain.RankingEntry, 0, len(revenue))
	total := decimal.Zero
	for name, rev := range revenue {
		entries = append(entries, domain.RankingEntry{Name: name, Revenue: rev})
		total = total.Add(rev)
	}
	sort.Slice(entries, func(i, j int) bool {
		if c := entries[i].Revenue.Cmp(entries[j].Revenue); c != 0 {
			return c > 0
		}
		return entries[i].Name < entries[j].Name
	})

	applyPercentages(entries, total)
	return entries, nil
}

func applyPercentages(entries []domain.RankingEntry, total decimal.Decimal) {
	if !total.IsPositive() {
		return
	}
	for i, e := range entries {
		entries[i].Percentage = e.Revenue.Mul(hundred).Div(total).Round(1).InexactFloat64()
	}
}
