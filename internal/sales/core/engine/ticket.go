package engine

import (
	"sort"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/shopspring/decimal"
)

// Conversion is completed / (completed + canceled) in percent, one decimal.
// Other statuses count on neither side.
func Conversion(records []domain.SaleRecord) domain.Conversion {
	var c domain.Conversion
	for _, r := range records {
		switch {
		case r.Status.IsCompleted():
			c.Completed++
		case r.Status.IsCanceled():
			c.Canceled++
		}
	}
	if den := c.Completed + c.Canceled; den > 0 {
		c.Percentage = decimal.NewFromInt(int64(c.Completed)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(den))).
			Round(1).
			InexactFloat64()
	}
	return c
}

// AverageTicket is total revenue over the order count, 0 for no orders.
func AverageTicket(records []domain.SaleRecord) decimal.Decimal {
	return ticket(sumAmounts(records), len(records))
}

// TicketBreakdown computes the overall average ticket together with one entry per
// store and channel pair. The overall figure is weighted by order count.
func TicketBreakdown(records []domain.SaleRecord) domain.TicketBreakdown {
	type pair struct{ store, channel string }
	type acc struct {
		revenue decimal.Decimal
		orders  int
	}

	groups := make(map[pair]*acc)
	total := decimal.Zero
	for _, r := range records {
		k := pair{r.StoreName, r.ChannelName}
		a, ok := groups[k]
		if !ok {
			a = &acc{revenue: decimal.Zero}
			groups[k] = a
		}
		a.revenue = a.revenue.Add(r.Amount)
		a.orders++
		total = total.Add(r.Amount)
	}

	entries := make([]domain.TicketEntry, 0, len(groups))
	for k, a := range groups {
		entries = append(entries, domain.TicketEntry{
			StoreName:   k.store,
			ChannelName: k.channel,
			Orders:      a.orders,
			Revenue:     a.revenue,
			Ticket:      ticket(a.revenue, a.orders),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if c := a.Ticket.Cmp(b.Ticket); c != 0 {
			return c > 0
		}
		if a.StoreName != b.StoreName {
			return a.StoreName < b.StoreName
		}
		return a.ChannelName < b.ChannelName
	})

	return domain.TicketBreakdown{
		Overall: ticket(total, len(records)),
		Orders:  len(records),
		Entries: entries,
	}
}

// Overview is the KPI header: revenue, orders, ticket and average
// production and delivery times over the sales that report them.
func Overview(records []domain.SaleRecord) domain.Overview {
	o := domain.Overview{Revenue: decimal.Zero}
	var prodSum, prodN, delivSum, delivN int64
	for _, r := range records {
		o.Revenue = o.Revenue.Add(r.Amount)
		o.Orders++
		if r.ProductionSeconds != nil {
			prodSum += *r.ProductionSeconds
			prodN++
		}
		if r.DeliverySeconds != nil {
			delivSum += *r.DeliverySeconds
			delivN++
		}
	}
	o.AverageTicket = ticket(o.Revenue, o.Orders)
	o.AverageProductionSeconds = mean(prodSum, prodN)
	o.AverageDeliverySeconds = mean(delivSum, delivN)
	return o
}

func ticket(revenue decimal.Decimal, orders int) decimal.Decimal {
	if orders < 1 {
		orders = 1
	}
	return revenue.DivRound(decimal.NewFromInt(int64(orders)), 2)
}

func mean(sum, n int64) float64 {
	if n == 0 {
		return 0
	}
	return decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(n), 2).InexactFloat64()
}
