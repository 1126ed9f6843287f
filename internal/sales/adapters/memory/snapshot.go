// Package memory serves the sales read ports from a batch held in memory.
package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"sales-metrics-service/internal/sales/core/domain"
	"sales-metrics-service/internal/sales/core/engine"
	"sales-metrics-service/internal/sales/core/ports"
)

// Snapshot is an immutable view over a raw batch. Date filtering is left to
// the caller's normalization; ReadSales only applies the id selection.
type Snapshot struct {
	raw     []domain.RawSale
	records []domain.SaleRecord
}

var (
	_ ports.Snapshot           = (*Snapshot)(nil)
	_ ports.MetadataReaderPort = (*Snapshot)(nil)
)

func NewSnapshot(raw []domain.RawSale) *Snapshot {
	cp := slices.Clone(raw)
	return &Snapshot{
		raw:     cp,
		records: engine.Normalize(cp, engine.Window{}).Records,
	}
}

// Loader adapts NewSnapshot to ports.SnapshotLoader.
func Loader(raw []domain.RawSale) ports.Snapshot {
	return NewSnapshot(raw)
}

func (s *Snapshot) ReadSales(ctx context.Context, f ports.SalesFilter) ([]domain.RawSale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.RawSale, 0, len(s.raw))
	for _, r := range s.raw {
		if matches(f.StoreIDs, r.StoreID) && matches(f.ChannelIDs, r.ChannelID) {
			out = append(out, r)
		}
	}
	return out, nil
}

// ReadCustomerHistory folds the whole batch; filters never apply.
func (s *Snapshot) ReadCustomerHistory(ctx context.Context) ([]domain.CustomerOrderHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return engine.BuildCustomerHistory(s.records), nil
}

// ReadCatalog lists every product name seen in the batch. LastSaleAt only
// considers sales matching the filter, so a product sold exclusively outside
// the selection reports nil. Ids are assigned by name order.
func (s *Snapshot) ReadCatalog(ctx context.Context, f ports.CatalogFilter) ([]domain.CatalogProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	last := make(map[string]*time.Time)
	for _, r := range s.records {
		selected := matches(f.StoreIDs, r.StoreID) && matches(f.ChannelIDs, r.ChannelID)
		for _, p := range r.Products {
			prev, seen := last[p.Name]
			if !seen {
				last[p.Name] = nil
			}
			if !selected {
				continue
			}
			if prev == nil || r.Timestamp.After(*prev) {
				ts := r.Timestamp
				last[p.Name] = &ts
			}
		}
	}

	names := make([]string, 0, len(last))
	for name := range last {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]domain.CatalogProduct, len(names))
	for i, name := range names {
		out[i] = domain.CatalogProduct{ID: int64(i + 1), Name: name, LastSaleAt: last[name]}
	}
	return out, nil
}

// ListStores lists the stores seen in the batch by name. Address and
// ownership are unknown to a batch and stay empty.
func (s *Snapshot) ListStores(ctx context.Context) ([]domain.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	named := distinct(s.records, func(r domain.SaleRecord) (int64, string) { return r.StoreID, r.StoreName })
	out := make([]domain.Store, len(named))
	for i, n := range named {
		out[i] = domain.Store{ID: n.id, Name: n.name}
	}
	return out, nil
}

func (s *Snapshot) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	named := distinct(s.records, func(r domain.SaleRecord) (int64, string) { return r.ChannelID, r.ChannelName })
	out := make([]domain.Channel, len(named))
	for i, n := range named {
		out[i] = domain.Channel{ID: n.id, Name: n.name}
	}
	return out, nil
}

// ListCustomers orders customers by their latest sale, newest first.
func (s *Snapshot) ListCustomers(ctx context.Context, limit int) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	history := engine.BuildCustomerHistory(s.records)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].LastOrderAt.After(history[j].LastOrderAt)
	})
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}

	out := make([]domain.Customer, len(history))
	for i, h := range history {
		last := h.LastOrderAt
		out[i] = domain.Customer{ID: h.CustomerID, Name: h.Name, LastPurchase: &last}
	}
	return out, nil
}

type namedID struct {
	id   int64
	name string
}

// distinct collects one entry per id, keeping the first name seen, sorted by
// name then id.
func distinct(records []domain.SaleRecord, key func(domain.SaleRecord) (int64, string)) []namedID {
	seen := make(map[int64]struct{})
	out := make([]namedID, 0)
	for _, r := range records {
		id, name := key(r)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, namedID{id: id, name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].name != out[j].name {
			return out[i].name < out[j].name
		}
		return out[i].id < out[j].id
	})
	return out
}

func matches(ids []int64, id int64) bool {
	return len(ids) == 0 || slices.Contains(ids, id)
}
