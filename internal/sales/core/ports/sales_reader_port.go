package ports

import (
	"context"
	"time"

	"sales-metrics-service/internal/sales/core/domain"
)

// SalesFilter narrows a sales read. Zero dates are open bounds and empty id
// lists do not filter.
type SalesFilter struct {
	Start      time.Time
	End        time.Time // inclusive calendar day
	StoreIDs   []int64
	ChannelIDs []int64
}

type CatalogFilter struct {
	StoreIDs   []int64
	ChannelIDs []int64
}

type SalesReaderPort interface {
	ReadSales(ctx context.Context, f SalesFilter) ([]domain.RawSale, error)
}

// CustomerHistoryPort returns every customer's full order history,
// regardless of any dashboard filter.
type CustomerHistoryPort interface {
	ReadCustomerHistory(ctx context.Context) ([]domain.CustomerOrderHistory, error)
}

type CatalogReaderPort interface {
	ReadCatalog(ctx context.Context, f CatalogFilter) ([]domain.CatalogProduct, error)
}

// MetadataReaderPort lists the options behind the dashboard filters.
type MetadataReaderPort interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	// ListCustomers returns at most limit customers, latest purchase first.
	ListCustomers(ctx context.Context, limit int) ([]domain.Customer, error)
}

// Snapshot serves every read port from one in-memory batch of raw sales.
type Snapshot interface {
	SalesReaderPort
	CustomerHistoryPort
	CatalogReaderPort
}

// SnapshotLoader builds a Snapshot over raw.
type SnapshotLoader func(raw []domain.RawSale) Snapshot
