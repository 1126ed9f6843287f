package usecase

import (
	"context"
	"fmt"

	"sales-metrics-service/internal/sales/core/domain"
	"sales-metrics-service/internal/sales/core/ports"
)

const (
	defaultCustomerLimit = 100
	maxCustomerLimit     = 1000
)

// MetadataUseCase serves the store, channel and customer lists the
// dashboard filters are built from.
type MetadataUseCase struct {
	reader ports.MetadataReaderPort
}

func NewMetadataUseCase(reader ports.MetadataReaderPort) *MetadataUseCase {
	return &MetadataUseCase{reader: reader}
}

func (uc *MetadataUseCase) Stores(ctx context.Context) ([]domain.Store, error) {
	stores, err := uc.reader.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

func (uc *MetadataUseCase) Channels(ctx context.Context) ([]domain.Channel, error) {
	channels, err := uc.reader.ListChannels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	return channels, nil
}

// Customers lists up to limit customers, 0 meaning 100.
func (uc *MetadataUseCase) Customers(ctx context.Context, limit int) ([]domain.Customer, error) {
	if limit == 0 {
		limit = defaultCustomerLimit
	}
	if limit < 0 || limit > maxCustomerLimit {
		return nil, domain.NewConfigurationError("limit", fmt.Sprintf("must be between 1 and %d", maxCustomerLimit))
	}

	customers, err := uc.reader.ListCustomers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}
