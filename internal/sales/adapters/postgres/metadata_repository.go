package postgres

import (
	"context"
	"database/sql"

	"sales-metrics-service/internal/sales/core/domain"
	"sales-metrics-service/internal/sales/core/ports"
)

var _ ports.MetadataReaderPort = (*SalesRepository)(nil)

func (r *SalesRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	query := `
SELECT
    id,
    COALESCE(name, ''),
    city,
    state,
    is_active,
    is_own
FROM stores
ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Store, 0)
	for rows.Next() {
		var (
			s             domain.Store
			city, state   sql.NullString
			active, owned sql.NullBool
		)
		if err := rows.Scan(&s.ID, &s.Name, &city, &state, &active, &owned); err != nil {
			return nil, err
		}
		s.City = city.String
		s.State = state.String
		s.Active = active.Bool
		s.Own = owned.Bool
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SalesRepository) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	query := `
SELECT
    id,
    COALESCE(name, ''),
    type
FROM channels
ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Channel, 0)
	for rows.Next() {
		var (
			ch  domain.Channel
			typ sql.NullString
		)
		if err := rows.Scan(&ch.ID, &ch.Name, &typ); err != nil {
			return nil, err
		}
		ch.Type = domain.ChannelType(typ.String)
		out = append(out, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCustomers orders customers by their latest sale; customers without
// sales come last.
func (r *SalesRepository) ListCustomers(ctx context.Context, limit int) ([]domain.Customer, error) {
	query := `
SELECT
    c.id::text,
    COALESCE(c.customer_name, ''),
    c.email,
    c.phone_number,
    MAX(s.created_at)
FROM customers c
LEFT JOIN sales s ON s.customer_id = c.id
GROUP BY c.id, c.customer_name, c.email, c.phone_number
ORDER BY MAX(s.created_at) DESC NULLS LAST, c.id
LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Customer, 0)
	for rows.Next() {
		var (
			c            domain.Customer
			email, phone sql.NullString
			last         sql.NullTime
		)
		if err := rows.Scan(&c.ID, &c.Name, &email, &phone, &last); err != nil {
			return nil, err
		}
		if c.Name == "" {
			c.Name = domain.PlaceholderName
		}
		c.Email = email.String
		c.Phone = phone.String
		if last.Valid {
			ts := last.Time.UTC()
			c.LastPurchase = &ts
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
