package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sales-metrics-service/internal/sales/core/domain"
	"sales-metrics-service/internal/sales/core/ports"

	"github.com/lib/pq"
)

// SalesRepository reads the sales schema: sales, stores, channels,
// customers, products and product_sales.
type SalesRepository struct {
	db DB
}

var (
	_ ports.SalesReaderPort     = (*SalesRepository)(nil)
	_ ports.CustomerHistoryPort = (*SalesRepository)(nil)
	_ ports.CatalogReaderPort   = (*SalesRepository)(nil)
)

func NewSalesRepository(db DB) *SalesRepository {
	return &SalesRepository{db: db}
}

// whereBuilder numbers placeholders as conditions are added.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return "1=1"
	}
	return strings.Join(w.conds, " AND ")
}

func (w *whereBuilder) ids(cond string, ids []int64) {
	if len(ids) > 0 {
		w.add(cond, pq.Array(ids))
	}
}

// ReadSales returns raw rows with their product lines. Amounts travel as
// text so no precision is lost before normalization. End is inclusive.
func (r *SalesRepository) ReadSales(ctx context.Context, f ports.SalesFilter) ([]domain.RawSale, error) {
	var where whereBuilder
	if !f.Start.IsZero() {
		where.add("s.created_at >= $%d", f.Start)
	}
	if !f.End.IsZero() {
		where.add("s.created_at < $%d", f.End.AddDate(0, 0, 1))
	}
	where.ids("s.store_id = ANY($%d)", f.StoreIDs)
	where.ids("s.channel_id = ANY($%d)", f.ChannelIDs)

	query := `
SELECT
    s.id,
    COALESCE(s.store_id, 0),
    COALESCE(st.name, ''),
    COALESCE(s.channel_id, 0),
    COALESCE(ch.name, ''),
    COALESCE(s.customer_id::text, ''),
    COALESCE(c.customer_name, ''),
    s.created_at,
    s.total_amount::text,
    COALESCE(s.sale_status_desc, ''),
    s.production_seconds::bigint,
    s.delivery_seconds::bigint
FROM sales s
LEFT JOIN stores st ON st.id = s.store_id
LEFT JOIN channels ch ON ch.id = s.channel_id
LEFT JOIN customers c ON c.id = s.customer_id
WHERE ` + where.sql() + `
ORDER BY s.created_at, s.id`

	rows, err := r.db.QueryContext(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]domain.RawSale, 0)
	index := make(map[int64]int)
	ids := make([]int64, 0)
	for rows.Next() {
		var (
			id         int64
			customerID string
			s          domain.RawSale
			createdAt  time.Time
			amount     sql.NullString
			production sql.NullInt64
			delivery   sql.NullInt64
		)
		if err := rows.Scan(
			&id,
			&s.StoreID,
			&s.StoreName,
			&s.ChannelID,
			&s.ChannelName,
			&customerID,
			&s.CustomerName,
			&createdAt,
			&amount,
			&s.Status,
			&production,
			&delivery,
		); err != nil {
			return nil, err
		}
		s.SaleID = domain.RecordID(strconv.FormatInt(id, 10))
		s.CustomerID = domain.RecordID(customerID)
		s.Timestamp = createdAt.UTC().Format(time.RFC3339Nano)
		s.Amount = nullAmount(amount)
		s.ProductionSeconds = nullInt(production)
		s.DeliverySeconds = nullInt(delivery)

		index[id] = len(sales)
		ids = append(ids, id)
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return sales, nil
	}
	if err := r.attachLines(ctx, ids, index, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *SalesRepository) attachLines(ctx context.Context, ids []int64, index map[int64]int, sales []domain.RawSale) error {
	query := `
SELECT
    ps.sale_id,
    COALESCE(p.name, ''),
    COALESCE(ps.quantity, 0)::bigint,
    ps.total_price::text,
    ps.base_price::text
FROM product_sales ps
LEFT JOIN products p ON p.id = ps.product_id
WHERE ps.sale_id = ANY($1)
ORDER BY ps.sale_id, ps.id`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			saleID int64
			line   domain.RawProductLine
			total  sql.NullString
			base   sql.NullString
		)
		if err := rows.Scan(&saleID, &line.Name, &line.Quantity, &total, &base); err != nil {
			return err
		}
		line.LineTotal = nullAmount(total)
		line.BasePrice = nullAmount(base)

		i, ok := index[saleID]
		if !ok {
			continue
		}
		sales[i].Products = append(sales[i].Products, line)
	}
	return rows.Err()
}

// ReadCustomerHistory aggregates every customer's orders over the whole
// table, ignoring any dashboard filter.
func (r *SalesRepository) ReadCustomerHistory(ctx context.Context) ([]domain.CustomerOrderHistory, error) {
	query := `
SELECT
    c.id::text,
    COALESCE(c.customer_name, ''),
    COUNT(s.id),
    MAX(s.created_at)
FROM sales s
JOIN customers c ON c.id = s.customer_id
GROUP BY c.id, c.customer_name
ORDER BY c.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.CustomerOrderHistory, 0)
	for rows.Next() {
		var (
			h      domain.CustomerOrderHistory
			orders int64
			last   time.Time
		)
		if err := rows.Scan(&h.CustomerID, &h.Name, &orders, &last); err != nil {
			return nil, err
		}
		if h.Name == "" {
			h.Name = domain.PlaceholderName
		}
		h.TotalOrders = int(orders)
		h.LastOrderAt = last.UTC()
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadCatalog lists every product with its latest sale among the sales
// matching the filter. Products without a matching sale report nil.
func (r *SalesRepository) ReadCatalog(ctx context.Context, f ports.CatalogFilter) ([]domain.CatalogProduct, error) {
	var join whereBuilder
	join.ids("s.store_id = ANY($%d)", f.StoreIDs)
	join.ids("s.channel_id = ANY($%d)", f.ChannelIDs)

	query := `
SELECT
    p.id,
    COALESCE(p.name, ''),
    MAX(s.created_at)
FROM products p
LEFT JOIN product_sales ps ON ps.product_id = p.id
LEFT JOIN sales s ON s.id = ps.sale_id AND ` + join.sql() + `
GROUP BY p.id, p.name
ORDER BY p.id`

	rows, err := r.db.QueryContext(ctx, query, join.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.CatalogProduct, 0)
	for rows.Next() {
		var (
			p    domain.CatalogProduct
			last sql.NullTime
		)
		if err := rows.Scan(&p.ID, &p.Name, &last); err != nil {
			return nil, err
		}
		if last.Valid {
			ts := last.Time.UTC()
			p.LastSaleAt = &ts
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullAmount(v sql.NullString) domain.Amount {
	if !v.Valid {
		return domain.Amount{}
	}
	return domain.ParseAmount(v.String)
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}
