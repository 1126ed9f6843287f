package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"sales-metrics-service/internal/sales/core/ports"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSQLDB_ReadSalesThroughDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	created := time.Date(2024, 5, 2, 9, 15, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM sales s")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "store_id", "store_name", "channel_id", "channel_name", "customer_id",
			"customer_name", "created_at", "total_amount", "status", "production", "delivery",
		}).AddRow(int64(11), int64(2), "Norte", int64(4), "Rappi", "9", "Bia",
			created, "19.90", "COMPLETED", nil, int64(1800)))
	mock.ExpectQuery(regexp.QuoteMeta("FROM product_sales ps")).
		WillReturnRows(sqlmock.NewRows([]string{"sale_id", "name", "quantity", "total_price", "base_price"}).
			AddRow(int64(11), "Burger", int64(1), "19.90", "7.00"))

	repo := NewSalesRepository(NewSQLDB(db))
	sales, err := repo.ReadSales(context.Background(), ports.SalesFilter{StoreIDs: []int64{2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("expected 1 sale, got %d", len(sales))
	}
	s := sales[0]
	if s.SaleID != "11" || s.ChannelName != "Rappi" || s.Status != "COMPLETED" {
		t.Fatalf("unexpected sale: %+v", s)
	}
	if s.ProductionSeconds != nil || s.DeliverySeconds == nil || *s.DeliverySeconds != 1800 {
		t.Fatalf("unexpected timings: %v %v", s.ProductionSeconds, s.DeliverySeconds)
	}
	if len(s.Products) != 1 || s.Products[0].Name != "Burger" {
		t.Fatalf("unexpected lines: %+v", s.Products)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfigure_AppliesPoolSettings(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	Configure(db, PoolConfig{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetime: time.Minute})

	if got := db.Stats().MaxOpenConnections; got != 7 {
		t.Fatalf("expected 7 max open connections, got %d", got)
	}
}
