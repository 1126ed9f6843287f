package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderName replaces missing store, channel, customer and product names.
const PlaceholderName = "N/A"

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusCanceled  Status = "canceled"
)

func (s Status) IsCompleted() bool { return s == StatusCompleted }
func (s Status) IsCanceled() bool  { return s == StatusCanceled }

// RawSale is a sale row as it arrives from a reader, before normalization.
// Every field is optional; the Normalizer decides what is usable.
type RawSale struct {
	SaleID       RecordID         `json:"sale_id"`
	StoreID      int64            `json:"store_id"`
	StoreName    string           `json:"store_name"`
	ChannelID    int64            `json:"channel_id"`
	ChannelName  string           `json:"channel_name"`
	CustomerID   RecordID         `json:"customer_id"`
	CustomerName string           `json:"customer_name"`
	Timestamp    string           `json:"timestamp"`
	Amount       Amount           `json:"amount" swaggertype:"string"`
	Status       string           `json:"status"`
	Products     []RawProductLine `json:"products"`

	ProductionSeconds *int64 `json:"production_seconds,omitempty"`
	DeliverySeconds   *int64 `json:"delivery_seconds,omitempty"`
}

type RawProductLine struct {
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	LineTotal Amount `json:"line_total" swaggertype:"string"`
	BasePrice Amount `json:"base_price" swaggertype:"string"`
}

// RecordID is an identifier as sent by a source system. It decodes from a
// JSON string or number; any other JSON value decodes as empty.
type RecordID string

func (id *RecordID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil || n == "" {
		*id = ""
		return nil
	}
	*id = RecordID(n.String())
	return nil
}

// Amount is a raw money field. Valid is false when the value was absent,
// null or not a number.
type Amount struct {
	decimal.NullDecimal
}

// ParseAmount reads s as a decimal. Unparsable input yields an invalid Amount.
func ParseAmount(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}
	}
	return Amount{decimal.NewNullDecimal(d)}
}

// UnmarshalJSON accepts quoted and bare numbers. Values that do not parse
// leave the amount invalid instead of failing the enclosing document.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.NullDecimal
	if err := d.UnmarshalJSON(b); err != nil {
		*a = Amount{}
		return nil
	}
	a.NullDecimal = d
	return nil
}

// SaleRecord is a validated, canonical sale. Built only by the Normalizer.
type SaleRecord struct {
	SaleID       string
	StoreID      int64
	StoreName    string
	ChannelID    int64
	ChannelName  string
	CustomerID   string
	CustomerName string
	Timestamp    time.Time // UTC
	Amount       decimal.Decimal
	Status       Status
	Products     []ProductLine

	ProductionSeconds *int64
	DeliverySeconds   *int64
}

type ProductLine struct {
	Name      string
	Quantity  int64
	LineTotal decimal.Decimal
	BasePrice decimal.Decimal // unit cost
}

// DeliveryRecord is the delivery timing slice of a sale.
type DeliveryRecord struct {
	Weekday int // 0 = Sunday
	Hour    int
	Minutes float64
}

// CustomerOrderHistory aggregates a customer's whole order history,
// independent of any dashboard window.
type CustomerOrderHistory struct {
	CustomerID  string
	Name        string
	TotalOrders int
	LastOrderAt time.Time
}

// CatalogProduct is a product offered by a store. LastSaleAt is nil when the
// product never sold under the requested filters.
type CatalogProduct struct {
	ID         int64
	Name       string
	LastSaleAt *time.Time
}
