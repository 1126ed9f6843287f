package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TotalGroupKey is the single series key used when no dimension is selected.
const TotalGroupKey = "TOTAL"

type Grouping string

const (
	GroupByTotal   Grouping = "total"
	GroupByStore   Grouping = "store"
	GroupByChannel Grouping = "channel"
)

type Granularity string

const (
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
)

// Bucket is one (time point, group) slot of a time series.
type Bucket struct {
	Time    string    // "2006-01-02" or "2006-01"
	Start   time.Time // first instant of the time point, UTC
	Key     string    // normalized series identifier
	Label   string    // display name before normalization
	Revenue decimal.Decimal
	Orders  int
}

type TimeSeries struct {
	Grouping    Grouping
	Granularity Granularity
	Keys        []string
	Buckets     []Bucket
}

type RankingEntry struct {
	Name       string
	Revenue    decimal.Decimal
	Percentage float64
}

type LabeledValue struct {
	Label string
	Value int
}

type MonthlyPattern struct {
	Month     string // "2006-01"
	Label     string
	Current   int
	Previous  *int
	Variation *float64
}

type TemporalPatterns struct {
	Intraday []LabeledValue
	Weekly   []LabeledValue
	Monthly  []MonthlyPattern
}

type ProductAggregate struct {
	Name     string
	Quantity int64
	Revenue  decimal.Decimal
}

// ProductMargin is revenue against cost, cost being quantity times the unit
// base price.
type ProductMargin struct {
	Name     string
	Quantity int64
	Revenue  decimal.Decimal
	Cost     decimal.Decimal
	Margin   decimal.Decimal
}

type ProductQuantity struct {
	Name     string
	Quantity int64
}

type HourWindow struct {
	Label string
	Start int // inclusive
	End   int // exclusive
}

type HourWindowTrend struct {
	Window HourWindow
	Top    ProductQuantity
	Worst  ProductQuantity
}

type RiskTier string

const (
	RiskHigh   RiskTier = "high"
	RiskMedium RiskTier = "medium"
	RiskWatch  RiskTier = "watch"
)

type StaleProduct struct {
	ID              int64
	Name            string
	LastSaleAt      *time.Time
	DaysWithoutSale int
	NeverSold       bool
	Tier            RiskTier
}

type LostCustomer struct {
	CustomerID         string
	Name               string
	TotalOrders        int
	LastOrderAt        time.Time
	DaysSinceLastOrder int
}

type Conversion struct {
	Completed  int
	Canceled   int
	Percentage float64
}

type TicketEntry struct {
	StoreName   string
	ChannelName string
	Orders      int
	Revenue     decimal.Decimal
	Ticket      decimal.Decimal
}

type TicketBreakdown struct {
	Overall decimal.Decimal
	Orders  int
	Entries []TicketEntry
}

type WeekdayDelivery struct {
	Weekday        int
	Label          string
	AverageMinutes float64
	Deliveries     int
}

type WeekdayHourDelivery struct {
	Weekday        int
	Hour           int
	AverageMinutes float64
	Deliveries     int
}

type DeliveryPerformance struct {
	ByWeekday     []WeekdayDelivery
	ByWeekdayHour []WeekdayHourDelivery
}

type Overview struct {
	Revenue                  decimal.Decimal
	Orders                   int
	AverageTicket            decimal.Decimal
	AverageProductionSeconds float64
	AverageDeliverySeconds   float64
}

type PeriodPerformance struct {
	Current     decimal.Decimal
	Previous    decimal.Decimal
	Performance float64
}

type AnomalyKind string

const (
	AnomalyPeak AnomalyKind = "peak"
	AnomalyDrop AnomalyKind = "drop"
)

type WeeklyAnomaly struct {
	Week    string // Monday of the ISO week, "2006-01-02"
	Kind    AnomalyKind
	Revenue decimal.Decimal
	Orders  int
}

type AnomalyReport struct {
	MeanRevenue float64
	StdDev      float64
	Anomalies   []WeeklyAnomaly
}

// RecentOrders is one page of sales, newest first. Total counts every sale
// matching the selection before paging.
type RecentOrders struct {
	Total  int
	Limit  int
	Offset int
	Orders []SaleRecord
}

// Dashboard bundles every view computed over one normalized snapshot.
type Dashboard struct {
	Start   string
	End     string
	Skipped int

	TimeSeries     TimeSeries
	ChannelRanking []RankingEntry
	StoreRanking   []RankingEntry
	Temporal       TemporalPatterns
	TopProducts    []ProductAggregate
	ProductsByHour []HourWindowTrend
	StaleProducts  []StaleProduct
	LostCustomers  []LostCustomer
	Conversion     Conversion
	Ticket         TicketBreakdown
	Delivery       DeliveryPerformance
	Overview       Overview
	Performance    *PeriodPerformance // nil without a bounded window
	Anomalies      AnomalyReport
}
