package fiber

import (
	"time"

	"sales-metrics-service/internal/sales/core/domain"
	"sales-metrics-service/internal/sales/core/engine"
	"sales-metrics-service/internal/sales/core/usecase"

	"github.com/shopspring/decimal"
)

// Money values travel as fixed two-decimal strings.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func bestOfDay(trends []domain.HourWindowTrend) *domain.HourWindowTrend {
	best, ok := engine.BestOfDay(trends)
	if !ok {
		return nil
	}
	return &best
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid date range: \"2024-13-01\" is not YYYY-MM-DD"`
}

type BucketResponse struct {
	Time    string `json:"time" example:"2024-01-05"`
	Key     string `json:"key" example:"ifood"`
	Label   string `json:"label" example:"iFood"`
	Revenue string `json:"revenue" example:"1520.40"`
	Orders  int    `json:"orders" example:"31"`
}

type TimeSeriesResponse struct {
	Grouping    string           `json:"grouping" example:"channel"`
	Granularity string           `json:"granularity" example:"daily"`
	Keys        []string         `json:"keys"`
	Buckets     []BucketResponse `json:"buckets"`
}

type RankingEntryResponse struct {
	Name       string  `json:"name" example:"iFood"`
	Revenue    string  `json:"revenue" example:"8450.00"`
	Percentage float64 `json:"percentage" example:"42.5"`
}

type LabeledValueResponse struct {
	Label string `json:"label" example:"Mon"`
	Value int    `json:"value" example:"120"`
}

type MonthlyPatternResponse struct {
	Month     string   `json:"month" example:"2024-02"`
	Label     string   `json:"label" example:"Feb 2024"`
	Current   int      `json:"current" example:"300"`
	Previous  *int     `json:"previous"`
	Variation *float64 `json:"variation"`
}

type TemporalResponse struct {
	Intraday []LabeledValueResponse   `json:"intraday"`
	Weekly   []LabeledValueResponse   `json:"weekly"`
	Monthly  []MonthlyPatternResponse `json:"monthly"`
}

type ProductResponse struct {
	Name     string `json:"name" example:"Pizza Margherita"`
	Quantity int64  `json:"quantity" example:"42"`
	Revenue  string `json:"revenue" example:"1890.00"`
}

type ProductMarginResponse struct {
	Name     string `json:"name" example:"Pizza Margherita"`
	Quantity int64  `json:"quantity" example:"42"`
	Revenue  string `json:"revenue" example:"1890.00"`
	Cost     string `json:"cost" example:"840.00"`
	Margin   string `json:"margin" example:"1050.00"`
}

type OrderLineResponse struct {
	Name     string `json:"name" example:"Pizza Margherita"`
	Quantity int64  `json:"quantity" example:"2"`
	Total    string `json:"total" example:"90.00"`
}

type RecentOrderResponse struct {
	SaleID   string              `json:"sale_id" example:"981"`
	Date     time.Time           `json:"date"`
	Amount   string              `json:"amount" example:"92.50"`
	Customer string              `json:"customer" example:"Ana"`
	Channel  string              `json:"channel" example:"iFood"`
	Store    string              `json:"store" example:"Loja Centro"`
	Status   string              `json:"status" example:"completed"`
	Products []OrderLineResponse `json:"products"`
}

type RecentOrdersResponse struct {
	Total  int                   `json:"total" example:"140"`
	Limit  int                   `json:"limit" example:"20"`
	Offset int                   `json:"offset" example:"0"`
	Orders []RecentOrderResponse `json:"orders"`
}

type ProductQuantityResponse struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type HourWindowResponse struct {
	Label     string                  `json:"label" example:"11-15h"`
	StartHour int                     `json:"start_hour" example:"11"`
	EndHour   int                     `json:"end_hour" example:"15"`
	Top       ProductQuantityResponse `json:"top"`
	Worst     ProductQuantityResponse `json:"worst"`
}

type ProductsByHourResponse struct {
	Windows   []HourWindowResponse `json:"windows"`
	BestOfDay *HourWindowResponse  `json:"best_of_day"`
}

type StaleProductResponse struct {
	ID              int64      `json:"id" example:"17"`
	Name            string     `json:"name" example:"Tiramisu"`
	LastSaleAt      *time.Time `json:"last_sale_at"`
	DaysWithoutSale int        `json:"days_without_sale" example:"64"`
	NeverSold       bool       `json:"never_sold"`
	Risk            string     `json:"risk" example:"medium"`
}

type LostCustomerResponse struct {
	CustomerID         string    `json:"customer_id" example:"42"`
	Name               string    `json:"name" example:"Ana"`
	TotalOrders        int       `json:"total_orders" example:"7"`
	LastOrderAt        time.Time `json:"last_order_at"`
	DaysSinceLastOrder int       `json:"days_since_last_order" example:"45"`
}

type ConversionResponse struct {
	Completed  int     `json:"completed" example:"940"`
	Canceled   int     `json:"canceled" example:"60"`
	Percentage float64 `json:"percentage" example:"94"`
}

type TicketEntryResponse struct {
	Store   string `json:"store" example:"Centro"`
	Channel string `json:"channel" example:"iFood"`
	Orders  int    `json:"orders" example:"120"`
	Revenue string `json:"revenue" example:"6000.00"`
	Ticket  string `json:"ticket" example:"50.00"`
}

type TicketResponse struct {
	Overall string                `json:"overall" example:"48.75"`
	Orders  int                   `json:"orders" example:"400"`
	Entries []TicketEntryResponse `json:"entries"`
}

type WeekdayDeliveryResponse struct {
	Weekday        int     `json:"weekday" example:"1"`
	Label          string  `json:"label" example:"Mon"`
	AverageMinutes float64 `json:"average_minutes" example:"32.5"`
	Deliveries     int     `json:"deliveries" example:"80"`
}

type WeekdayHourDeliveryResponse struct {
	Weekday        int     `json:"weekday" example:"5"`
	Hour           int     `json:"hour" example:"20"`
	AverageMinutes float64 `json:"average_minutes" example:"41.2"`
	Deliveries     int     `json:"deliveries" example:"18"`
}

type DeliveryResponse struct {
	ByWeekday     []WeekdayDeliveryResponse     `json:"by_weekday"`
	ByWeekdayHour []WeekdayHourDeliveryResponse `json:"by_weekday_hour"`
}

type OverviewResponse struct {
	Revenue                  string  `json:"revenue" example:"19500.00"`
	Orders                   int     `json:"orders" example:"400"`
	AverageTicket            string  `json:"average_ticket" example:"48.75"`
	AverageProductionSeconds float64 `json:"average_production_seconds" example:"720"`
	AverageDeliverySeconds   float64 `json:"average_delivery_seconds" example:"1980"`
}

type PerformanceResponse struct {
	Current     string  `json:"current" example:"19500.00"`
	Previous    string  `json:"previous" example:"15000.00"`
	Performance float64 `json:"performance" example:"30"`
}

type AnomalyResponse struct {
	Week    string `json:"week" example:"2024-03-04"`
	Kind    string `json:"kind" example:"peak"`
	Revenue string `json:"revenue" example:"9800.00"`
	Orders  int    `json:"orders" example:"210"`
}

type AnomalyReportResponse struct {
	MeanRevenue float64           `json:"mean_revenue" example:"4200.5"`
	StdDev      float64           `json:"std_dev" example:"850.25"`
	Anomalies   []AnomalyResponse `json:"anomalies"`
}

type DashboardResponse struct {
	Start          string                 `json:"start,omitempty" example:"2024-01-01"`
	End            string                 `json:"end,omitempty" example:"2024-01-31"`
	Skipped        int                    `json:"skipped" example:"0"`
	TimeSeries     TimeSeriesResponse     `json:"timeseries"`
	ChannelRanking []RankingEntryResponse `json:"channel_ranking"`
	StoreRanking   []RankingEntryResponse `json:"store_ranking"`
	Temporal       TemporalResponse       `json:"temporal"`
	TopProducts    []ProductResponse      `json:"top_products"`
	ProductsByHour ProductsByHourResponse `json:"products_by_hour"`
	StaleProducts  []StaleProductResponse `json:"stale_products"`
	LostCustomers  []LostCustomerResponse `json:"lost_customers"`
	Conversion     ConversionResponse     `json:"conversion"`
	Ticket         TicketResponse         `json:"ticket"`
	Delivery       DeliveryResponse       `json:"delivery"`
	Overview       OverviewResponse       `json:"overview"`
	Performance    *PerformanceResponse   `json:"performance"`
	Anomalies      AnomalyReportResponse  `json:"anomalies"`
}

// AnalyzeRequest carries a batch of raw sales to analyze without touching
// the database.
// @Description Raw sales batch plus dashboard options
type AnalyzeRequest struct {
	Sales       []domain.RawSale `json:"sales"`
	Now         string           `json:"now" example:"2024-03-01"`
	Start       string           `json:"start" example:"2024-01-01"`
	End         string           `json:"end" example:"2024-01-31"`
	StoreIDs    []int64          `json:"store_ids"`
	ChannelIDs  []int64          `json:"channel_ids"`
	Grouping    string           `json:"grouping" example:"channel"`
	Granularity string           `json:"granularity" example:"daily"`
	Compare     string           `json:"compare" example:"previous_period"`
}

type RejectedRecordResponse struct {
	Index  int    `json:"index" example:"3"`
	SaleID string `json:"sale_id,omitempty" example:"981"`
	Reason string `json:"reason" example:"unparsable timestamp"`
}

type StoreResponse struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"Loja Centro"`
	City     string `json:"city" example:"Recife"`
	State    string `json:"state" example:"PE"`
	IsActive bool   `json:"is_active" example:"true"`
	IsOwn    bool   `json:"is_own" example:"true"`
}

type ChannelResponse struct {
	ID   int64  `json:"id" example:"4"`
	Name string `json:"name" example:"iFood"`
	Type string `json:"type" example:"D"`
}

type CustomerResponse struct {
	ID           string  `json:"id" example:"42"`
	Name         string  `json:"name" example:"Ana"`
	Email        string  `json:"email" example:"ana@example.com"`
	PhoneNumber  string  `json:"phone_number" example:"+55 81 99999-0000"`
	LastPurchase *string `json:"last_purchase" example:"2024-04-02"`
}

type AnalyzeResponse struct {
	Received  int                      `json:"received" example:"120"`
	Accepted  int                      `json:"accepted" example:"118"`
	Rejected  []RejectedRecordResponse `json:"rejected"`
	Dashboard DashboardResponse        `json:"dashboard"`
}

func toTimeSeriesResponse(ts domain.TimeSeries) TimeSeriesResponse {
	resp := TimeSeriesResponse{
		Grouping:    string(ts.Grouping),
		Granularity: string(ts.Granularity),
		Keys:        append([]string{}, ts.Keys...),
		Buckets:     make([]BucketResponse, 0, len(ts.Buckets)),
	}
	for _, b := range ts.Buckets {
		resp.Buckets = append(resp.Buckets, BucketResponse{
			Time:    b.Time,
			Key:     b.Key,
			Label:   b.Label,
			Revenue: money(b.Revenue),
			Orders:  b.Orders,
		})
	}
	return resp
}

func toRankingResponse(entries []domain.RankingEntry) []RankingEntryResponse {
	out := make([]RankingEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, RankingEntryResponse{
			Name:       e.Name,
			Revenue:    money(e.Revenue),
			Percentage: e.Percentage,
		})
	}
	return out
}

func toLabeledValues(values []domain.LabeledValue) []LabeledValueResponse {
	out := make([]LabeledValueResponse, 0, len(values))
	for _, v := range values {
		out = append(out, LabeledValueResponse{Label: v.Label, Value: v.Value})
	}
	return out
}

func toTemporalResponse(t domain.TemporalPatterns) TemporalResponse {
	resp := TemporalResponse{
		Intraday: toLabeledValues(t.Intraday),
		Weekly:   toLabeledValues(t.Weekly),
		Monthly:  make([]MonthlyPatternResponse, 0, len(t.Monthly)),
	}
	for _, m := range t.Monthly {
		resp.Monthly = append(resp.Monthly, MonthlyPatternResponse{
			Month:     m.Month,
			Label:     m.Label,
			Current:   m.Current,
			Previous:  m.Previous,
			Variation: m.Variation,
		})
	}
	return resp
}

func toProductsResponse(products []domain.ProductAggregate) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			Name:     p.Name,
			Quantity: p.Quantity,
			Revenue:  money(p.Revenue),
		})
	}
	return out
}

func toProductMarginsResponse(margins []domain.ProductMargin) []ProductMarginResponse {
	out := make([]ProductMarginResponse, 0, len(margins))
	for _, m := range margins {
		out = append(out, ProductMarginResponse{
			Name:     m.Name,
			Quantity: m.Quantity,
			Revenue:  money(m.Revenue),
			Cost:     money(m.Cost),
			Margin:   money(m.Margin),
		})
	}
	return out
}

func toRecentOrdersResponse(page domain.RecentOrders) RecentOrdersResponse {
	resp := RecentOrdersResponse{
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
		Orders: make([]RecentOrderResponse, 0, len(page.Orders)),
	}
	for _, o := range page.Orders {
		lines := make([]OrderLineResponse, 0, len(o.Products))
		for _, p := range o.Products {
			lines = append(lines, OrderLineResponse{Name: p.Name, Quantity: p.Quantity, Total: money(p.LineTotal)})
		}
		resp.Orders = append(resp.Orders, RecentOrderResponse{
			SaleID:   o.SaleID,
			Date:     o.Timestamp,
			Amount:   money(o.Amount),
			Customer: o.CustomerName,
			Channel:  o.ChannelName,
			Store:    o.StoreName,
			Status:   string(o.Status),
			Products: lines,
		})
	}
	return resp
}

func toHourWindowResponse(t domain.HourWindowTrend) HourWindowResponse {
	return HourWindowResponse{
		Label:     t.Window.Label,
		StartHour: t.Window.Start,
		EndHour:   t.Window.End,
		Top:       ProductQuantityResponse{Name: t.Top.Name, Quantity: t.Top.Quantity},
		Worst:     ProductQuantityResponse{Name: t.Worst.Name, Quantity: t.Worst.Quantity},
	}
}

func toProductsByHourResponse(trends []domain.HourWindowTrend, best *domain.HourWindowTrend) ProductsByHourResponse {
	resp := ProductsByHourResponse{Windows: make([]HourWindowResponse, 0, len(trends))}
	for _, t := range trends {
		resp.Windows = append(resp.Windows, toHourWindowResponse(t))
	}
	if best != nil {
		b := toHourWindowResponse(*best)
		resp.BestOfDay = &b
	}
	return resp
}

func toStaleResponse(products []domain.StaleProduct) []StaleProductResponse {
	out := make([]StaleProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, StaleProductResponse{
			ID:              p.ID,
			Name:            p.Name,
			LastSaleAt:      p.LastSaleAt,
			DaysWithoutSale: p.DaysWithoutSale,
			NeverSold:       p.NeverSold,
			Risk:            string(p.Tier),
		})
	}
	return out
}

func toLostCustomersResponse(customers []domain.LostCustomer) []LostCustomerResponse {
	out := make([]LostCustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, LostCustomerResponse{
			CustomerID:         c.CustomerID,
			Name:               c.Name,
			TotalOrders:        c.TotalOrders,
			LastOrderAt:        c.LastOrderAt,
			DaysSinceLastOrder: c.DaysSinceLastOrder,
		})
	}
	return out
}

func toConversionResponse(c domain.Conversion) ConversionResponse {
	return ConversionResponse{Completed: c.Completed, Canceled: c.Canceled, Percentage: c.Percentage}
}

func toTicketResponse(t domain.TicketBreakdown) TicketResponse {
	resp := TicketResponse{
		Overall: money(t.Overall),
		Orders:  t.Orders,
		Entries: make([]TicketEntryResponse, 0, len(t.Entries)),
	}
	for _, e := range t.Entries {
		resp.Entries = append(resp.Entries, TicketEntryResponse{
			Store:   e.StoreName,
			Channel: e.ChannelName,
			Orders:  e.Orders,
			Revenue: money(e.Revenue),
			Ticket:  money(e.Ticket),
		})
	}
	return resp
}

func toDeliveryResponse(d domain.DeliveryPerformance) DeliveryResponse {
	resp := DeliveryResponse{
		ByWeekday:     make([]WeekdayDeliveryResponse, 0, len(d.ByWeekday)),
		ByWeekdayHour: make([]WeekdayHourDeliveryResponse, 0, len(d.ByWeekdayHour)),
	}
	for _, w := range d.ByWeekday {
		resp.ByWeekday = append(resp.ByWeekday, WeekdayDeliveryResponse{
			Weekday:        w.Weekday,
			Label:          w.Label,
			AverageMinutes: w.AverageMinutes,
			Deliveries:     w.Deliveries,
		})
	}
	for _, w := range d.ByWeekdayHour {
		resp.ByWeekdayHour = append(resp.ByWeekdayHour, WeekdayHourDeliveryResponse{
			Weekday:        w.Weekday,
			Hour:           w.Hour,
			AverageMinutes: w.AverageMinutes,
			Deliveries:     w.Deliveries,
		})
	}
	return resp
}

func toOverviewResponse(o domain.Overview) OverviewResponse {
	return OverviewResponse{
		Revenue:                  money(o.Revenue),
		Orders:                   o.Orders,
		AverageTicket:            money(o.AverageTicket),
		AverageProductionSeconds: o.AverageProductionSeconds,
		AverageDeliverySeconds:   o.AverageDeliverySeconds,
	}
}

func toPerformanceResponse(p domain.PeriodPerformance) PerformanceResponse {
	return PerformanceResponse{
		Current:     money(p.Current),
		Previous:    money(p.Previous),
		Performance: p.Performance,
	}
}

func toAnomalyResponse(r domain.AnomalyReport) AnomalyReportResponse {
	resp := AnomalyReportResponse{
		MeanRevenue: r.MeanRevenue,
		StdDev:      r.StdDev,
		Anomalies:   make([]AnomalyResponse, 0, len(r.Anomalies)),
	}
	for _, a := range r.Anomalies {
		resp.Anomalies = append(resp.Anomalies, AnomalyResponse{
			Week:    a.Week,
			Kind:    string(a.Kind),
			Revenue: money(a.Revenue),
			Orders:  a.Orders,
		})
	}
	return resp
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Start:          d.Start,
		End:            d.End,
		Skipped:        d.Skipped,
		TimeSeries:     toTimeSeriesResponse(d.TimeSeries),
		ChannelRanking: toRankingResponse(d.ChannelRanking),
		StoreRanking:   toRankingResponse(d.StoreRanking),
		Temporal:       toTemporalResponse(d.Temporal),
		TopProducts:    toProductsResponse(d.TopProducts),
		ProductsByHour: toProductsByHourResponse(d.ProductsByHour, bestOfDay(d.ProductsByHour)),
		StaleProducts:  toStaleResponse(d.StaleProducts),
		LostCustomers:  toLostCustomersResponse(d.LostCustomers),
		Conversion:     toConversionResponse(d.Conversion),
		Ticket:         toTicketResponse(d.Ticket),
		Delivery:       toDeliveryResponse(d.Delivery),
		Overview:       toOverviewResponse(d.Overview),
		Anomalies:      toAnomalyResponse(d.Anomalies),
	}
	if d.Performance != nil {
		p := toPerformanceResponse(*d.Performance)
		resp.Performance = &p
	}
	return resp
}

func toStoresResponse(stores []domain.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, StoreResponse{
			ID:       s.ID,
			Name:     s.Name,
			City:     s.City,
			State:    s.State,
			IsActive: s.Active,
			IsOwn:    s.Own,
		})
	}
	return out
}

func toChannelsResponse(channels []domain.Channel) []ChannelResponse {
	out := make([]ChannelResponse, 0, len(channels))
	for _, ch := range channels {
		out = append(out, ChannelResponse{ID: ch.ID, Name: ch.Name, Type: string(ch.Type)})
	}
	return out
}

func toCustomersResponse(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp := CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, PhoneNumber: c.Phone}
		if c.LastPurchase != nil {
			day := c.LastPurchase.Format("2006-01-02")
			resp.LastPurchase = &day
		}
		out = append(out, resp)
	}
	return out
}

func toAnalyzeResponse(res usecase.AnalyzeResult) AnalyzeResponse {
	resp := AnalyzeResponse{
		Received: res.Received,
		Accepted: res.Accepted,
		Rejected: make([]RejectedRecordResponse, 0, len(res.Rejected)),
	}
	for _, r := range res.Rejected {
		resp.Rejected = append(resp.Rejected, RejectedRecordResponse{
			Index:  r.Index,
			SaleID: r.SaleID,
			Reason: r.Reason,
		})
	}
	if res.Dashboard != nil {
		resp.Dashboard = toDashboardResponse(res.Dashboard)
	}
	return resp
}
