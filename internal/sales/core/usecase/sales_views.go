package usecase

import (
	"context"
	"fmt"

	"sales-metrics-service/internal/sales/core/domain"
	"sales-metrics-service/internal/sales/core/engine"
)

// Revenue views (series, rankings, ticket, overview, performance, anomalies)
// only count completed sales. Conversion, product and delivery views see
// every status.

type TimeSeriesInput struct {
	FilterInput
	Grouping    string
	Granularity string
}

func (uc *DashboardUseCase) TimeSeries(ctx context.Context, in TimeSeriesInput) (domain.TimeSeries, error) {
	w, err := parseWindow(in.FilterInput)
	if err != nil {
		return domain.TimeSeries{}, err
	}
	grouping, err := resolveGrouping(in.Grouping, in.FilterInput)
	if err != nil {
		return domain.TimeSeries{}, err
	}
	granularity, err := resolveGranularity(in.Granularity, w)
	if err != nil {
		return domain.TimeSeries{}, err
	}

	res, err := uc.readRecords(ctx, salesFilter(in.FilterInput, w, false), w)
	if err != nil {
		return domain.TimeSeries{}, err
	}
	return engine.AggregateTimeSeries(engine.Completed(res.Records), grouping, granularity)
}

type RankingInput struct {
	FilterInput
	By string // "channel" or "store"

	// IgnoreChannelFilter drops the channel selection for store rankings.
	IgnoreChannelFilter bool
}

func (uc *DashboardUseCase) Ranking(ctx context.Context, in RankingInput) ([]domain.RankingEntry, error) {
	by := engine.RankDimension(in.By)
	if by != engine.RankByChannel && by != engine.RankByStore {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRankingDimension, in.By)
	}
	w, err := parseWindow(in.FilterInput)
	if err != nil {
		return nil, err
	}

	ignore := in.IgnoreChannelFilter && by == engine.RankByStore
	res, err := uc.readRecords(ctx, salesFilter(in.FilterInput, w, ignore), w)
	if err != nil {
		return nil, err
	}
	return engine.Rank(engine.Completed(res.Records), by)
}

type TemporalInput struct {
	FilterInput
	Compare string
}

// TemporalPatterns derives the intraday, weekly and monthly views from the
// daily total series. With Compare set, monthly counts get a baseline read
// from the comparison window.
func (uc *DashboardUseCase) TemporalPatterns(ctx context.Context, in TemporalInput) (domain.TemporalPatterns, error) {
	w, err := parseWindow(in.FilterInput)
	if err != nil {
		return domain.TemporalPatterns{}, err
	}
	cmp, err := resolveComparison(in.Compare, w)
	if err != nil {
		return domain.TemporalPatterns{}, err
	}

	res, err := uc.readRecords(ctx, salesFilter(in.FilterInput, w, false), w)
	if err != nil {
		return domain.TemporalPatterns{}, err
	}
	var baseline []domain.SaleRecord
	if cmp != nil {
		prev, err := uc.readRecords(ctx, salesFilter(in.FilterInput, cmp.window, false), cmp.window)
		if err != nil {
			return domain.TemporalPatterns{}, err
		}
		baseline = engine.Completed(prev.Records)
	}
	return temporalPatterns(engine.Completed(res.Records), cmp, baseline)
}

type ProductTrendInput struct {
	FilterInput
	Weekday   *int
	StartHour *int
	EndHour   *int
	Limit     int // 0 uses the configured default
}

func (uc *DashboardUseCase) ProductTrends(ctx context.Context, in ProductTrendInput) ([]domain.ProductAggregate, error) {
	w, err := parseWindow(in.FilterInput)
	if err != nil {
		return nil, err
	}
	sel := engine.TimeSelector{Weekday: in.Weekday, StartHour: in.StartHour, EndHour: in.EndHour}
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	limit := in.Limit
	if limit < 0 {
		return nil, domain.NewConfigurationError("limit", "must not be negative")
	}
	if limit == 0 {
		limit = uc.cfg.ProductLimit
	}

	res, err := uc.readRecords(ctx, salesFilter(in.FilterInput, w, false), w)
	if err != nil {
		return nil, err
	}
	return limitProducts(engine.RankProducts(sel.Select(res.Records)), limit), nil
}

type ProductMarginInput struct {
	FilterInput
	Limit int // 0 uses the configured default
}

// ProductMargins ranks products of completed sales by revenue minus cost.
func (uc *DashboardUseCase) ProductMargins(ctx context.Context, in ProductMarginInput) ([]domain.ProductMargin, error) {
	w, err := parseWindow(in.FilterInput)
	if err != nil {
		return nil, err
	}
	limit := in.Limit
	if limit < 0 {
		return nil, domain.NewConfigurationError("limit", "must not be negative")
	}
	if limit == 0 {
		limit = uc.cfg.ProductLimit
	}

	res, err := uc.readRecords(ctx, salesFilter(in.FilterInput, w, false), w)
	if err != nil {
		return nil, err
	}
	margins := engine.ProductMargins(engine.Completed(res.Records))
	if len(margins) > limit {
		margins = margins[:limit]
	}
	return margins, nil
}

func (uc *DashboardUseCase) ProductsByHour(ctx context.Context, in FilterInput) ([]domain.HourWindowTrend, error) {
	w, err := parseWindow(in)
	if err != nil {
		return nil, err
	}
	res, err := uc.readRecords(ctx, salesFilter(in, w, false), w)
	if err != nil {
		return nil, err
	}
	return engine.ProductsByHour(res.Records), nil
}

// StaleProducts only honours the store and channel selection; staleness is
// always measured up to now.
func (uc *DashboardUseCase) StaleProducts(ctx context.Context, in FilterInput) ([]domain.StaleProduct, error) {
	if err := uc.cfg.Stale.Validate(); err != nil {
		return nil, err
	}
	catalog, err := uc.catalog.ReadCatalog(ctx, catalogFilter(in))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return engine.StaleProducts(catalog, uc.now(), uc.cfg.Stale)
}

// LostCustomersInput overrides the configured churn thresholds when set.
type LostCustomersInput struct {
	MinOrders      *int
	InactivityDays *int
}

func (uc *DashboardUseCase) LostCustomers(ctx context.Context, in LostCustomersInput) ([]domain.LostCustomer, error) {
	cfg := uc.cfg.Churn
	if in.MinOrders != nil {
		cfg.MinOrders = *in.MinOrders
	}
	if in.InactivityDays != nil {
		cfg.InactivityDays = *in.InactivityDays
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	history, err := uc.customers.ReadCustomerHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("read customer history: %w", err)
	}
	return engine.LostCustomers(history, uc.now(), cfg)
}

func (uc *DashboardUseCase) Conversion(ctx context.Context, in FilterInput) (domain.Conversion, error) {
	w, err := parseWindow(in)
	if err != nil {
		return domain.Conversion{}, err
	}
	res, err := uc.readRecords(ctx, salesFilter(in, w, false), w)
	if err != nil {
		return domain.Conversion{}, err
	}
	return engine.Conversion(res.Records), nil
}

func (uc *DashboardUseCase) Ticket(ctx context.Context, in FilterInput) (domain.TicketBreakdown, error) {
	w, err := parseWindow(in)
	if err != nil {
		return domain.TicketBreakdown{}, err
	}
	res, err := uc.readRecords(ctx, salesFilter(in, w, false), w)
	if err != nil {
		return domain.TicketBreakdown{}, err
	}
	return engine.TicketBreakdown(engine.Completed(res.Records)), nil
}

func (uc *DashboardUseCase) DeliveryPerformance(ctx context.Context, in FilterInput) (domain.DeliveryPerformance, error) {
	w, err := parseWindow(in)
	if err != nil {
		return domain.DeliveryPerformance{}, err
	}
	res, err := uc.readRecords(ctx, salesFilter(in, w, false), w)
	if err != nil {
		return domain.DeliveryPerformance{}, err
	}
	return deliveryPerformance(res.Records), nil
}

func (uc *DashboardUseCase) Overview(ctx context.Context, in FilterInput) (domain.Overview, error) {
	w, err := parseWindow(in)
	if err != nil {
		return domain.Overview{}, err
	}
	res, err := uc.readRecords(ctx, salesFilter(in, w, false), w)
	if err != nil {
		return domain.Overview{}, err
	}
	return engine.Overview(engine.Completed(res.Records)), nil
}

// Performance compares revenue of the selected window with the window of the
// same length right before it. Without dates it compares the trailing 30
// days, today included, with the 30 before.
func (uc *DashboardUseCase) Performance(ctx context.Context, in FilterInput) (domain.PeriodPerformance, error) {
	w, err := parseWindow(in)
	if err != nil {
		return domain.PeriodPerformance{}, err
	}
	if !w.Bounded() {
		if w.Start.IsZero() != w.End.IsZero() {
			return domain.PeriodPerformance{}, fmt.Errorf("%w: performance needs both start and end, or neither", ErrInvalidDateRange)
		}
		today := uc.now().UTC()
		w, err = engine.NewWindow(today.AddDate(0, 0, 1-fallbackPerformanceDays), today)
		if err != nil {
			return domain.PeriodPerformance{}, err
		}
	}
	prev, _ := engine.PreviousWindow(w)

	cur, err := uc.readRecords(ctx, salesFilter(in, w, false), w)
	if err != nil {
		return domain.PeriodPerformance{}, err
	}
	before, err := uc.readRecords(ctx, salesFilter(in, prev, false), prev)
	if err != nil {
		return domain.PeriodPerformance{}, err
	}
	return engine.PeriodPerformance(engine.Completed(cur.Records), engine.Completed(before.Records)), nil
}

type AnomalyInput struct {
	FilterInput
	MinOrders *int // nil uses the configured threshold
}

func (uc *DashboardUseCase) Anomalies(ctx context.Context, in AnomalyInput) (domain.AnomalyReport, error) {
	w, err := parseWindow(in.FilterInput)
	if err != nil {
		return domain.AnomalyReport{}, err
	}
	minOrders := uc.cfg.AnomalyMinOrders
	if in.MinOrders != nil {
		minOrders = *in.MinOrders
	}
	if minOrders < 0 {
		return domain.AnomalyReport{}, domain.NewConfigurationError("min_orders", "must not be negative")
	}

	res, err := uc.readRecords(ctx, salesFilter(in.FilterInput, w, false), w)
	if err != nil {
		return domain.AnomalyReport{}, err
	}
	return engine.WeeklyAnomalies(engine.Completed(res.Records), minOrders)
}

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 500
)

type RecentOrdersInput struct {
	FilterInput
	Statuses []string // any spelling NormalizeStatus accepts; empty keeps all
	Limit    int      // 0 uses 20
	Offset   int
}

func (uc *DashboardUseCase) RecentOrders(ctx context.Context, in RecentOrdersInput) (domain.RecentOrders, error) {
	w, err := parseWindow(in.FilterInput)
	if err != nil {
		return domain.RecentOrders{}, err
	}
	limit := in.Limit
	if limit == 0 {
		limit = defaultRecentLimit
	}
	if limit < 0 || limit > maxRecentLimit {
		return domain.RecentOrders{}, domain.NewConfigurationError("limit", fmt.Sprintf("must be between 1 and %d", maxRecentLimit))
	}
	statuses := make([]domain.Status, 0, len(in.Statuses))
	for _, s := range in.Statuses {
		statuses = append(statuses, engine.NormalizeStatus(s))
	}

	res, err := uc.readRecords(ctx, salesFilter(in.FilterInput, w, false), w)
	if err != nil {
		return domain.RecentOrders{}, err
	}
	return engine.RecentOrders(res.Records, statuses, limit, in.Offset)
}
