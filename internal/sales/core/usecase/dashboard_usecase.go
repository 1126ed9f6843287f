package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sales-metrics-service/internal/logging"
	"sales-metrics-service/internal/sales/core/domain"
	"sales-metrics-service/internal/sales/core/engine"
	"sales-metrics-service/internal/sales/core/ports"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrInvalidGrouping         = errors.New("invalid grouping")
	ErrInvalidGranularity      = errors.New("invalid granularity")
	ErrInvalidRankingDimension = errors.New("invalid ranking dimension")
	ErrInvalidComparison       = errors.New("invalid comparison period")
)

const (
	ComparePreviousPeriod = "previous_period"
	ComparePreviousYear   = "previous_year"

	dateLayout = "2006-01-02"

	// fallbackPerformanceDays is the trailing window compared when no dates
	// are given.
	fallbackPerformanceDays = 30
)

type Config struct {
	Churn            engine.ChurnConfig
	Stale            engine.StaleConfig
	ProductLimit     int
	AnomalyMinOrders int
}

func DefaultConfig() Config {
	return Config{
		Churn:            engine.DefaultChurnConfig(),
		Stale:            engine.DefaultStaleConfig(),
		ProductLimit:     100,
		AnomalyMinOrders: 50,
	}
}

func (c Config) Validate() error {
	if err := c.Churn.Validate(); err != nil {
		return err
	}
	if err := c.Stale.Validate(); err != nil {
		return err
	}
	if c.ProductLimit <= 0 {
		return domain.NewConfigurationError("product_limit", "must be positive")
	}
	if c.AnomalyMinOrders < 0 {
		return domain.NewConfigurationError("anomaly_min_orders", "must not be negative")
	}
	return nil
}

// FilterInput is the dashboard filter selection. Dates are YYYY-MM-DD and
// both ends are inclusive; empty dates and id lists do not filter.
type FilterInput struct {
	Start      string
	End        string
	StoreIDs   []int64
	ChannelIDs []int64
}

type DashboardInput struct {
	FilterInput
	Grouping    string // "", "total", "store", "channel"
	Granularity string // "", "daily", "monthly"
	Compare     string // "", "previous_period", "previous_year"
}

type DashboardUseCase struct {
	sales     ports.SalesReaderPort
	customers ports.CustomerHistoryPort
	catalog   ports.CatalogReaderPort
	cfg       Config
	now       func() time.Time
}

func NewDashboardUseCase(
	sales ports.SalesReaderPort,
	customers ports.CustomerHistoryPort,
	catalog ports.CatalogReaderPort,
	cfg Config,
) *DashboardUseCase {
	return &DashboardUseCase{
		sales:     sales,
		customers: customers,
		catalog:   catalog,
		cfg:       cfg,
		now:       time.Now,
	}
}

// WithClock replaces the clock used by the views that depend on "now".
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// Dashboard reads one snapshot and computes every view over it. Reads run
// concurrently, then each view is computed on its own goroutine.
func (uc *DashboardUseCase) Dashboard(ctx context.Context, in DashboardInput) (*domain.Dashboard, error) {
	w, err := parseWindow(in.FilterInput)
	if err != nil {
		return nil, err
	}
	grouping, err := resolveGrouping(in.Grouping, in.FilterInput)
	if err != nil {
		return nil, err
	}
	granularity, err := resolveGranularity(in.Granularity, w)
	if err != nil {
		return nil, err
	}
	cmp, err := resolveComparison(in.Compare, w)
	if err != nil {
		return nil, err
	}
	if err := uc.cfg.Validate(); err != nil {
		return nil, err
	}
	now := uc.now()

	prevWindow, hasPrevious := engine.PreviousWindow(w)

	var (
		current  engine.NormalizeResult
		previous engine.NormalizeResult
		baseline engine.NormalizeResult
		history  []domain.CustomerOrderHistory
		catalog  []domain.CatalogProduct
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		current, err = uc.readRecords(gctx, salesFilter(in.FilterInput, w, false), w)
		return err
	})
	if hasPrevious {
		g.Go(func() (err error) {
			previous, err = uc.readRecords(gctx, salesFilter(in.FilterInput, prevWindow, false), prevWindow)
			return err
		})
	}
	if cmp != nil && !sameWindow(cmp.window, prevWindow) {
		g.Go(func() (err error) {
			baseline, err = uc.readRecords(gctx, salesFilter(in.FilterInput, cmp.window, false), cmp.window)
			return err
		})
	}
	g.Go(func() (err error) {
		history, err = uc.customers.ReadCustomerHistory(gctx)
		if err != nil {
			return fmt.Errorf("read customer history: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		catalog, err = uc.catalog.ReadCatalog(gctx, catalogFilter(in.FilterInput))
		if err != nil {
			return fmt.Errorf("read catalog: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if cmp != nil && sameWindow(cmp.window, prevWindow) {
		baseline = previous
	}

	records := current.Records
	completed := engine.Completed(records)
	d := &domain.Dashboard{Start: in.Start, End: in.End, Skipped: current.Skipped}

	var views errgroup.Group
	views.Go(func() (err error) {
		d.TimeSeries, err = engine.AggregateTimeSeries(completed, grouping, granularity)
		return err
	})
	views.Go(func() (err error) {
		d.ChannelRanking, err = engine.Rank(completed, engine.RankByChannel)
		return err
	})
	views.Go(func() (err error) {
		d.StoreRanking, err = engine.Rank(completed, engine.RankByStore)
		return err
	})
	views.Go(func() (err error) {
		var base []domain.SaleRecord
		if cmp != nil {
			base = engine.Completed(baseline.Records)
		}
		d.Temporal, err = temporalPatterns(completed, cmp, base)
		return err
	})
	views.Go(func() error {
		d.TopProducts = limitProducts(engine.RankProducts(records), uc.cfg.ProductLimit)
		d.ProductsByHour = engine.ProductsByHour(records)
		return nil
	})
	views.Go(func() (err error) {
		d.StaleProducts, err = engine.StaleProducts(catalog, now, uc.cfg.Stale)
		return err
	})
	views.Go(func() (err error) {
		d.LostCustomers, err = engine.LostCustomers(history, now, uc.cfg.Churn)
		return err
	})
	views.Go(func() error {
		d.Conversion = engine.Conversion(records)
		d.Ticket = engine.TicketBreakdown(completed)
		d.Overview = engine.Overview(completed)
		d.Delivery = deliveryPerformance(records)
		return nil
	})
	views.Go(func() (err error) {
		d.Anomalies, err = engine.WeeklyAnomalies(completed, uc.cfg.AnomalyMinOrders)
		return err
	})
	if hasPrevious {
		views.Go(func() error {
			p := engine.PeriodPerformance(completed, engine.Completed(previous.Records))
			d.Performance = &p
			return nil
		})
	}
	if err := views.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}

// readRecords reads raw sales and normalizes them against w. Rejected rows
// are logged and counted, never fatal.
func (uc *DashboardUseCase) readRecords(ctx context.Context, f ports.SalesFilter, w engine.Window) (engine.NormalizeResult, error) {
	raw, err := uc.sales.ReadSales(ctx, f)
	if err != nil {
		return engine.NormalizeResult{}, fmt.Errorf("read sales: %w", err)
	}
	res := engine.Normalize(raw, w)
	if res.Skipped > 0 {
		logging.Warn().
			Int("skipped", res.Skipped).
			Int("received", len(raw)).
			Str("first_error", res.Errors[0].Error()).
			Msg("sales records skipped")
	}
	if res.OutOfWindow > 0 {
		logging.Debug().Int("out_of_window", res.OutOfWindow).Msg("sales records outside window")
	}
	return res, nil
}

func parseWindow(in FilterInput) (engine.Window, error) {
	start, err := parseDate(in.Start)
	if err != nil {
		return engine.Window{}, err
	}
	end, err := parseDate(in.End)
	if err != nil {
		return engine.Window{}, err
	}
	w, err := engine.NewWindow(start, end)
	if err != nil {
		return engine.Window{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidDateRange, in.End, in.Start)
	}
	return w, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDateRange, s)
	}
	return t, nil
}

func resolveGrouping(g string, in FilterInput) (domain.Grouping, error) {
	switch domain.Grouping(g) {
	case "":
		return engine.ResolveGrouping(len(in.StoreIDs), len(in.ChannelIDs)), nil
	case domain.GroupByTotal, domain.GroupByStore, domain.GroupByChannel:
		return domain.Grouping(g), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGrouping, g)
	}
}

func resolveGranularity(g string, w engine.Window) (domain.Granularity, error) {
	switch domain.Granularity(g) {
	case "":
		return engine.ResolveGranularity(w), nil
	case domain.Daily, domain.Monthly:
		return domain.Granularity(g), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, g)
	}
}

type comparison struct {
	window engine.Window
	shift  func(time.Time) time.Time
}

func resolveComparison(mode string, w engine.Window) (*comparison, error) {
	switch mode {
	case "":
		return nil, nil
	case ComparePreviousPeriod:
		prev, ok := engine.PreviousWindow(w)
		if !ok {
			return nil, fmt.Errorf("%w: %s needs start and end", ErrInvalidComparison, mode)
		}
		days := w.Days()
		return &comparison{window: prev, shift: func(t time.Time) time.Time { return t.AddDate(0, 0, days) }}, nil
	case ComparePreviousYear:
		prev, ok := engine.PreviousYearWindow(w)
		if !ok {
			return nil, fmt.Errorf("%w: %s needs start and end", ErrInvalidComparison, mode)
		}
		return &comparison{window: prev, shift: func(t time.Time) time.Time { return t.AddDate(1, 0, 0) }}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidComparison, mode)
	}
}

func sameWindow(a, b engine.Window) bool {
	return a.Start.Equal(b.Start) && a.End.Equal(b.End)
}

func salesFilter(in FilterInput, w engine.Window, ignoreChannels bool) ports.SalesFilter {
	f := ports.SalesFilter{
		Start:      w.Start,
		End:        w.End,
		StoreIDs:   in.StoreIDs,
		ChannelIDs: in.ChannelIDs,
	}
	if ignoreChannels {
		f.ChannelIDs = nil
	}
	return f
}

func catalogFilter(in FilterInput) ports.CatalogFilter {
	return ports.CatalogFilter{StoreIDs: in.StoreIDs, ChannelIDs: in.ChannelIDs}
}

// temporalPatterns builds the temporal views from the daily total series.
// baseline is only read when cmp is set.
func temporalPatterns(completed []domain.SaleRecord, cmp *comparison, baseline []domain.SaleRecord) (domain.TemporalPatterns, error) {
	ts, err := engine.AggregateTimeSeries(completed, domain.GroupByTotal, domain.Daily)
	if err != nil {
		return domain.TemporalPatterns{}, err
	}
	patterns := engine.Temporal(ts.Buckets)
	if cmp != nil {
		patterns.Monthly = engine.ApplyBaseline(patterns.Monthly, engine.MonthlyBaseline(baseline, cmp.shift))
	}
	return patterns, nil
}

func deliveryPerformance(records []domain.SaleRecord) domain.DeliveryPerformance {
	deliveries := engine.DeliveryRecords(records)
	return domain.DeliveryPerformance{
		ByWeekday:     engine.AverageDeliveryByWeekday(deliveries),
		ByWeekdayHour: engine.AverageDeliveryByWeekdayHour(deliveries),
	}
}

func limitProducts(products []domain.ProductAggregate, limit int) []domain.ProductAggregate {
	if limit > 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}
