package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"sales-metrics-service/internal/logging"
	"sales-metrics-service/internal/sales/core/domain"
	"sales-metrics-service/internal/sales/core/usecase"

	"github.com/gofiber/fiber/v2"
)

var errInvalidQuery = errors.New("invalid query parameter")

type SalesUseCase interface {
	TimeSeries(ctx context.Context, in usecase.TimeSeriesInput) (domain.TimeSeries, error)
	Ranking(ctx context.Context, in usecase.RankingInput) ([]domain.RankingEntry, error)
	TemporalPatterns(ctx context.Context, in usecase.TemporalInput) (domain.TemporalPatterns, error)
	ProductTrends(ctx context.Context, in usecase.ProductTrendInput) ([]domain.ProductAggregate, error)
	ProductMargins(ctx context.Context, in usecase.ProductMarginInput) ([]domain.ProductMargin, error)
	ProductsByHour(ctx context.Context, in usecase.FilterInput) ([]domain.HourWindowTrend, error)
	StaleProducts(ctx context.Context, in usecase.FilterInput) ([]domain.StaleProduct, error)
	LostCustomers(ctx context.Context, in usecase.LostCustomersInput) ([]domain.LostCustomer, error)
	Conversion(ctx context.Context, in usecase.FilterInput) (domain.Conversion, error)
	Ticket(ctx context.Context, in usecase.FilterInput) (domain.TicketBreakdown, error)
	DeliveryPerformance(ctx context.Context, in usecase.FilterInput) (domain.DeliveryPerformance, error)
	Overview(ctx context.Context, in usecase.FilterInput) (domain.Overview, error)
	Performance(ctx context.Context, in usecase.FilterInput) (domain.PeriodPerformance, error)
	Anomalies(ctx context.Context, in usecase.AnomalyInput) (domain.AnomalyReport, error)
	RecentOrders(ctx context.Context, in usecase.RecentOrdersInput) (domain.RecentOrders, error)
	Dashboard(ctx context.Context, in usecase.DashboardInput) (*domain.Dashboard, error)
}

type AnalyzeUseCase interface {
	Execute(ctx context.Context, in usecase.AnalyzeInput) (usecase.AnalyzeResult, error)
}

type SalesHandler struct {
	uc      SalesUseCase
	analyze AnalyzeUseCase
}

func NewSalesHandler(uc SalesUseCase, analyze AnalyzeUseCase) *SalesHandler {
	return &SalesHandler{uc: uc, analyze: analyze}
}

// Register mounts every sales route under r.
func (h *SalesHandler) Register(r fiber.Router) {
	g := r.Group("/sales")
	g.Get("/timeseries", h.GetTimeSeries)
	g.Get("/ranking/channels", h.GetChannelRanking)
	g.Get("/ranking/stores", h.GetStoreRanking)
	g.Get("/temporal", h.GetTemporalPatterns)
	g.Get("/products/trending", h.GetTrendingProducts)
	g.Get("/products/margin", h.GetProductMargins)
	g.Get("/products/hourly", h.GetProductsByHour)
	g.Get("/products/stale", h.GetStaleProducts)
	g.Get("/customers/lost", h.GetLostCustomers)
	g.Get("/conversion", h.GetConversion)
	g.Get("/ticket", h.GetTicket)
	g.Get("/delivery/performance", h.GetDeliveryPerformance)
	g.Get("/overview", h.GetOverview)
	g.Get("/performance", h.GetPerformance)
	g.Get("/anomalies", h.GetAnomalies)
	g.Get("/recent", h.GetRecentOrders)
	g.Get("/dashboard", h.GetDashboard)
	g.Post("/analyze", h.AnalyzeSales)
}

// GetTimeSeries godoc
// @Summary Revenue time series
// @Description Completed revenue and order counts per day or month, per store, channel or total
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Param grouping query string false "total | store | channel"
// @Param granularity query string false "daily | monthly"
// @Success 200 {object} TimeSeriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/timeseries [get]
func (h *SalesHandler) GetTimeSeries(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.TimeSeries(c.UserContext(), usecase.TimeSeriesInput{
		FilterInput: f,
		Grouping:    c.Query("grouping", ""),
		Granularity: c.Query("granularity", ""),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toTimeSeriesResponse(res))
}

// GetChannelRanking godoc
// @Summary Channel ranking
// @Description Channels ordered by completed revenue with their share of the total
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Success 200 {array} RankingEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/ranking/channels [get]
func (h *SalesHandler) GetChannelRanking(c *fiber.Ctx) error {
	return h.ranking(c, "channel", false)
}

// GetStoreRanking godoc
// @Summary Store ranking
// @Description Stores ordered by completed revenue; ignore_channel_filter reads every channel
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Param ignore_channel_filter query bool false "Rank across all channels"
// @Success 200 {array} RankingEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/ranking/stores [get]
func (h *SalesHandler) GetStoreRanking(c *fiber.Ctx) error {
	return h.ranking(c, "store", c.QueryBool("ignore_channel_filter", false))
}

func (h *SalesHandler) ranking(c *fiber.Ctx, by string, ignoreChannels bool) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.Ranking(c.UserContext(), usecase.RankingInput{
		FilterInput:         f,
		By:                  by,
		IgnoreChannelFilter: ignoreChannels,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toRankingResponse(res))
}

// GetTemporalPatterns godoc
// @Summary Temporal patterns
// @Description Intraday distribution, orders per weekday and monthly totals with an optional baseline
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Param compare query string false "previous_period | previous_year"
// @Success 200 {object} TemporalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/temporal [get]
func (h *SalesHandler) GetTemporalPatterns(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.TemporalPatterns(c.UserContext(), usecase.TemporalInput{
		FilterInput: f,
		Compare:     c.Query("compare", ""),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toTemporalResponse(res))
}

// GetTrendingProducts godoc
// @Summary Trending products
// @Description Products ordered by quantity sold, optionally restricted to a weekday and hour range
// @Tags Products
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Param weekday query int false "0 = Sunday"
// @Param start_hour query int false "First hour, inclusive"
// @Param end_hour query int false "Last hour, inclusive"
// @Param limit query int false "Maximum products"
// @Success 200 {array} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/products/trending [get]
func (h *SalesHandler) GetTrendingProducts(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	in := usecase.ProductTrendInput{FilterInput: f}
	if in.Weekday, err = optionalInt(c, "weekday"); err != nil {
		return badQuery(c, err)
	}
	if in.StartHour, err = optionalInt(c, "start_hour"); err != nil {
		return badQuery(c, err)
	}
	if in.EndHour, err = optionalInt(c, "end_hour"); err != nil {
		return badQuery(c, err)
	}
	limit, err := optionalInt(c, "limit")
	if err != nil {
		return badQuery(c, err)
	}
	if limit != nil {
		in.Limit = *limit
	}

	res, err := h.uc.ProductTrends(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toProductsResponse(res))
}

// GetProductMargins godoc
// @Summary Product margins
// @Description Revenue, cost (quantity times base price) and margin per product over completed sales
// @Tags Products
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Param limit query int false "Maximum products"
// @Success 200 {array} ProductMarginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/products/margin [get]
func (h *SalesHandler) GetProductMargins(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		return badQuery(c, err)
	}

	res, err := h.uc.ProductMargins(c.UserContext(), usecase.ProductMarginInput{FilterInput: f, Limit: limit})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toProductMarginsResponse(res))
}

// GetProductsByHour godoc
// @Summary Products by hour window
// @Description Best and worst selling product in each of the six daily windows
// @Tags Products
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Success 200 {object} ProductsByHourResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/products/hourly [get]
func (h *SalesHandler) GetProductsByHour(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.ProductsByHour(c.UserContext(), f)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toProductsByHourResponse(res, bestOfDay(res)))
}

// GetStaleProducts godoc
// @Summary Stale products
// @Description Catalog products without a recent sale, with a risk tier
// @Tags Products
// @Produce json
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Success 200 {array} StaleProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/products/stale [get]
func (h *SalesHandler) GetStaleProducts(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.StaleProducts(c.UserContext(), f)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toStaleResponse(res))
}

// GetLostCustomers godoc
// @Summary Lost customers
// @Description Recurring customers that stopped ordering
// @Tags Customers
// @Produce json
// @Param min_orders query int false "Minimum lifetime orders"
// @Param inactivity_days query int false "Days without an order"
// @Success 200 {array} LostCustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/customers/lost [get]
func (h *SalesHandler) GetLostCustomers(c *fiber.Ctx) error {
	minOrders, err := optionalInt(c, "min_orders")
	if err != nil {
		return badQuery(c, err)
	}
	inactivity, err := optionalInt(c, "inactivity_days")
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.LostCustomers(c.UserContext(), usecase.LostCustomersInput{
		MinOrders:      minOrders,
		InactivityDays: inactivity,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toLostCustomersResponse(res))
}

// GetConversion godoc
// @Summary Conversion rate
// @Description Completed over completed plus canceled sales, in percent
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Success 200 {object} ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/conversion [get]
func (h *SalesHandler) GetConversion(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.Conversion(c.UserContext(), f)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toConversionResponse(res))
}

// GetTicket godoc
// @Summary Average ticket
// @Description Average ticket per store and channel plus the order-weighted overall
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Success 200 {object} TicketResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/ticket [get]
func (h *SalesHandler) GetTicket(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.Ticket(c.UserContext(), f)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toTicketResponse(res))
}

// GetDeliveryPerformance godoc
// @Summary Delivery performance
// @Description Average delivery minutes per weekday and per weekday and hour
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Success 200 {object} DeliveryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/delivery/performance [get]
func (h *SalesHandler) GetDeliveryPerformance(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.DeliveryPerformance(c.UserContext(), f)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDeliveryResponse(res))
}

// GetOverview godoc
// @Summary Overview
// @Description Revenue, orders, average ticket and average production and delivery times
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Success 200 {object} OverviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/overview [get]
func (h *SalesHandler) GetOverview(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.Overview(c.UserContext(), f)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toOverviewResponse(res))
}

// GetPerformance godoc
// @Summary Period performance
// @Description Revenue against the preceding window of the same length
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Success 200 {object} PerformanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/performance [get]
func (h *SalesHandler) GetPerformance(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.Performance(c.UserContext(), f)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toPerformanceResponse(res))
}

// GetAnomalies godoc
// @Summary Weekly anomalies
// @Description Weeks whose revenue falls outside two standard deviations of the mean
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Param min_orders query int false "Minimum weekly orders to flag"
// @Success 200 {object} AnomalyReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/anomalies [get]
func (h *SalesHandler) GetAnomalies(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	minOrders, err := optionalInt(c, "min_orders")
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.Anomalies(c.UserContext(), usecase.AnomalyInput{FilterInput: f, MinOrders: minOrders})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toAnomalyResponse(res))
}

// GetRecentOrders godoc
// @Summary Recent orders
// @Description Sales newest first with customer, channel, store, status and product lines, paged
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Param status query []string false "Statuses, any accepted spelling" collectionFormat(multi)
// @Param limit query int false "Page size, default 20, at most 500"
// @Param offset query int false "Orders to skip"
// @Success 200 {object} RecentOrdersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/recent [get]
func (h *SalesHandler) GetRecentOrders(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	in := usecase.RecentOrdersInput{FilterInput: f, Statuses: queryStrings(c, "status")}
	if in.Limit, err = intQuery(c, "limit"); err != nil {
		return badQuery(c, err)
	}
	if in.Offset, err = intQuery(c, "offset"); err != nil {
		return badQuery(c, err)
	}

	res, err := h.uc.RecentOrders(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toRecentOrdersResponse(res))
}

// GetDashboard godoc
// @Summary Full dashboard
// @Description Every sales view computed over one snapshot
// @Tags Sales
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param store_id query []int false "Store ids" collectionFormat(multi)
// @Param channel_id query []int false "Channel ids" collectionFormat(multi)
// @Param grouping query string false "total | store | channel"
// @Param granularity query string false "daily | monthly"
// @Param compare query string false "previous_period | previous_year"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/dashboard [get]
func (h *SalesHandler) GetDashboard(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return badQuery(c, err)
	}
	res, err := h.uc.Dashboard(c.UserContext(), usecase.DashboardInput{
		FilterInput: f,
		Grouping:    c.Query("grouping", ""),
		Granularity: c.Query("granularity", ""),
		Compare:     c.Query("compare", ""),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(res))
}

// AnalyzeSales godoc
// @Summary Analyze a raw sales batch
// @Description Normalizes the posted sales and returns the full dashboard computed over them
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Sales batch"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sales/analyze [post]
func (h *SalesHandler) AnalyzeSales(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	res, err := h.analyze.Execute(c.UserContext(), usecase.AnalyzeInput{
		Records: req.Sales,
		Now:     req.Now,
		DashboardInput: usecase.DashboardInput{
			FilterInput: usecase.FilterInput{
				Start:      req.Start,
				End:        req.End,
				StoreIDs:   req.StoreIDs,
				ChannelIDs: req.ChannelIDs,
			},
			Grouping:    req.Grouping,
			Granularity: req.Granularity,
			Compare:     req.Compare,
		},
	})
	if err != nil {
		if errors.Is(err, usecase.ErrBatchTooLarge) {
			return c.Status(http.StatusRequestEntityTooLarge).JSON(ErrorResponse{
				Error:   "batch_too_large",
				Message: err.Error(),
			})
		}
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toAnalyzeResponse(res))
}

func parseFilter(c *fiber.Ctx) (usecase.FilterInput, error) {
	stores, err := queryIDs(c, "store_id")
	if err != nil {
		return usecase.FilterInput{}, err
	}
	channels, err := queryIDs(c, "channel_id")
	if err != nil {
		return usecase.FilterInput{}, err
	}
	return usecase.FilterInput{
		Start:      c.Query("start", ""),
		End:        c.Query("end", ""),
		StoreIDs:   stores,
		ChannelIDs: channels,
	}, nil
}

// queryIDs reads a repeated integer parameter (?store_id=1&store_id=2).
func queryIDs(c *fiber.Ctx, name string) ([]int64, error) {
	raw := c.Context().QueryArgs().PeekMulti(name)
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", errInvalidQuery, name, v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func optionalInt(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name, "")
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", errInvalidQuery, name, raw)
	}
	return &v, nil
}

// intQuery reads an optional integer parameter, 0 when absent.
func intQuery(c *fiber.Ctx, name string) (int, error) {
	v, err := optionalInt(c, name)
	if err != nil || v == nil {
		return 0, err
	}
	return *v, nil
}

// queryStrings reads a repeated parameter (?status=a&status=b), skipping
// empty values.
func queryStrings(c *fiber.Ctx, name string) []string {
	raw := c.Context().QueryArgs().PeekMulti(name)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if len(v) > 0 {
			out = append(out, string(v))
		}
	}
	return out
}

func badQuery(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: err.Error(),
	})
}

func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidGrouping),
		errors.Is(err, usecase.ErrInvalidGranularity),
		errors.Is(err, usecase.ErrInvalidRankingDimension),
		errors.Is(err, usecase.ErrInvalidComparison),
		errors.Is(err, domain.ErrInvalidConfiguration):
		return badQuery(c, err)
	case errors.Is(err, usecase.ErrEmptyBatch),
		errors.Is(err, usecase.ErrInvalidReferenceTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_batch",
			Message: err.Error(),
		})
	default:
		logging.Error().Err(err).
			Str(requestIDKey, RequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("sales request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
