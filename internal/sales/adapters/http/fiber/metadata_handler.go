package fiber

import (
	"context"
	"net/http"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/gofiber/fiber/v2"
)

type MetadataUseCase interface {
	Stores(ctx context.Context) ([]domain.Store, error)
	Channels(ctx context.Context) ([]domain.Channel, error)
	Customers(ctx context.Context, limit int) ([]domain.Customer, error)
}

// MetadataHandler serves the lookup lists dashboards use to build filters.
type MetadataHandler struct {
	uc MetadataUseCase
}

func NewMetadataHandler(uc MetadataUseCase) *MetadataHandler {
	return &MetadataHandler{uc: uc}
}

func (h *MetadataHandler) Register(r fiber.Router) {
	g := r.Group("/metadata")
	g.Get("/stores", h.GetStores)
	g.Get("/channels", h.GetChannels)
	g.Get("/customers", h.GetCustomers)
}

// GetStores godoc
// @Summary List stores
// @Description Stores ordered by name
// @Tags Metadata
// @Produce json
// @Success 200 {array} StoreResponse
// @Failure 500 {object} ErrorResponse
// @Router /metadata/stores [get]
func (h *MetadataHandler) GetStores(c *fiber.Ctx) error {
	stores, err := h.uc.Stores(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toStoresResponse(stores))
}

// GetChannels godoc
// @Summary List channels
// @Description Sales channels ordered by name, type P (in store) or D (delivery)
// @Tags Metadata
// @Produce json
// @Success 200 {array} ChannelResponse
// @Failure 500 {object} ErrorResponse
// @Router /metadata/channels [get]
func (h *MetadataHandler) GetChannels(c *fiber.Ctx) error {
	channels, err := h.uc.Channels(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toChannelsResponse(channels))
}

// GetCustomers godoc
// @Summary List customers
// @Description Customers with the most recent purchase first
// @Tags Metadata
// @Produce json
// @Param limit query int false "Maximum customers, default 100, at most 1000"
// @Success 200 {array} CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metadata/customers [get]
func (h *MetadataHandler) GetCustomers(c *fiber.Ctx) error {
	limit, err := intQuery(c, "limit")
	if err != nil {
		return badQuery(c, err)
	}

	customers, err := h.uc.Customers(c.UserContext(), limit)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toCustomersResponse(customers))
}
