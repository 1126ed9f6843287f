package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	_ "sales-metrics-service/docs"
	"sales-metrics-service/internal/config"
	"sales-metrics-service/internal/logging"
	salesHttp "sales-metrics-service/internal/sales/adapters/http/fiber"
	"sales-metrics-service/internal/sales/adapters/memory"
	salesRepoPg "sales-metrics-service/internal/sales/adapters/postgres"
	"sales-metrics-service/internal/sales/core/engine"
	"sales-metrics-service/internal/sales/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API backed by the Postgres sales schema. The server
stops gracefully on SIGINT or SIGTERM.

Example:
  sales-metrics serve --config sales-metrics.yaml
  POSTGRES_DSN=postgres://localhost/sales sales-metrics serve --addr :9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "",
		"listen address (default: http.addr from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		cfg.HTTP.Addr = serveAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	ucCfg := usecaseConfig(cfg.Analytics)
	if err := ucCfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := salesRepoPg.Open(ctx, cfg.Postgres.DSN, salesRepoPg.PoolConfig{
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	repo := salesRepoPg.NewSalesRepository(salesRepoPg.NewSQLDB(db))
	dashboardUC := usecase.NewDashboardUseCase(repo, repo, repo, ucCfg)
	analyzeUC := usecase.NewAnalyzeSnapshotUseCase(memory.Loader, ucCfg, cfg.Analytics.MaxBatch)

	metadataUC := usecase.NewMetadataUseCase(repo)

	app := newServer(cfg.HTTP,
		salesHttp.NewSalesHandler(dashboardUC, analyzeUC),
		salesHttp.NewMetadataHandler(metadataUC))

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.HTTP.Addr)
	}()
	logging.Info().Str("addr", cfg.HTTP.Addr).Msg("server started")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("fiber stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("fiber shutdown error")
	}
	logging.Info().Msg("server exiting")
	return nil
}

// newServer builds the fiber app with every route mounted.
func newServer(httpCfg config.HTTPConfig, sales *salesHttp.SalesHandler, metadata *salesHttp.MetadataHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "sales-metrics",
		ReadTimeout:           httpCfg.ReadTimeout,
		WriteTimeout:          httpCfg.WriteTimeout,
		BodyLimit:             httpCfg.BodyLimit,
		DisableStartupMessage: true,
	})
	app.Use(salesHttp.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "version": Version})
	})
	sales.Register(app)
	metadata.Register(app)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)
	return app
}

func usecaseConfig(a config.AnalyticsConfig) usecase.Config {
	return usecase.Config{
		Churn: engine.ChurnConfig{
			MinOrders:      a.ChurnMinOrders,
			InactivityDays: a.ChurnInactivityDays,
		},
		Stale: engine.StaleConfig{
			FloorDays:  a.StaleFloorDays,
			MediumDays: a.StaleMediumDays,
			HighDays:   a.StaleHighDays,
		},
		ProductLimit:     a.ProductLimit,
		AnomalyMinOrders: a.AnomalyMinOrders,
	}
}
