package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	memRepo "lawportal/internal/infra/adapter/persistence/memory"
	pgRepo "lawportal/internal/infra/adapter/persistence/postgres"
	"lawportal/internal/infra/db"
	"lawportal/internal/infra/mailer"
	"lawportal/internal/observability/logging"
	"lawportal/internal/observability/tracing"
	"lawportal/internal/repository"
	"lawportal/pkg/config"

	artUC "lawportal/internal/usecase/article"
	catUC "lawportal/internal/usecase/category"
	contactUC "lawportal/internal/usecase/contact"
	solUC "lawportal/internal/usecase/solution"

	hhttp "lawportal/internal/handler/http"
	harticle "lawportal/internal/handler/http/article"
	hcategory "lawportal/internal/handler/http/category"
	hcontact "lawportal/internal/handler/http/contact"
	hdownload "lawportal/internal/handler/http/download"
	"lawportal/internal/handler/http/requestid"
	hsolution "lawportal/internal/handler/http/solution"
)

const defaultContactRecipient = "info@lawportal.example"

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.LoadAppConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	store, database := initStorage(logger, cfg)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	handler := setupServer(logger, cfg, store, database)

	runServer(logger, cfg, handler, store)
}

// initStorage selects and constructs the storage backend. The memory
// backend ships pre-seeded content; the postgres backend opens a pool
// and runs migrations. The returned *sql.DB is nil for the memory
// backend.
func initStorage(logger *slog.Logger, cfg *config.AppConfig) (repository.Storage, *sql.DB) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		database := db.Open()
		if err := db.MigrateUp(database); err != nil {
			logger.Error("failed to migrate database", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("storage initialized", slog.String("backend", config.BackendPostgres))
		return pgRepo.NewStore(database), database
	default:
		logger.Info("storage initialized", slog.String("backend", config.BackendMemory))
		return memRepo.NewStore(), nil
	}
}

// initMailer builds the outbound mailer. Without a configured provider
// URL submissions are logged and dropped instead of failing.
func initMailer(logger *slog.Logger) mailer.Mailer {
	mailCfg := mailer.LoadConfigFromEnv()
	if mailCfg.APIURL == "" {
		logger.Warn("mail provider not configured, contact submissions will not be delivered")
		return mailer.NewNoopMailer()
	}
	logger.Info("mailer initialized", slog.String("from", mailCfg.From))
	return mailer.NewHTTPMailer(mailCfg)
}

// setupServer wires services, routes and middleware into the root handler.
func setupServer(logger *slog.Logger, cfg *config.AppConfig, store repository.Storage, database *sql.DB) http.Handler {
	catSvc := catUC.Service{Store: store}
	artSvc := artUC.Service{Store: store}
	solSvc := solUC.Service{Store: store}

	recipient := cfg.Contact.Recipient
	if recipient == "" {
		recipient = defaultContactRecipient
	}
	contactSvc := contactUC.Service{Mailer: initMailer(logger), To: recipient}

	// Contact form triggers outbound email, so it gets its own limiter:
	// 5 submissions per IP per minute.
	contactLimiter := hhttp.NewRateLimiter(5, 1*time.Minute)

	mux := http.NewServeMux()
	hcategory.Register(mux, catSvc)
	harticle.Register(mux, artSvc)
	hsolution.Register(mux, solSvc)
	hcontact.Register(mux, contactSvc, contactLimiter)
	hdownload.Register(mux, cfg.Downloads.Dir)

	mux.Handle("GET /api/health", hhttp.HealthHandler{DB: database, Environment: cfg.Server.Environment})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Tracing → Recovery → Logging → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Applied in reverse order (innermost to outermost).
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server, the business metrics refresher, and
// handles graceful shutdown on SIGINT/SIGTERM.
func runServer(logger *slog.Logger, cfg *config.AppConfig, handler http.Handler, store repository.Storage) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		refreshBusinessMetrics(gctx, logger, store)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// refreshBusinessMetrics periodically updates the content gauges from
// storage until the context is cancelled.
func refreshBusinessMetrics(ctx context.Context, logger *slog.Logger, store repository.Storage) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	update := func() {
		if articles, err := store.GetArticles(ctx); err == nil {
			hhttp.UpdateArticlesTotal(len(articles))
		} else {
			logger.Debug("failed to refresh article count", slog.Any("error", err))
		}
		if categories, err := store.GetCategories(ctx); err == nil {
			hhttp.UpdateCategoriesTotal(len(categories))
		} else {
			logger.Debug("failed to refresh category count", slog.Any("error", err))
		}
		if solutions, err := store.GetSolutions(ctx); err == nil {
			hhttp.UpdateSolutionsTotal(len(solutions))
		} else {
			logger.Debug("failed to refresh solution count", slog.Any("error", err))
		}
	}

	update()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			update()
		}
	}
}
