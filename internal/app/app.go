package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/insurance-crm/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-crm/internal/adapter/postgres/claim"
	"github.com/heartmarshall/insurance-crm/internal/adapter/postgres/customer"
	"github.com/heartmarshall/insurance-crm/internal/adapter/postgres/document"
	"github.com/heartmarshall/insurance-crm/internal/adapter/postgres/policy"
	"github.com/heartmarshall/insurance-crm/internal/auth"
	"github.com/heartmarshall/insurance-crm/internal/config"
	"github.com/heartmarshall/insurance-crm/internal/metrics"
	"github.com/heartmarshall/insurance-crm/internal/service/audittrail"
	claimsvc "github.com/heartmarshall/insurance-crm/internal/service/claim"
	customersvc "github.com/heartmarshall/insurance-crm/internal/service/customer"
	documentsvc "github.com/heartmarshall/insurance-crm/internal/service/document"
	"github.com/heartmarshall/insurance-crm/internal/service/engine"
	"github.com/heartmarshall/insurance-crm/internal/service/ownership"
	policysvc "github.com/heartmarshall/insurance-crm/internal/service/policy"
	"github.com/heartmarshall/insurance-crm/internal/service/refcheck"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires the record engine and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	eng := newEngine(logger, pool, cfg.Documents.DefaultBucket, metrics.New(reg))

	handler := newRouter(routerDeps{
		cfg:       cfg,
		log:       logger,
		engine:    eng,
		db:        pool,
		validator: auth.NewJWTValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		gatherer:  reg,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newEngine builds repositories, services and the engine over db.
func newEngine(logger *slog.Logger, db postgres.DB, defaultBucket string, observer engine.Observer) *engine.Engine {
	customerRepo := customer.New(db)
	policyRepo := policy.New(db)
	claimRepo := claim.New(db)
	documentRepo := document.New(db)

	guard := ownership.NewGuard(ownership.CtxResolver{})
	refs := refcheck.NewValidator(customerRepo, policyRepo)
	recorder := audittrail.NewRecorder(time.Now)
	tx := postgres.NewTxManager(db)

	return engine.New(logger,
		customersvc.NewService(logger, guard, customerRepo, recorder, tx),
		policysvc.NewService(logger, guard, policyRepo, refs, recorder, tx),
		claimsvc.NewService(logger, guard, claimRepo, refs, recorder, tx),
		documentsvc.NewService(logger, guard, documentRepo, refs, recorder, tx, defaultBucket),
		engine.WithObserver(observer),
	)
}

// serve runs srv until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
