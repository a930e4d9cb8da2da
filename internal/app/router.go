package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/insurance-crm/internal/config"
	"github.com/heartmarshall/insurance-crm/internal/metrics"
	"github.com/heartmarshall/insurance-crm/internal/service/engine"
	"github.com/heartmarshall/insurance-crm/internal/transport/middleware"
	"github.com/heartmarshall/insurance-crm/internal/transport/rest"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

type routerDeps struct {
	cfg       *config.Config
	log       *slog.Logger
	engine    *engine.Engine
	db        pinger
	validator tokenValidator
	gatherer  prometheus.Gatherer
}

// newRouter mounts the health endpoints and metrics unauthenticated and the record
// API behind bearer-token auth.
func newRouter(d routerDeps) http.Handler {
	root := http.NewServeMux()

	rest.NewHealthHandler(d.db, BuildVersion()).Register(root)
	if d.cfg.Metrics.Enabled {
		root.Handle("GET "+d.cfg.Metrics.Path, metrics.Handler(d.gatherer))
	}

	api := http.NewServeMux()
	rest.NewRecordHandler(d.engine, d.cfg.Server.MaxBodyBytes, d.log).Register(api)
	root.Handle("/", middleware.Auth(d.validator)(api))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.log),
		middleware.Recovery(d.log),
	)(root)
}
