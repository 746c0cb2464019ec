package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nomina/internal/domain/payroll"
	"nomina/internal/platform/config"
	"nomina/internal/platform/metrics"
	"nomina/internal/transport/http/api"
	payrollhandler "nomina/internal/transport/http/handlers/payroll"
	"nomina/internal/transport/http/middleware"
)

func NewRouter(cfg config.Config, service *payroll.Service, collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metricsz", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth(cfg.JWTSecret))

		handler := payrollhandler.NewHandler(service, cfg, collector)
		handler.RegisterRoutes(r)
	})

	return router
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	collector := metrics.New()
	service := payroll.NewService(cfg.PayslipDir)
	router := NewRouter(cfg, service, collector)

	log.Printf("nomina server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
