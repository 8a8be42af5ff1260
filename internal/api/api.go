// Package api wires the HTTP router and runs the weather API server.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katiamach/weather-dashboard-api/internal/config"
	"github.com/katiamach/weather-dashboard-api/internal/demo"
	"github.com/katiamach/weather-dashboard-api/internal/historical"
	"github.com/katiamach/weather-dashboard-api/internal/logger"
	"github.com/katiamach/weather-dashboard-api/internal/metrics"
	"github.com/katiamach/weather-dashboard-api/internal/provider"
	"github.com/katiamach/weather-dashboard-api/internal/service"
	"github.com/katiamach/weather-dashboard-api/internal/transport/rest/handler"
)

const shutdownTimeout = 10 * time.Second

// NewRouter registers the API, metrics, health and static routes.
func NewRouter(cfg *config.Config, server *handler.WeatherServer, collector *metrics.Collector) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID, collector.Middleware)
	r.NotFoundHandler = http.HandlerFunc(handler.NotFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowedHandler)

	weather := r.PathPrefix("/api/weather").Methods(http.MethodGet).Subrouter()
	weather.HandleFunc("/current/{city}", server.GetCurrentWeatherHandler)
	weather.HandleFunc("/forecast/{city}", server.GetForecastHandler)
	weather.HandleFunc("/historical/{city}", server.GetHistoricalDataHandler)

	r.Handle("/metrics", collector.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	r.PathPrefix("/static/").
		Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))).
		Methods(http.MethodGet)
	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(cfg.StaticDir, "index.html"))
	}).Methods(http.MethodGet)

	return r
}

// NewHandler wraps the router with CORS and panic recovery.
func NewHandler(cfg *config.Config, r *mux.Router) http.Handler {
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
		handlers.PrintRecoveryStack(false),
	)

	h := handlers.CORS(setupCorsOptions(cfg.CORSOrigin)...)(r)
	return recovery(h)
}

// Build wires the weather service and returns the complete HTTP handler.
// Metrics are registered on reg.
func Build(cfg *config.Config, reg *prometheus.Registry) http.Handler {
	collector := metrics.NewCollector("weather_dashboard", reg)

	owm := provider.NewOpenWeather(
		provider.NewHTTPClient(cfg.HTTPClientTimeout),
		cfg.OpenWeatherBaseURL,
		cfg.OpenWeatherAPIKey,
		provider.WithObserver(collector),
	)

	svc := service.New(owm, demo.New(), historical.New(), cfg.DemoMode())
	server := handler.NewWeatherServer(svc)

	return NewHandler(cfg, NewRouter(cfg, server, collector))
}

// RunAPI runs weather service API until SIGINT or SIGTERM.
func RunAPI(cfg *config.Config) error {
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	if cfg.DemoMode() {
		logger.Warn("no OpenWeather API key configured, serving demo data for current and forecast")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	accessLog := logger.Writer()
	defer accessLog.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.CombinedLoggingHandler(accessLog, Build(cfg, reg)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Starting weather dashboard api at port %s", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down weather dashboard api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	logger.Error(fmt.Errorf("recovered from panic: %v", fmt.Sprint(v...)))
}
