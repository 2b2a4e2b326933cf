package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Options configure the HTTP server.
type Options struct {
	Addr            string
	ClientURL       string
	DefaultLanguage string
	ShutdownTimeout time.Duration
	Metrics         RequestObserver
	MetricsHandler  http.Handler
}

// Server is the HTTP adapter.
type Server struct {
	handler *Handler
	opts    Options
	logger  *slog.Logger
	srv     *http.Server
}

func NewServer(handler *Handler, opts Options) *Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	s := &Server{handler: handler, opts: opts, logger: handler.logger}
	s.srv = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	return s
}

// Routes builds the router with its middleware chain.
func (s *Server) Routes() http.Handler {
	h := s.handler
	mux := http.NewServeMux()
	route := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ri := routeFrom(r.Context()); ri != nil {
				ri.pattern = pattern
			}
			fn(w, r)
		}))
	}

	route("GET /{$}", h.root)
	route("GET /health", h.health)
	if s.opts.MetricsHandler != nil {
		route("GET /metrics", s.opts.MetricsHandler.ServeHTTP)
	}

	route("GET /api/products/get-products", h.listProducts)
	route("GET /api/products/{id}", h.getProduct)
	route("POST /api/products", h.createProduct)

	route("GET /api/services", h.listOfferings)
	route("GET /api/services/get-services", h.listOfferings)
	route("GET /api/services/{id}", h.getOffering)
	route("POST /api/services", h.createOffering)

	route("POST /api/contact", h.submitContact)
	route("GET /api/contact", h.listContacts)

	route("GET /api/translations/{lang}", h.translations)
	route("POST /api/language", h.setLanguage)

	mux.HandleFunc("/", h.notFound)

	var handler http.Handler = mux
	handler = h.recoverer(handler)
	handler = locale(s.opts.DefaultLanguage, handler)
	handler = cors(s.opts.ClientURL, handler)
	return observe(s.logger, s.opts.Metrics, handler)
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("🌾 API listening", "addr", s.opts.Addr, "client_url", s.opts.ClientURL)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, open := <-errCh:
		if open && err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ShutdownTimeout)
	defer cancel()
	s.logger.Info("🛑 shutting down API")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
