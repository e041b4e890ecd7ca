package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/rpgo/tax-calculator/internal/calculation"
)

// ServerConfig holds the listener settings of the API server.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// DefaultServerConfig returns the settings used when none are given.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:           ":8080",
		AllowedOrigins: DefaultAllowedOrigins,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
	}
}

// Server exposes the tax API over fasthttp.
type Server struct {
	cfg    ServerConfig
	logger *zap.Logger
	srv    *fasthttp.Server
}

// NewServer wires the handler, CORS and request logging into a fasthttp server.
func NewServer(cfg ServerConfig, calc calculation.Calculator, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	var handler http.Handler = NewHandler(calc, logger.Named("handler")).Routes()
	handler = WithCORS(handler, cfg.AllowedOrigins)
	handler = WithRequestLogging(handler, logger.Named("http"))

	return &Server{
		cfg:    cfg,
		logger: logger,
		srv: &fasthttp.Server{
			Handler:            fasthttpadaptor.NewFastHTTPHandler(handler),
			Name:               "taxcalc",
			ReadTimeout:        cfg.ReadTimeout,
			WriteTimeout:       cfg.WriteTimeout,
			MaxRequestBodySize: MaxRequestBodyBytes,
		},
	}
}

// ListenAndServe blocks serving on the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info("tax API starting", zap.String("addr", s.cfg.Addr))
	return s.srv.ListenAndServe(s.cfg.Addr)
}

// Serve blocks serving on ln.
func (s *Server) Serve(ln net.Listener) error {
	return s.srv.Serve(ln)
}

// Shutdown stops accepting connections and waits for open ones until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("tax API shutting down")
	return s.srv.ShutdownWithContext(ctx)
}
