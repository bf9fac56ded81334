package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/neocapy/friend-reader/internal/auth/secret"
	"github.com/neocapy/friend-reader/internal/config"
	"github.com/neocapy/friend-reader/internal/transport/web/v1/book"
	"github.com/neocapy/friend-reader/internal/transport/web/v1/health"
	"github.com/neocapy/friend-reader/internal/transport/web/v1/positions"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, lib Library, reg Presence, gate secret.Gate) *Server {
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())
	bookLog := log.New(logger.Writer(), logger.Prefix()+"[book] ", logger.Flags())
	posLog := log.New(logger.Writer(), logger.Prefix()+"[positions] ", logger.Flags())

	healthHandler := &health.Handler{Log: healthLog, Gate: gate}
	bookHandler := &book.Handler{Log: bookLog, Library: lib}
	posHandler := &positions.Handler{Log: posLog, Registry: reg, Gate: gate}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(healthHandler, bookHandler, posHandler, gate, logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
