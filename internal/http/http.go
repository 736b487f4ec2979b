package http

import (
	"context"
	"net"
	"net/http"
	"time"
	"volumizer/internal/conf"
	"volumizer/internal/flog"
)

// Padder is the part of padding.Generator the middleware needs.
type Padder interface {
	Generate(content string) (string, error)
	GenerateMultiple(content string, count int) (string, error)
}

// HTTP pads HTML responses produced by next.
type HTTP struct {
	padder Padder
	next   http.Handler
	pad    conf.Padding
	cfg    conf.HTTP
}

// New wraps next. A nil next serves files from cfg.Root.
func New(padder Padder, pad conf.Padding, cfg conf.HTTP, next http.Handler) *HTTP {
	if next == nil {
		next = http.FileServer(http.Dir(cfg.Root))
	}
	return &HTTP{
		padder: padder,
		next:   next,
		pad:    pad,
		cfg:    cfg,
	}
}

// Middleware adapts New for handler chains.
func Middleware(padder Padder, pad conf.Padding, cfg conf.HTTP) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return New(padder, pad, cfg, next)
	}
}

func (h *HTTP) Start(ctx context.Context) error {
	listener, err := net.ListenTCP("tcp", h.cfg.Listen)
	if err != nil {
		return err
	}
	go h.serve(ctx, listener)
	return nil
}

func (h *HTTP) serve(ctx context.Context, listener net.Listener) {
	flog.Infof("HTTP padding server listening on %s, serving %s", listener.Addr(), h.cfg.Root)

	server := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			flog.Errorf("HTTP padding server error: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		flog.Debugf("HTTP padding server shutdown with: %v", err)
	}
}
