// Package api exposes the two webhook endpoints over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Server hosts the interaction and payment endpoints
type Server struct {
	httpServer *http.Server
}

// NewServer creates the HTTP server with both handlers mounted
func NewServer(addr string, interactions *InteractionHandler, payments *PaymentHandler) *Server {
	mux := http.NewServeMux()
	mux.Handle("/interactions", requestLogger(interactions))
	mux.Handle("/verify-payment", requestLogger(payments))

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// Start begins serving; blocks until the server stops
func (s *Server) Start() error {
	log.WithField("addr", s.httpServer.Addr).Info("HTTP server listening")
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// requestLogger logs one line per request. Signature headers are never
// logged.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Info("Handled request")
	})
}
