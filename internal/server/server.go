// Package server exposes the poker and Yahtzee classifiers over a
// WebSocket JSON protocol.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ErrConnectionClosed is returned when sending on a closed connection.
var ErrConnectionClosed = errors.New("connection closed")

// DefaultIdleTimeout is how long a connection may sit without traffic
// before the server closes it.
const DefaultIdleTimeout = 5 * time.Minute

// Server accepts WebSocket connections and answers classification requests.
type Server struct {
	logger      *log.Logger
	clock       quartz.Clock
	idleTimeout time.Duration
	upgrader    websocket.Upgrader
	httpServer  *http.Server

	mu    sync.Mutex
	conns map[string]*Connection
}

// Option configures the server.
type Option func(*Server)

// WithClock injects a clock, letting tests drive idle timeouts.
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) { s.clock = clock }
}

// WithIdleTimeout overrides the idle connection timeout.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Server) { s.idleTimeout = d }
}

// New creates a classification server.
func New(logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		logger:      logger.WithPrefix("server"),
		clock:       quartz.NewReal(),
		idleTimeout: DefaultIdleTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		conns: make(map[string]*Connection),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the HTTP handler serving the WebSocket endpoint at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Start listens on addr and serves until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	s.logger.Info("Listening", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown closes all connections and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for id, conn := range s.conns {
		_ = conn.Close()
		delete(s.conns, id)
	}
	s.mu.Unlock()

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// ConnectionCount returns the number of active connections.
func (s *Server) ConnectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Upgrade failed", "error", err)
		return
	}

	sessionID := uuid.New().String()
	conn := NewConnection(ws, sessionID, s.logger, s.clock, s.idleTimeout)

	s.mu.Lock()
	s.conns[sessionID] = conn
	s.mu.Unlock()

	s.logger.Info("Client connected", "session", sessionID, "remote", r.RemoteAddr)
	conn.Start()

	go func() {
		<-conn.Done()
		s.mu.Lock()
		delete(s.conns, sessionID)
		s.mu.Unlock()
		s.logger.Info("Client disconnected", "session", sessionID)
	}()
}
