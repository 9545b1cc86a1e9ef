// Package arena exposes the decision engine, the battle engine, and their
// reference data over a websocket API, one envelope per request.
package arena

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/Gameaday/pokermon/internal/ai"
)

// Server accepts websocket clients on /ws and answers their requests
// through a shared Service. /health reports liveness for probes.
type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	svc         *Service
	httpServer  *http.Server
	connections map[*Connection]bool
	register    chan *Connection
	unregister  chan *Connection
	mu          sync.RWMutex
	logger      *log.Logger
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewServer creates an arena server listening on addr once started.
func NewServer(addr string, svc *Service, logger *log.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Clients connect from anywhere
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		svc:         svc,
		connections: make(map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}

	return s
}

// Start runs the connection registry and blocks serving HTTP until
// Shutdown is called or the listener fails.
func (s *Server) Start() error {
	go s.run()

	s.logger.Info("Starting arena server", "addr", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the listener, closes every client, and waits for in-flight
// handlers up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	s.mu.Lock()
	for client := range s.connections {
		client.Close()
	}
	s.connections = make(map[*Connection]bool)
	s.mu.Unlock()

	return s.httpServer.Shutdown(ctx)
}

// ConnectionCount returns the number of registered clients.
func (s *Server) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

// run serializes registry changes so connect and disconnect logging stays
// consistent with the map.
func (s *Server) run() {
	for {
		select {
		case <-s.ctx.Done():
			return

		case client := <-s.register:
			s.mu.Lock()
			s.connections[client] = true
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("Client connected", "total", total)

		case client := <-s.unregister:
			s.mu.Lock()
			delete(s.connections, client)
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("Client disconnected", "total", total)
		}
	}
}

// handleWebSocket upgrades an HTTP request and hands the socket to a new
// Connection.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s.svc, s.logger)

	select {
	case s.register <- client:
	case <-s.ctx.Done():
		client.Close()
		return
	}

	client.Start()

	go func() {
		<-client.ctx.Done()
		select {
		case s.unregister <- client:
		case <-s.ctx.Done():
		}
	}()
}

type healthStatus struct {
	Status      string `json:"status"`
	Presets     int    `json:"presets"`
	Species     int    `json:"species"`
	Connections int    `json:"connections"`
}

// handleHealth reports liveness plus how much reference data is loaded.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{
		Status:      "ok",
		Presets:     len(ai.Presets()),
		Connections: s.ConnectionCount(),
	}
	if s.svc != nil && s.svc.db != nil {
		status.Species = s.svc.db.Count()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		s.logger.Error("Failed to write health response", "error", err)
	}
}
