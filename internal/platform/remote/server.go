package remote

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// InputPath is the WebSocket endpoint.
const InputPath = "/input"

// DefaultMaxConns limits how many controllers may drive one game.
const DefaultMaxConns = 4

// Sink receives decoded events. It must be safe to call from any goroutine.
type Sink func(any)

// ServerConfig holds configuration for the bridge.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8090").
	Address string

	// MaxConns caps concurrent controllers. Zero means DefaultMaxConns.
	MaxConns int
}

// Server accepts remote controllers and forwards their input to a sink.
type Server struct {
	config   ServerConfig
	sink     Sink
	logger   *log.Logger
	conns    *ConnManager
	upgrader websocket.Upgrader
	http     *http.Server
	listener net.Listener
}

// NewServer creates a bridge. A nil logger discards output.
func NewServer(cfg ServerConfig, sink Sink, logger *log.Logger) *Server {
	if cfg.MaxConns <= 0 {
		cfg.MaxConns = DefaultMaxConns
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		config: cfg,
		sink:   sink,
		logger: logger,
		conns:  NewConnManager(),
		upgrader: websocket.Upgrader{
			// Controllers are typically a phone on the LAN serving its own page.
			CheckOrigin:     func(*http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler serving InputPath.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(InputPath, s.handleInput)
	return mux
}

func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("remote upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	// Check limits after upgrade so the client can receive the error.
	conn := NewConn(ws)
	if !s.conns.TryAdd(conn, s.config.MaxConns) {
		_ = conn.Send(ErrorMsg{Type: MsgError, Message: "too many controllers"})
		conn.Close()
		s.logger.Warn("remote controller rejected", "remote", r.RemoteAddr, "max", s.config.MaxConns)
		return
	}
	s.logger.Info("remote controller connected", "conn", conn.ID, "remote", r.RemoteAddr)

	// Send welcome immediately so the client knows its ID.
	_ = conn.Send(WelcomeMsg{Type: MsgWelcome, ID: conn.ID})

	conn.ReadLoop(s.sink, s.logger)

	s.conns.Remove(conn.ID)
	s.logger.Info("remote controller disconnected", "conn", conn.ID)
}

// Listen binds the configured address. Call Serve afterwards.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.config.Address
}

// Serve accepts connections until Shutdown. It binds first if needed.
func (s *Server) Serve() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	s.logger.Info("remote bridge listening", "address", s.Addr(), "path", InputPath)
	if err := s.http.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and closes active controllers.
func (s *Server) Shutdown(ctx context.Context) error {
	s.conns.CloseAll()
	return s.http.Shutdown(ctx)
}

// ConnCount returns the number of connected controllers.
func (s *Server) ConnCount() int {
	return s.conns.Count()
}
