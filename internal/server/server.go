package server

import (
	"net"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tekbug/http-server/internal/router"
)

const defaultMaxRequestBytes = 64 << 10

// Config holds server settings. The zero timeouts mean no deadline: a
// silent client holds its connection until it hangs up.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRequestBytes int
}

func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		MaxRequestBytes: defaultMaxRequestBytes,
	}
}

// Server accepts TCP connections and serves exactly one request per
// connection before closing it.
type Server struct {
	config   Config
	router   *router.Router
	listener net.Listener
	closed   atomic.Bool
	log      zerolog.Logger
	metrics  *Metrics
}

// Serve binds the listener and starts the accept loop in the background.
func Serve(config Config, r *router.Router, log zerolog.Logger) (*Server, error) {
	if config.MaxRequestBytes <= 0 {
		config.MaxRequestBytes = defaultMaxRequestBytes
	}

	listener, err := net.Listen("tcp", config.Addr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:   config,
		router:   r,
		listener: listener,
		log:      log,
		metrics:  NewMetrics(),
	}

	go s.listen()
	return s, nil
}

// Addr returns the listener's address, useful when binding to port 0.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Metrics returns the server's runtime counters.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

func (s *Server) listen() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() {
				return
			}
			// An accept failure is fatal only to that connection; keep
			// accepting.
			s.log.Error().Err(err).Msg("accept failed")
			continue
		}

		go s.serveConn(conn)
	}
}

// Close stops the accept loop. In-flight connections run to completion.
func (s *Server) Close() error {
	s.closed.Store(true)
	return s.listener.Close()
}
