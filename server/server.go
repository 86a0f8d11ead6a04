package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const maxAcceptDelay = time.Second

type Config struct {
	Host string
	Port int
}

func DefaultConfig() Config {
	return Config{Host: "127.0.0.1", Port: 8888}
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Server serves one connection at a time: the next connection is not
// accepted until the current one has been answered and closed.
type Server struct {
	Config  Config
	Handler RequestHandler
	Logger  zerolog.Logger
}

func New(cfg Config, handler RequestHandler, logger zerolog.Logger) *Server {
	return &Server{
		Config:  cfg,
		Handler: handler,
		Logger:  logger,
	}
}

func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.Config.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Config.Addr(), err)
	}
	defer l.Close()

	return s.Serve(l)
}

// Serve runs the accept loop on l. It only returns once l is closed.
func (s *Server) Serve(l net.Listener) error {
	if s.Handler == nil {
		s.Handler = Echo{}
	}

	s.Logger.Info().Str("addr", l.Addr().String()).Msg("listening")

	var tempDelay time.Duration // how long to sleep on accept failure
	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			if tempDelay == 0 {
				tempDelay = 5 * time.Millisecond
			} else {
				tempDelay = min(2*tempDelay, maxAcceptDelay)
			}
			s.Logger.Error().Err(err).Dur("retry_in", tempDelay).Msg("accept failed")
			time.Sleep(tempDelay)
			continue
		}
		tempDelay = 0

		s.Logger.Debug().Str("peer", conn.RemoteAddr().String()).Msg("connected")
		if err := s.handleConnection(conn); err != nil {
			s.Logger.Error().Err(err).Str("peer", conn.RemoteAddr().String()).Msg("connection error")
		}
	}
}
