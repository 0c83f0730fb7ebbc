package server

import (
	"net"
	"time"

	"github.com/tekbug/http-server/internal/request"
	"github.com/tekbug/http-server/internal/response"
)

// serveConn drives one connection through the pipeline:
// receive, parse, route, render, send, close.
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	start := time.Now()
	remote := conn.RemoteAddr().String()

	s.metrics.ConnOpened()
	defer s.metrics.ConnClosed()

	if s.config.ReadTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	}

	buf := getBuffer(s.config.MaxRequestBytes)
	defer putBuffer(buf)

	// The whole request is assumed to arrive in this single read; a
	// payload split across reads is truncated at the first segment.
	n, err := conn.Read(buf)
	if err != nil {
		s.metrics.RecordTransportError()
		s.log.Error().Err(err).Str("remote", remote).Msg("read failed")
		return
	}

	if s.config.WriteTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	}

	req, err := request.Parse(buf[:n])
	if err != nil {
		s.send(conn, remote, response.StatusBadRequest, "BAD REQUEST")
		s.metrics.RecordRequest(int(response.StatusBadRequest), time.Since(start))
		s.log.Warn().Err(err).Str("remote", remote).Msg("malformed request")
		return
	}

	code, body := s.router.Route(req.Method, req.Path, req.Body)
	s.send(conn, remote, code, body)
	s.metrics.RecordRequest(int(code), time.Since(start))

	s.log.Info().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", int(code)).
		Dur("duration", time.Since(start)).
		Str("remote", remote).
		Msg("request handled")
}

func (s *Server) send(conn net.Conn, remote string, code response.StatusCode, body string) {
	if _, err := conn.Write(response.Render(code, body)); err != nil {
		s.metrics.RecordTransportError()
		s.log.Error().Err(err).Str("remote", remote).Msg("write failed")
	}
}
