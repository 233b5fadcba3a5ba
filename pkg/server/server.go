// Package server implements the shape-serve TCP accept loop and
// per-connection request handling.
//
// The lifecycle of a connection is: accept, one read into a fixed-capacity
// buffer, scan the request line, route, write exactly one connection-close
// response, close. Requests larger than the read buffer are truncated; the
// first line still parses, and that is all the server looks at. Each
// connection runs on its own goroutine so a slow client never blocks
// acceptance or servicing of others; the only state shared across
// connections is read-only configuration.
package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shapestone/shape-serve/internal/astview"
	"github.com/shapestone/shape-serve/internal/config"
	"github.com/shapestone/shape-serve/internal/reqline"
	"github.com/shapestone/shape-serve/internal/static"
	"github.com/shapestone/shape-serve/pkg/wire"
)

// Canned response bodies. Lookup failures deliberately share one body: the
// client learns nothing about whether a file is missing, unreadable or not
// text — the distinction only reaches the log.
const (
	BodyNotFound         = "The requested file was not found"
	BodyMethodNotAllowed = "Only GET method is supported"
	BodyBadRequest       = "Invalid request format"
)

const protoVersion = "HTTP/1.1"

// Server serves files under a document root over raw TCP.
type Server struct {
	cfg      config.Config
	log      zerolog.Logger
	resolver *static.Resolver
}

// New builds a Server from configuration. The logger is used for all
// diagnostics; pass zerolog.Nop() to silence it.
func New(cfg config.Config, logger zerolog.Logger) *Server {
	return &Server{
		cfg: cfg,
		log: logger,
		resolver: &static.Resolver{
			Root: cfg.Root,
			Jail: cfg.Jail,
		},
	}
}

// ListenAndServe binds the configured TCP address and serves until the
// listener fails. A bind error is returned to the caller; it is the only
// fatal error class, and the process entry point is expected to exit on it.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: bind %s: %w", s.cfg.Addr, err)
	}
	s.log.Info().Str("addr", l.Addr().String()).Str("root", s.cfg.Root).Msg("listening")
	return s.Serve(l)
}

// Serve accepts connections from l until it is closed. Each accepted
// connection is handled on its own goroutine. Accept errors are logged and
// the loop keeps accepting; only listener closure ends it.
func (s *Server) Serve(l net.Listener) error {
	defer l.Close()

	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Error().Err(err).Msg("accept failed")
			continue
		}
		go s.handleConn(conn)
	}
}

// handleConn services one connection end to end.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	log := s.log.With().
		Str("conn_id", uuid.NewString()).
		Str("remote", conn.RemoteAddr().String()).
		Logger()

	if d := s.cfg.ReadTimeout.Std(); d > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(d)); err != nil {
			log.Error().Err(err).Msg("set read deadline failed")
			return
		}
	}

	// Exactly one read. Whatever fits in the buffer is the request; a
	// zero-byte read flows on and fails request-line scanning downstream.
	buf := make([]byte, s.cfg.ReadBufferSize)
	n, err := conn.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		log.Error().Err(err).Msg("read failed")
		return
	}
	log.Debug().Int("bytes", n).Msg("request received")

	line := reqline.Scan(buf[:n])
	for _, w := range line.Warnings {
		log.Debug().Str("warning", w).Msg("request line")
	}

	var resp *wire.Response
	switch {
	case line.Malformed():
		resp = s.canned(400, BodyBadRequest)
	case line.Method != "GET":
		resp = s.canned(405, BodyMethodNotAllowed)
	default:
		resp = s.serveFile(log, line.Path)
	}

	if s.cfg.Trace {
		s.trace(log, line, resp)
	}

	if d := s.cfg.WriteTimeout.Std(); d > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(d)); err != nil {
			log.Error().Err(err).Msg("set write deadline failed")
			return
		}
	}

	if err := wire.NewEncoder(conn).Encode(resp); err != nil {
		log.Error().Err(err).Int("status", resp.StatusCode).Msg("write failed")
		return
	}

	log.Info().
		Str("method", line.Method).
		Str("path", line.Path).
		Int("status", resp.StatusCode).
		Int("bytes", len(resp.Body)).
		Msg("request served")
}

// serveFile looks up the request path under the document root.
func (s *Server) serveFile(log zerolog.Logger, path string) *wire.Response {
	f, err := s.resolver.Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("file lookup failed")
		return s.canned(404, BodyNotFound)
	}
	return s.response(200, f.Body, f.ContentType)
}

// canned builds one of the fixed error responses.
func (s *Server) canned(code int, body string) *wire.Response {
	return s.response(code, []byte(body), static.Sniff([]byte(body)))
}

// response assembles the full response: status line, the fixed header set
// in wire order (Server, Content-Length, Content-Type, Connection: close),
// then the body verbatim.
func (s *Server) response(code int, body []byte, contentType string) *wire.Response {
	return &wire.Response{
		Version:    protoVersion,
		StatusCode: code,
		Reason:     wire.ReasonPhrase(code),
		Headers: wire.Headers{
			{Key: "Server", Value: s.cfg.ServerToken},
			{Key: "Content-Length", Value: strconv.Itoa(len(body))},
			{Key: "Content-Type", Value: contentType},
			{Key: "Connection", Value: "close"},
		},
		Body: body,
	}
}

// trace logs the exchange as the flattened AST structures other shapestone
// tooling consumes.
func (s *Server) trace(log zerolog.Logger, line *reqline.Result, resp *wire.Response) {
	req := &wire.Request{
		Method:  line.Method,
		Path:    line.Path,
		Version: line.Version,
	}

	reqView, err := astview.Flatten(astview.RequestToNode(req))
	if err != nil {
		log.Error().Err(err).Msg("trace: flatten request")
		return
	}
	respView, err := astview.Flatten(astview.ResponseToNode(resp))
	if err != nil {
		log.Error().Err(err).Msg("trace: flatten response")
		return
	}

	log.Debug().
		Interface("request", reqView).
		Interface("response", respView).
		Msg("trace")
}
