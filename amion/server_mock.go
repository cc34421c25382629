package amion

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/medrota/rotagap/infra/logger"
)

// ServerMock exposes a stored export file over HTTP, mimicking the report
// CGI endpoint. It exists so the full client path can be exercised locally
// and in tests without touching the real service.
type ServerMock struct {
	addr    string
	fixture string
	log     logger.Logger
	srv     *http.Server
}

// NewServerMock creates a mock server serving the fixture file.
func NewServerMock(addr, fixturePath string) *ServerMock {
	return &ServerMock{
		addr:    addr,
		fixture: fixturePath,
		log:     logger.New("amion-server-mock"),
	}
}

func (s *ServerMock) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("pong")); err != nil {
			s.log.Errorf("write pong: %v", err)
		}
	})
	mux.HandleFunc("/cgi-bin/ocs", s.handleReport)
	return mux
}

func (s *ServerMock) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Query().Get("Lo") == "" {
		http.Error(w, "missing passkey", http.StatusForbidden)
		return
	}
	data, err := os.ReadFile(s.fixture)
	if err != nil {
		s.log.Errorf("read fixture: %v", err)
		http.Error(w, "fixture unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		s.log.Errorf("write fixture: %v", err)
	}
}

// Addr returns the listening address once Listen has been called.
func (s *ServerMock) Addr() string { return s.addr }

// Listen binds the configured address and serves in the background until
// Shutdown is called. A ":0" port is resolved before returning, so Addr
// reports the bound address.
func (s *ServerMock) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.addr = ln.Addr().String()
	s.srv = &http.Server{Handler: s.routes()}
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.Errorf("serve: %v", err)
		}
	}()
	s.log.Infof("amion mock server listening on %s", s.addr)
	return nil
}

// Shutdown stops a server started with Listen.
func (s *ServerMock) Shutdown() {
	if s.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.log.Errorf("shutdown server: %v", err)
	}
}
