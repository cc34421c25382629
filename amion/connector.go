package amion

import (
	"context"
	"sync"

	"github.com/medrota/rotagap/core/model"
	"github.com/medrota/rotagap/infra/logger"
)

// Fetcher retrieves raw schedule rows for a set of academic years.
type Fetcher interface {
	FetchYears(ctx context.Context, years []string) ([]model.RawRecord, error)
}

// NewFetcher creates a fetcher depending on cfg.Mode ("client" or "mock").
func NewFetcher(cfg Config) (Fetcher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Mode {
	case "mock":
		return NewMockFetcher(cfg), nil
	default:
		return NewClient(cfg), nil
	}
}

// MockFetcher serves a stored export file from a local ServerMock and
// fetches it back through the regular HTTP client, so mock mode exercises
// the same request and parser path as client mode without a passkey.
type MockFetcher struct {
	srv    *ServerMock
	client *Client
	once   sync.Once
	err    error
	log    logger.Logger
}

// NewMockFetcher creates a fetcher backed by a fixture-serving mock server.
// The server binds lazily on first fetch; an empty MockAddress picks a free
// loopback port.
func NewMockFetcher(cfg Config) *MockFetcher {
	addr := cfg.MockAddress
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	return &MockFetcher{
		srv: NewServerMock(addr, cfg.FixturePath),
		log: logger.New("amion-mock"),
	}
}

func (f *MockFetcher) start() error {
	f.once.Do(func() {
		if err := f.srv.Listen(); err != nil {
			f.err = err
			return
		}
		f.client = NewClient(Config{
			Mode:    "client",
			BaseURL: "http://" + f.srv.Addr() + "/cgi-bin/ocs",
			Passkey: "mock",
		})
		f.log.Infof("serving fixture at %s", f.srv.Addr())
	})
	return f.err
}

// FetchYears fetches the fixture over HTTP once per requested year; the
// client tags each batch with its year code.
func (f *MockFetcher) FetchYears(ctx context.Context, years []string) ([]model.RawRecord, error) {
	if err := f.start(); err != nil {
		return nil, err
	}
	return f.client.FetchYears(ctx, years)
}

// Close stops the fixture server if it was started.
func (f *MockFetcher) Close() { f.srv.Shutdown() }
