package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medrota/rotagap/amion"
	apicoverage "github.com/medrota/rotagap/api/coverage"
	"github.com/medrota/rotagap/config"
	"github.com/medrota/rotagap/core/coverage"
	coremetrics "github.com/medrota/rotagap/core/metrics"
	"github.com/medrota/rotagap/core/model"
	"github.com/medrota/rotagap/core/recurrence"
	"github.com/medrota/rotagap/core/roster"
	"github.com/medrota/rotagap/infra/logger"
	"github.com/medrota/rotagap/infra/metrics"
	"github.com/medrota/rotagap/internal/eventbus"
	"github.com/medrota/rotagap/notify"
)

// ErrNotLoaded is returned by Check before any successful Load.
var ErrNotLoaded = errors.New("no schedule data loaded")

// Service owns the (snapshot, master list) pair between a load and the
// coverage checks that follow. The analytical core stays pure; the service
// is the stateful caller it was designed for.
type Service struct {
	cfg      *config.Config
	fetcher  amion.Fetcher
	preparer *roster.Preparer
	params   recurrence.Params
	sink     coremetrics.Sink
	bus      *eventbus.Bus[coremetrics.CoverageEvent]
	notifier *notify.Publisher
	log      logger.Logger

	mu       sync.RWMutex
	snapshot []model.Record
	master   []string
	loaded   bool
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	terms := cfg.Exclude.Terms
	if len(terms) == 0 {
		terms = roster.DefaultBannedTerms()
	}
	excluder, err := roster.NewExcluder(terms)
	if err != nil {
		return nil, fmt.Errorf("excluder: %w", err)
	}

	fetcher, err := amion.NewFetcher(cfg.Amion)
	if err != nil {
		return nil, fmt.Errorf("amion fetcher: %w", err)
	}

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	svc := &Service{
		cfg:      cfg,
		fetcher:  fetcher,
		preparer: roster.NewPreparer(excluder),
		params:   cfg.Detector,
		sink:     sink,
		bus:      eventbus.New[coremetrics.CoverageEvent](),
		log:      logg,
	}
	if cfg.Notify.Enabled {
		pub, err := notify.NewPublisher(cfg.Notify)
		if err != nil {
			return nil, fmt.Errorf("notifier: %w", err)
		}
		svc.notifier = pub
	}
	return svc, nil
}

// Load fetches the configured academic years, prepares the records and
// rebuilds the master rotation list, atomically replacing the owned
// snapshot/master pair. The master list is rebuilt fully on every load.
func (s *Service) Load(ctx context.Context, years []string) (coremetrics.LoadEvent, error) {
	if len(years) == 0 {
		years = s.cfg.Amion.Years
	}
	start := time.Now()
	raws, err := s.fetcher.FetchYears(ctx, years)
	if err != nil {
		return coremetrics.LoadEvent{}, err
	}
	prepared := s.preparer.Prepare(raws)
	master := recurrence.BuildMasterList(recurrence.Detect(prepared, s.params))

	s.mu.Lock()
	s.snapshot = prepared
	s.master = master
	s.loaded = true
	s.mu.Unlock()

	ev := coremetrics.LoadEvent{
		RunID:      uuid.NewString(),
		Years:      years,
		RawRows:    len(raws),
		Prepared:   len(prepared),
		MasterSize: len(master),
		Duration:   time.Since(start),
		Time:       time.Now().UTC(),
	}
	if err := s.sink.RecordLoad(ev); err != nil {
		s.log.Errorf("record load: %v", err)
	}
	s.log.Infof("loaded rows=%d prepared=%d master=%d", ev.RawRows, ev.Prepared, ev.MasterSize)
	return ev, nil
}

// Master returns a copy of the current master rotation list.
func (s *Service) Master() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.master))
	copy(out, s.master)
	return out
}

// Stats returns occurrence statistics for the current master list.
func (s *Service) Stats() []recurrence.RotationStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return recurrence.Stats(s.snapshot, s.master)
}

// Check computes the unfilled rotations for the given "YYYY-MM" month
// against the currently loaded pair. A malformed month surfaces as
// coverage.ErrInvalidMonth; calling before any load returns ErrNotLoaded.
func (s *Service) Check(monthStr string) (coremetrics.CoverageEvent, error) {
	month, err := coverage.ParseMonth(monthStr)
	if err != nil {
		return coremetrics.CoverageEvent{}, err
	}

	s.mu.RLock()
	loaded := s.loaded
	snapshot := s.snapshot
	master := s.master
	s.mu.RUnlock()
	if !loaded {
		return coremetrics.CoverageEvent{}, ErrNotLoaded
	}

	ev := coremetrics.CoverageEvent{
		RunID:    uuid.NewString(),
		Month:    month.String(),
		Unfilled: coverage.Unfilled(snapshot, master, month),
		Time:     time.Now().UTC(),
	}
	if err := s.sink.RecordCoverage(ev); err != nil {
		s.log.Errorf("record coverage: %v", err)
	}
	s.bus.Publish(ev)
	s.log.Infof("checked %s: %d unfilled", ev.Month, len(ev.Unfilled))
	return ev, nil
}

// Run starts the API server, the metrics endpoint and the alert forwarder,
// then blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.notifier != nil {
		events := s.bus.Subscribe()
		go func() {
			for ev := range events {
				if err := s.notifier.PublishCoverage(ev); err != nil {
					s.log.Errorf("publish alert: %v", err)
				}
			}
		}()
	}
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if s.cfg.API.Enabled {
		go func() {
			if err := apicoverage.Serve(ctx, s.cfg.API.Address, apicoverage.NewHandler(s)); err != nil {
				s.log.Errorf("api server: %v", err)
			}
		}()
	}
	<-ctx.Done()
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if s.notifier != nil {
		s.notifier.Close()
	}
	if c, ok := s.fetcher.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}
