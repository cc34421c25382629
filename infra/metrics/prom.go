package metrics

import (
	coremetrics "github.com/medrota/rotagap/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records pipeline events in Prometheus metrics.
type PromSink struct {
	loads    prometheus.Counter
	raw      prometheus.Gauge
	prepared prometheus.Gauge
	master   prometheus.Gauge
	duration prometheus.Histogram
	unfilled *prometheus.GaugeVec
}

// NewPromSink registers pipeline metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	loads := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roster_load_runs_total",
		Help: "Total number of schedule load runs",
	})
	raw := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roster_raw_rows",
		Help: "Raw export rows fetched during the last load run",
	})
	prepared := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roster_prepared_records",
		Help: "Records surviving preparation during the last load run",
	})
	master := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roster_master_rotations",
		Help: "Size of the master rotation list after the last load run",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "roster_load_duration_seconds",
		Help:    "Duration of load runs including the export fetch",
		Buckets: prometheus.DefBuckets,
	})
	unfilled := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "roster_unfilled_rotations",
		Help: "Master rotations without coverage in the checked month",
	}, []string{"month"})

	collectors := []prometheus.Collector{loads, raw, prepared, master, duration, unfilled}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				collectors[i] = are.ExistingCollector
			} else {
				return nil, err
			}
		}
	}
	loads = collectors[0].(prometheus.Counter)
	raw = collectors[1].(prometheus.Gauge)
	prepared = collectors[2].(prometheus.Gauge)
	master = collectors[3].(prometheus.Gauge)
	duration = collectors[4].(prometheus.Histogram)
	unfilled = collectors[5].(*prometheus.GaugeVec)

	return &PromSink{
		loads:    loads,
		raw:      raw,
		prepared: prepared,
		master:   master,
		duration: duration,
		unfilled: unfilled,
	}, nil
}

// RecordLoad updates the load counters and gauges.
func (s *PromSink) RecordLoad(ev coremetrics.LoadEvent) error {
	s.loads.Inc()
	s.raw.Set(float64(ev.RawRows))
	s.prepared.Set(float64(ev.Prepared))
	s.master.Set(float64(ev.MasterSize))
	s.duration.Observe(ev.Duration.Seconds())
	return nil
}

// RecordCoverage sets the unfilled gauge for the checked month.
func (s *PromSink) RecordCoverage(ev coremetrics.CoverageEvent) error {
	s.unfilled.WithLabelValues(ev.Month).Set(float64(len(ev.Unfilled)))
	return nil
}
