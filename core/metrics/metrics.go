package metrics

import "time"

// LoadEvent captures one load run: fetching the schedule export, preparing
// records and rebuilding the master rotation list.
type LoadEvent struct {
	RunID      string
	Years      []string
	RawRows    int
	Prepared   int
	MasterSize int
	Duration   time.Duration
	Time       time.Time
}

// CoverageEvent captures one monthly coverage check.
type CoverageEvent struct {
	RunID    string
	Month    string
	Unfilled []string
	Time     time.Time
}

// Sink records pipeline events for observability purposes.
type Sink interface {
	RecordLoad(ev LoadEvent) error
	RecordCoverage(ev CoverageEvent) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordLoad(LoadEvent) error         { return nil }
func (NopSink) RecordCoverage(CoverageEvent) error { return nil }

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9090"
	}
}
