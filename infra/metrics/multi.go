package metrics

import coremetrics "github.com/medrota/rotagap/core/metrics"

// MultiSink fans pipeline events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordLoad forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordLoad(ev coremetrics.LoadEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordLoad(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordCoverage forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordCoverage(ev coremetrics.CoverageEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordCoverage(ev); err != nil {
			return err
		}
	}
	return nil
}
