package aggregate

import (
	otelmetric "go.opentelemetry.io/otel/metric"
)

// Option configures a metricFamily Aggregator at construction.
type Option func(*metricFamily)

// WithMeter records every accumulated sample's raw score_xy into an
// OTel histogram named "metametric.sample_score". No-op by default: a
// caller who never passes this option pays nothing, and this module
// never constructs or wires a concrete exporter itself — only the
// narrow recorder interface from go.opentelemetry.io/otel/metric, so an
// embedding service can supply its own Meter without this package
// depending on how that meter is wired up.
func WithMeter(meter otelmetric.Meter) Option {
	return func(f *metricFamily) {
		if meter == nil {
			return
		}
		hist, err := meter.Float64Histogram("metametric.sample_score")
		if err != nil {
			return
		}
		f.histogram = hist
	}
}
