package refresh

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/orderwatch/internal/refresh"

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

type metrics struct {
	runs     metric.Int64Counter
	duration metric.Float64Histogram
	orders   metric.Int64Gauge
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	runs, err := meter.Int64Counter("orderwatch.refresh.runs",
		metric.WithDescription("Completed refreshes by outcome."),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("orderwatch.refresh.duration",
		metric.WithDescription("Duration of a refresh."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	orders, err := meter.Int64Gauge("orderwatch.refresh.orders",
		metric.WithDescription("Orders in the current snapshot."),
	)
	if err != nil {
		return nil, err
	}

	return &metrics{runs: runs, duration: duration, orders: orders}, nil
}

// mustMetrics falls back to no-op instruments when meter rejects one of them.
func mustMetrics(meter metric.Meter) *metrics {
	m, err := newMetrics(meter)
	if err != nil {
		m, _ = newMetrics(noop.NewMeterProvider().Meter(instrumentationName))
	}
	return m
}

func (m *metrics) record(ctx context.Context, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.runs.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
}

func tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
