package sequence

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/seqkit/logger"
)

// MeterName is the instrumentation scope of the engine's metrics.
const MeterName = "github.com/kbukum/seqkit/sequence"

// Attribute keys on sequence.events data points.
const (
	AttrOperation = logger.FieldOperation
	AttrEvent     = "event"
)

// engineMetrics holds the instruments the engine records into.
type engineMetrics struct {
	events metric.Int64Counter
}

var meters atomic.Pointer[engineMetrics]

func newEngineMetrics(meter metric.Meter) (*engineMetrics, error) {
	events, err := meter.Int64Counter("sequence.events",
		metric.WithDescription("Fusion decisions and terminal fast paths taken by the engine"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sequence.events counter: %w", err)
	}
	return &engineMetrics{events: events}, nil
}

// SetMeter counts engine events on meter; nil stops counting.
func SetMeter(meter metric.Meter) error {
	if meter == nil {
		meters.Store(nil)
		return nil
	}
	m, err := newEngineMetrics(meter)
	if err != nil {
		return err
	}
	meters.Store(m)
	return nil
}

// globalMeter is the engine meter from the process-wide provider.
func globalMeter() metric.Meter {
	return otel.Meter(MeterName)
}

func record(event, op string) {
	m := meters.Load()
	if m == nil {
		return
	}
	m.events.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String(AttrOperation, op),
		attribute.String(AttrEvent, event),
	))
}
