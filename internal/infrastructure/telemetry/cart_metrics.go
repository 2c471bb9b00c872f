package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// CartMetrics records cart operation counters and latencies.
type CartMetrics struct {
	operations  *Counter
	itemsAdded  *Counter
	merges      *Counter
	mergedLines *Counter
	fallbacks   *Counter
	duration    *Histogram
}

// NewCartMetrics registers the cart instruments on meter.
func NewCartMetrics(meter metric.Meter) (*CartMetrics, error) {
	operations, err := NewCounter(meter, "cart.operations.total", "Cart operations by outcome", "{operation}")
	if err != nil {
		return nil, err
	}
	itemsAdded, err := NewCounter(meter, "cart.items.added", "Units added to carts", "{item}")
	if err != nil {
		return nil, err
	}
	merges, err := NewCounter(meter, "cart.merges.total", "Guest carts merged into user carts", "{merge}")
	if err != nil {
		return nil, err
	}
	mergedLines, err := NewCounter(meter, "cart.merges.items", "Line items carried by merges", "{item}")
	if err != nil {
		return nil, err
	}
	fallbacks, err := NewCounter(meter, "cart.store.fallbacks", "Times the in-memory store replaced Redis", "{fallback}")
	if err != nil {
		return nil, err
	}
	duration, err := NewHistogram(meter, HistogramOpts{
		Name:        "cart.operation.duration",
		Description: "Cart operation latency",
		Unit:        "ms",
		Boundaries:  OperationDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &CartMetrics{
		operations:  operations,
		itemsAdded:  itemsAdded,
		merges:      merges,
		mergedLines: mergedLines,
		fallbacks:   fallbacks,
		duration:    duration,
	}, nil
}

// RecordOperation counts an operation and records its latency.
func (m *CartMetrics) RecordOperation(ctx context.Context, operation, outcome string, duration time.Duration) {
	m.operations.Inc(ctx, AttrOperation.String(operation), AttrOutcome.String(outcome))
	m.duration.RecordMillis(ctx, duration, AttrOperation.String(operation))
}

// RecordItemsAdded counts units added to carts.
func (m *CartMetrics) RecordItemsAdded(ctx context.Context, quantity int) {
	m.itemsAdded.Add(ctx, int64(quantity))
}

// RecordMerge counts a completed merge and the lines it carried.
func (m *CartMetrics) RecordMerge(ctx context.Context, mergedItems int) {
	m.merges.Inc(ctx)
	m.mergedLines.Add(ctx, int64(mergedItems))
}

// RecordStoreFallback counts a start on the in-memory store.
func (m *CartMetrics) RecordStoreFallback(ctx context.Context, backend string) {
	m.fallbacks.Inc(ctx, AttrBackend.String(backend))
}
