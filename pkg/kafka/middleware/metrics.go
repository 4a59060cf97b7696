package kafka_middleware

import (
	"context"
	"sync/atomic"
	"time"

	"rentals/pkg/kafka"
)

// Metrics holds producer counters
type Metrics struct {
	MessagesPublished       int64
	MessagesPublishedFailed int64
	PublishDurationTotal    int64 // Nanoseconds
}

// Snapshot is a point-in-time copy of Metrics
type Snapshot struct {
	Published      int64
	Failed         int64
	AvgPublishTime time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Reset resets all metrics (useful for testing)
func (m *Metrics) Reset() {
	atomic.StoreInt64(&m.MessagesPublished, 0)
	atomic.StoreInt64(&m.MessagesPublishedFailed, 0)
	atomic.StoreInt64(&m.PublishDurationTotal, 0)
}

// GetAvgPublishDuration returns average publish duration over all attempts
func (m *Metrics) GetAvgPublishDuration() time.Duration {
	attempts := atomic.LoadInt64(&m.MessagesPublished) + atomic.LoadInt64(&m.MessagesPublishedFailed)
	if attempts == 0 {
		return 0
	}
	total := atomic.LoadInt64(&m.PublishDurationTotal)
	return time.Duration(total / attempts)
}

func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Published:      atomic.LoadInt64(&m.MessagesPublished),
		Failed:         atomic.LoadInt64(&m.MessagesPublishedFailed),
		AvgPublishTime: m.GetAvgPublishDuration(),
	}
}

// MetricsProducerMiddleware tracks producer metrics
func MetricsProducerMiddleware(m *Metrics) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		err := next(ctx, msg)

		atomic.AddInt64(&m.PublishDurationTotal, int64(time.Since(start)))
		if err != nil {
			atomic.AddInt64(&m.MessagesPublishedFailed, 1)
		} else {
			atomic.AddInt64(&m.MessagesPublished, 1)
		}

		return err
	}
}
