package kafka_middleware

import (
	"context"
	"errors"
	"testing"

	"rentals/pkg/kafka"
	"rentals/pkg/logger"
)

func TestMetricsProducerMiddleware(t *testing.T) {
	m := NewMetrics()
	mw := MetricsProducerMiddleware(m)

	ok := func(ctx context.Context, msg kafka.Message) error { return nil }
	fail := func(ctx context.Context, msg kafka.Message) error { return errors.New("boom") }

	_ = mw(context.Background(), kafka.Message{}, ok)
	_ = mw(context.Background(), kafka.Message{}, ok)
	_ = mw(context.Background(), kafka.Message{}, fail)

	snap := m.Snapshot()
	if snap.Published != 2 || snap.Failed != 1 {
		t.Errorf("Snapshot() = %+v, want 2 published / 1 failed", snap)
	}

	m.Reset()
	if snap := m.Snapshot(); snap.Published != 0 || snap.Failed != 0 || snap.AvgPublishTime != 0 {
		t.Errorf("after Reset() = %+v", snap)
	}
}

func TestLoggingProducerMiddleware_PassesErrorThrough(t *testing.T) {
	mw := LoggingProducerMiddleware(logger.Discard())
	cause := errors.New("boom")

	err := mw(context.Background(), kafka.Message{Headers: map[string]string{}}, func(ctx context.Context, msg kafka.Message) error {
		return cause
	})
	if !errors.Is(err, cause) {
		t.Errorf("expected error to pass through, got %v", err)
	}
}
