package activity

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingGroup fails every Consume call
type failingGroup struct {
	sarama.ConsumerGroup
	calls  atomic.Int32
	errors chan error
}

func newFailingGroup() *failingGroup {
	errs := make(chan error)
	close(errs)
	return &failingGroup{errors: errs}
}

func (g *failingGroup) Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	g.calls.Add(1)
	return errors.New("broker unavailable")
}

func (g *failingGroup) Errors() <-chan error { return g.errors }
func (g *failingGroup) Close() error         { return nil }

func TestConsumerRun_CancelDuringRetryBackoff(t *testing.T) {
	group := newFailingGroup()
	consumer := NewConsumerFromGroup(group, []string{"fyyur.listings"}, LogHandler)
	consumer.retryBackoff = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Run(ctx) }()

	require.Eventually(t, func() bool { return group.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Equal(t, int32(1), group.calls.Load())
}

func TestConsumerRun_RetriesAfterBackoff(t *testing.T) {
	group := newFailingGroup()
	consumer := NewConsumerFromGroup(group, nil, LogHandler)
	consumer.retryBackoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- consumer.Run(ctx) }()

	require.Eventually(t, func() bool { return group.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

func TestNewConsumerFromGroup_DefaultBackoff(t *testing.T) {
	consumer := NewConsumerFromGroup(newFailingGroup(), nil, LogHandler)
	assert.Equal(t, defaultRetryBackoff, consumer.retryBackoff)
}
