package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Luismorlan/choirmux/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModule struct {
	name     string
	failures int32
	runs     int32
	shutdown int32
	block    bool
}

func (m *fakeModule) RunModule(ctx context.Context) error {
	run := atomic.AddInt32(&m.runs, 1)
	if run <= m.failures {
		return errors.New("boom")
	}
	if m.block {
		<-ctx.Done()
	}
	return nil
}

func (m *fakeModule) Name() string {
	return m.name
}

func (m *fakeModule) Shutdown() {
	atomic.AddInt32(&m.shutdown, 1)
}

func TestRunModuleWithGracefulRestart(t *testing.T) {
	GracefulRetryDelay = time.Millisecond
	m := &fakeModule{name: "flaky", failures: 2}
	RunModuleWithGracefulRestart(context.Background(), m)
	assert.Equal(t, int32(3), atomic.LoadInt32(&m.runs))
}

func TestRunModuleStopsRetryingOnCancel(t *testing.T) {
	GracefulRetryDelay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := &fakeModule{name: "broken", failures: 100}
	RunModuleWithGracefulRestart(ctx, m)
	assert.Equal(t, int32(1), atomic.LoadInt32(&m.runs))
}

func TestEngineRunAndShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	bus := stream.NewBus()
	a := &fakeModule{name: "a", block: true}
	b := &fakeModule{name: "b", block: true}
	e := NewEngine([]Module{a, b}, ctx, cancel, bus)

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	e.Shutdown()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		require.FailNow(t, "engine did not stop")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&a.shutdown))
	assert.Equal(t, int32(1), atomic.LoadInt32(&b.shutdown))

	_, err := bus.Subscribe(context.Background(), "any")
	assert.Error(t, err)
}
