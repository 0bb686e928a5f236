//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("connection refused")

// fakeClock lets tests move past the open timeout without sleeping.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(failures, successes int) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	cb := New(Config{
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          30 * time.Second,
		Name:             "carts",
	})
	cb.now = clock.now
	return cb, clock
}

func run(cb *CircuitBreaker, err error) error {
	return cb.Execute(context.Background(), func() error { return err })
}

func TestCircuitBreaker_Transitions(t *testing.T) {
	type step struct {
		wait      time.Duration
		result    error
		wantErr   error
		wantState State
	}

	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "stays closed below the threshold",
			steps: []step{
				{result: errDown, wantErr: errDown, wantState: StateClosed},
				{result: nil, wantState: StateClosed},
				{result: errDown, wantErr: errDown, wantState: StateClosed},
			},
		},
		{
			name: "opens after consecutive failures and rejects calls",
			steps: []step{
				{result: errDown, wantErr: errDown, wantState: StateClosed},
				{result: errDown, wantErr: errDown, wantState: StateOpen},
				{wait: 29 * time.Second, result: nil, wantErr: ErrCircuitOpen, wantState: StateOpen},
			},
		},
		{
			name: "closes after enough half-open successes",
			steps: []step{
				{result: errDown, wantErr: errDown},
				{result: errDown, wantErr: errDown, wantState: StateOpen},
				{wait: 30 * time.Second, result: nil, wantState: StateHalfOpen},
				{result: nil, wantState: StateClosed},
			},
		},
		{
			name: "a half-open failure reopens the circuit",
			steps: []step{
				{result: errDown, wantErr: errDown},
				{result: errDown, wantErr: errDown, wantState: StateOpen},
				{wait: 31 * time.Second, result: errDown, wantErr: errDown, wantState: StateOpen},
				{result: nil, wantErr: ErrCircuitOpen, wantState: StateOpen},
			},
		},
		{
			name: "caller cancellation is not a backend failure",
			steps: []step{
				{result: context.Canceled, wantErr: context.Canceled, wantState: StateClosed},
				{result: context.Canceled, wantErr: context.Canceled, wantState: StateClosed},
				{result: context.Canceled, wantErr: context.Canceled, wantState: StateClosed},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, clock := newTestBreaker(2, 2)
			for i, s := range tt.steps {
				clock.advance(s.wait)
				err := run(cb, s.result)
				if s.wantErr == nil {
					assert.NoError(t, err, "step %d", i)
				} else {
					assert.ErrorIs(t, err, s.wantErr, "step %d", i)
				}
				assert.Equal(t, s.wantState, cb.State(), "step %d", i)
			}
		})
	}
}

func TestCircuitBreaker_HalfOpenProbeLimit(t *testing.T) {
	cb, clock := newTestBreaker(1, 1)
	require.ErrorIs(t, run(cb, errDown), errDown)
	clock.advance(time.Minute)

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- cb.Execute(context.Background(), func() error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	// The single probe is still running.
	assert.ErrorIs(t, run(cb, nil), ErrCircuitOpen)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateClosed, cb.State())
	assert.NoError(t, run(cb, nil))
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	var transitions []string
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Second,
		Name:             "orders",
		OnStateChange: func(name string, from, to State) {
			transitions = append(transitions, name+":"+from.String()+"->"+to.String())
		},
	})
	clock := &fakeClock{t: time.Now()}
	cb.now = clock.now

	_ = run(cb, errDown)
	clock.advance(2 * time.Second)
	_ = run(cb, nil)

	assert.Equal(t, []string{
		"orders:closed->open",
		"orders:open->half-open",
		"orders:half-open->closed",
	}, transitions)
}

func TestCircuitBreaker_IsSuccessful(t *testing.T) {
	notFound := errors.New("product not found")
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "products",
		IsSuccessful:     func(err error) bool { return errors.Is(err, notFound) },
	})

	assert.ErrorIs(t, run(cb, notFound), notFound)
	assert.Equal(t, StateClosed, cb.State())
	assert.Zero(t, cb.GetStats().FailureCount)
}

func TestCircuitBreaker_CancelledContext(t *testing.T) {
	cb := New(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestCall(t *testing.T) {
	cb := New(DefaultConfig())

	got, err := Call(context.Background(), cb, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = Call(context.Background(), cb, func() (string, error) { return "", errDown })
	assert.ErrorIs(t, err, errDown)

	stats := cb.GetStats()
	assert.Equal(t, "circuit-breaker", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.Equal(t, 1, stats.FailureCount)
	assert.True(t, stats.IsHealthy)
	assert.False(t, cb.IsOpen())
}

func TestNew_SuccessThresholdAtLeastOne(t *testing.T) {
	cb := New(Config{FailureThreshold: 1, Timeout: time.Minute})
	assert.Equal(t, 1, cb.config.SuccessThreshold)
}
