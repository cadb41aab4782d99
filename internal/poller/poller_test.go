package poller

import (
	"context"
	"errors"
	"io"
	"math"
	"sync"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Silence logger
	log.SetOutput(io.Discard)
}

type result struct {
	height int64
	err    error
}

// scriptedSource returns the scripted results in order and cancels the
// poller once the script is exhausted.
type scriptedSource struct {
	mu      sync.Mutex
	results []result
	calls   int
	cancel  context.CancelFunc
}

func (s *scriptedSource) BlockHeight(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls >= len(s.results) {
		s.cancel()
		return 0, ctx.Err()
	}
	r := s.results[s.calls]
	s.calls++
	return r.height, r.err
}

type recorder struct {
	mu      sync.Mutex
	heights []int64
}

func (r *recorder) Report(height int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.heights = append(r.heights, height)
}

func runScript(t *testing.T, results []result, opts ...Option) (*Poller, []int64) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	src := &scriptedSource{results: results, cancel: cancel}
	rec := &recorder{}
	p := New(src, append([]Option{WithInterval(time.Millisecond), WithReporter(rec)}, opts...)...)

	err := p.Run(ctx)
	require.ErrorIs(t, err, context.Canceled, "poller must stop because the script ended, not on timeout")
	return p, rec.heights
}

func TestPollerReportsStrictlyIncreasingHeights(t *testing.T) {
	p, reported := runScript(t, []result{
		{height: 100},
		{height: 100},
		{height: 105},
		{height: 104},
		{height: 110},
	})

	assert.Equal(t, []int64{100, 105, 110}, reported)
	max, ok := p.Tracker().Max()
	assert.True(t, ok)
	assert.Equal(t, int64(110), max)
}

func TestPollerSkipsFailedQueries(t *testing.T) {
	queryErr := errors.New("exec failed")
	var failures []error
	_, reported := runScript(t, []result{
		{err: queryErr},
		{height: 7},
		{err: queryErr},
		{err: queryErr},
		{height: 9},
	}, WithPollHook(func(err error) {
		if err != nil {
			failures = append(failures, err)
		}
	}))

	assert.Equal(t, []int64{7, 9}, reported)
	// The last failure is the cancellation at the end of the script.
	require.Len(t, failures, 4)
	for _, err := range failures[:3] {
		assert.ErrorIs(t, err, queryErr)
	}
}

func TestPollerNegativeHeights(t *testing.T) {
	_, reported := runScript(t, []result{{height: -5}, {height: -1}, {height: -3}})
	assert.Equal(t, []int64{-5, -1}, reported)
}

type blockingSource struct {
	started chan struct{}
}

func (s *blockingSource) BlockHeight(ctx context.Context) (int64, error) {
	close(s.started)
	<-ctx.Done()
	return 0, ctx.Err()
}

func TestPollerCancelMidCycle(t *testing.T) {
	src := &blockingSource{started: make(chan struct{})}
	rec := &recorder{}
	p := New(src, WithInterval(time.Hour), WithReporter(rec))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	<-src.started
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
	assert.Empty(t, rec.heights)
	_, ok := p.Tracker().Max()
	assert.False(t, ok)
}

func TestPollerAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &scriptedSource{cancel: cancel}

	err := New(src).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, src.calls)
}

func TestTracker(t *testing.T) {
	tr := NewTracker()
	_, ok := tr.Max()
	assert.False(t, ok)

	assert.True(t, tr.Observe(math.MinInt64+1))
	assert.False(t, tr.Observe(math.MinInt64+1))
	assert.True(t, tr.Observe(3))
	assert.False(t, tr.Observe(2))
	max, ok := tr.Max()
	assert.True(t, ok)
	assert.Equal(t, int64(3), max)
}

func TestLogReporter(t *testing.T) {
	logger, hook := test.NewNullLogger()
	LogReporter{Logger: log.NewEntry(logger)}.Report(42)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Block height", entry.Message)
	assert.Equal(t, int64(42), entry.Data["height"])
}

func TestReporterFunc(t *testing.T) {
	var got int64
	ReporterFunc(func(h int64) { got = h }).Report(12)
	assert.Equal(t, int64(12), got)
}
