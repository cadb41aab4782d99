package poller

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultInterval is the time between two height queries.
const DefaultInterval = 2 * time.Second

// HeightSource returns the current block height of a node.
type HeightSource interface {
	BlockHeight(ctx context.Context) (int64, error)
}

// Reporter receives every new maximum height.
type Reporter interface {
	Report(height int64)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(height int64)

func (f ReporterFunc) Report(height int64) { f(height) }

// Poller periodically queries a HeightSource and reports strictly increasing
// heights. Failed queries are skipped; the next tick simply tries again.
type Poller struct {
	source    HeightSource
	interval  time.Duration
	reporters []Reporter
	onPoll    func(error)
	tracker   *Tracker
}

// Option configures a Poller.
type Option func(*Poller)

func WithInterval(d time.Duration) Option {
	return func(p *Poller) { p.interval = d }
}

func WithReporter(r Reporter) Option {
	return func(p *Poller) { p.reporters = append(p.reporters, r) }
}

// WithPollHook registers a function called after every query with its
// error, nil on success.
func WithPollHook(f func(error)) Option {
	return func(p *Poller) { p.onPoll = f }
}

func New(source HeightSource, opts ...Option) *Poller {
	p := &Poller{
		source:   source,
		interval: DefaultInterval,
		tracker:  NewTracker(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tracker exposes the poller's height record.
func (p *Poller) Tracker() *Tracker {
	return p.tracker
}

// Run polls immediately and then once per interval until ctx is done, and
// returns ctx.Err(). A query in flight when ctx is cancelled is abandoned
// through the same context.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.poll(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	height, err := p.source.BlockHeight(ctx)
	if p.onPoll != nil {
		p.onPoll(err)
	}
	if err != nil {
		log.WithError(err).Debug("Block height query failed")
		return
	}
	if !p.tracker.Observe(height) {
		return
	}
	for _, r := range p.reporters {
		r.Report(height)
	}
}

// LogReporter logs every new height.
type LogReporter struct {
	Logger *log.Entry
}

func (r LogReporter) Report(height int64) {
	logger := r.Logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	logger.WithField("height", height).Info("Block height")
}
