// Package workerpool runs background jobs on a bounded ants pool.
package workerpool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"

	"krushi/internal/ports/output"
)

var _ output.Dispatcher = (*Pool)(nil)

// ErrPoolFull is returned by Dispatch when every worker is busy.
var ErrPoolFull = errors.New("workerpool: pool is full")

const expiry = time.Minute

// Pool dispatches jobs to at most size goroutines. Dispatch never blocks.
type Pool struct {
	pool   *ants.Pool
	logger *slog.Logger
}

type antsLogger struct{ logger *slog.Logger }

func (l antsLogger) Printf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...), "component", "workerpool")
}

func New(size int, logger *slog.Logger) (*Pool, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{logger: logger}
	pool, err := ants.NewPool(size,
		ants.WithNonblocking(true),
		ants.WithExpiryDuration(expiry),
		ants.WithPanicHandler(func(v any) {
			logger.Error("workerpool: job panicked", "panic", v)
		}),
		ants.WithLogger(antsLogger{logger: logger}),
	)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	p.pool = pool
	return p, nil
}

// Dispatch queues job. The job receives a context that keeps ctx's values but
// not its cancellation, so it can outlive the request that triggered it. A
// caller that already gave up still gets its job run.
func (p *Pool) Dispatch(ctx context.Context, job func(ctx context.Context)) error {
	detached := context.WithoutCancel(ctx)
	err := p.pool.Submit(func() { job(detached) })
	if errors.Is(err, ants.ErrPoolOverload) {
		return ErrPoolFull
	}
	return err
}

// Running reports how many worker goroutines are alive, idle ones included.
func (p *Pool) Running() int {
	return p.pool.Running()
}

// Shutdown waits up to timeout for running jobs, then releases the pool.
func (p *Pool) Shutdown(timeout time.Duration) error {
	if err := p.pool.ReleaseTimeout(timeout); err != nil {
		return fmt.Errorf("release worker pool: %w", err)
	}
	return nil
}
