package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/casualjim/hoot/pkg/slogx"
)

// PoolConfig configures a Pool.
type PoolConfig struct {
	Workers   int // Number of worker goroutines
	QueueSize int // Maximum queued units of work

	// PanicHandler receives panics recovered from work. When nil they are logged.
	PanicHandler func(*PanicError)
}

// DefaultPoolConfig returns the default pool configuration.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Workers:   4,
		QueueSize: 256,
	}
}

// PoolStats provides statistics about a pool.
type PoolStats struct {
	Workers   int   // Number of worker goroutines
	Queued    int64 // Units of work waiting in the queue
	Completed int64 // Units of work that ran, including the ones that panicked
	Rejected  int64 // Units of work refused by TrySubmit or after shutdown
	CallerRan int64 // Units of work Marshal ran on the calling goroutine because the queue was full
	Panicked  int64 // Units of work that panicked
	Capacity  int   // Queue capacity
}

// Pool runs work on a fixed set of worker goroutines fed by a bounded queue.
type Pool struct {
	work    chan func()
	workers int
	wg      sync.WaitGroup
	onPanic func(*PanicError)
	logger  *slog.Logger

	mu     sync.RWMutex
	closed bool

	completed atomic.Int64
	rejected  atomic.Int64
	callerRan atomic.Int64
	panicked  atomic.Int64
}

// NewPool starts a pool with the given configuration.
func NewPool(config PoolConfig) *Pool {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.QueueSize < 1 {
		config.QueueSize = DefaultPoolConfig().QueueSize
	}

	p := &Pool{
		work:    make(chan func(), config.QueueSize),
		workers: config.Workers,
		onPanic: config.PanicHandler,
		logger:  slog.Default().With(slogx.LoggerName("hoot.dispatch.pool")),
	}
	p.wg.Add(p.workers)
	for range p.workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for work := range p.work {
		p.run(work)
		p.completed.Add(1)
	}
}

func (p *Pool) run(work func()) {
	defer func() {
		if r := recover(); r != nil {
			p.panicked.Add(1)
			pe := &PanicError{Value: r, Stack: debug.Stack()}
			if p.onPanic != nil {
				p.onPanic(pe)
				return
			}
			p.logger.Error("work panicked", slogx.Panic(r), slog.String("stack", string(pe.Stack)))
		}
	}()
	work()
}

// Marshal queues work. When the queue is full the work runs on the calling goroutine
// instead, so a handler running on a worker can publish through the same pool without
// waiting for itself. Work submitted after Shutdown is dropped and counted as rejected.
// It satisfies hoot.Marshaller.
func (p *Pool) Marshal(work func()) {
	err := p.submit(work)
	switch {
	case err == nil:
	case errors.Is(err, ErrQueueFull):
		p.callerRan.Add(1)
		p.run(work)
		p.completed.Add(1)
	default:
		p.rejected.Add(1)
		p.logger.Warn("work dropped", slogx.Error(err))
	}
}

// TrySubmit queues work without waiting. It returns ErrQueueFull when the queue has no room
// and ErrClosed after Shutdown.
func (p *Pool) TrySubmit(work func()) error {
	if err := p.submit(work); err != nil {
		p.rejected.Add(1)
		return err
	}
	return nil
}

// submit never blocks.
func (p *Pool) submit(work func()) error {
	if work == nil {
		return fmt.Errorf("work cannot be nil")
	}

	// The read lock keeps Shutdown from closing the channel under a pending send.
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}

	select {
	case p.work <- work:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown stops accepting work, lets the workers drain the queue and waits for them
// until ctx is done.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.work)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}

// Stats returns current pool statistics.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Workers:   p.workers,
		Queued:    int64(len(p.work)),
		Completed: p.completed.Load(),
		Rejected:  p.rejected.Load(),
		CallerRan: p.callerRan.Load(),
		Panicked:  p.panicked.Load(),
		Capacity:  cap(p.work),
	}
}
