package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/casualjim/hoot/pkg/slogx"
)

// Loop runs work one unit at a time, in submission order, on a single goroutine it owns.
// It plays the role of a UI thread: everything posted to the same Loop is serialized.
//
// The mailbox grows as needed, so Post never blocks, including from work already running
// on the loop.
type Loop struct {
	done   chan struct{}
	logger *slog.Logger

	mu      sync.Mutex
	ready   *sync.Cond
	mailbox []func()
	closed  bool
}

// NewLoop starts a loop. capacity is the number of pending units of work the mailbox has
// room for before it needs to grow.
func NewLoop(capacity int) *Loop {
	if capacity < 1 {
		capacity = 100
	}
	l := &Loop{
		mailbox: make([]func(), 0, capacity),
		done:    make(chan struct{}),
		logger:  slog.Default().With(slogx.LoggerName("hoot.dispatch.loop")),
	}
	l.ready = sync.NewCond(&l.mu)
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		work, ok := l.next()
		if !ok {
			return
		}
		work()
	}
}

// next waits for the oldest pending work. It reports false once the loop is closed and
// the mailbox is drained.
func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for len(l.mailbox) == 0 && !l.closed {
		l.ready.Wait()
	}
	if len(l.mailbox) == 0 {
		return nil, false
	}
	work := l.mailbox[0]
	l.mailbox[0] = nil
	l.mailbox = l.mailbox[1:]
	return work, true
}

// Pending returns the number of units of work waiting to run.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.mailbox)
}

// Post queues work and returns immediately. A panic in work is logged and the loop keeps
// running. Work posted after Close is dropped.
func (l *Loop) Post(work func()) {
	err := l.enqueue(func() {
		defer func() {
			if r := recover(); r != nil {
				l.logger.Error("posted work panicked", slogx.Panic(r), slog.String("stack", string(debug.Stack())))
			}
		}()
		work()
	})
	if err != nil {
		l.logger.Warn("work dropped", slogx.Error(err))
	}
}

// Marshal is Post. It satisfies hoot.Marshaller.
func (l *Loop) Marshal(work func()) {
	l.Post(work)
}

// Send runs work on the loop and waits for it to finish. A panic in work is returned as a
// *PanicError. Send must not be called from work running on the same loop: the loop would
// wait for itself.
func (l *Loop) Send(work func()) error {
	result := make(chan error, 1)
	err := l.enqueue(func() {
		defer func() {
			if r := recover(); r != nil {
				result <- &PanicError{Value: r, Stack: debug.Stack()}
				return
			}
			result <- nil
		}()
		work()
	})
	if err != nil {
		return err
	}
	return <-result
}

func (l *Loop) enqueue(work func()) error {
	if work == nil {
		return fmt.Errorf("work cannot be nil")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	l.mailbox = append(l.mailbox, work)
	l.ready.Signal()
	return nil
}

// Close stops accepting work and waits until the queued work ran or ctx is done.
func (l *Loop) Close(ctx context.Context) error {
	l.mu.Lock()
	l.closed = true
	l.ready.Broadcast()
	l.mu.Unlock()

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("close timeout: %w", ctx.Err())
	}
}
