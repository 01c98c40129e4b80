package par

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/hupe1980/colpar/resource"
	"golang.org/x/sync/errgroup"
)

// Joiner runs two branches of a divide-and-conquer step and returns once
// both have finished. The migrated argument tells a branch whether it runs
// on a different goroutine than the one that called Join.
//
// A panic in either branch is re-raised by Join after both branches finish.
type Joiner interface {
	Join(left, right func(migrated bool))
	Workers() int
}

type serial struct{}

// Serial runs both branches on the calling goroutine, left first.
var Serial Joiner = serial{}

func (serial) Join(left, right func(migrated bool)) {
	left(false)
	right(false)
}

func (serial) Workers() int { return 1 }

type poolOptions struct {
	workers int
	ctrl    *resource.Controller
	logger  *Logger
}

// PoolOption configures a Pool.
type PoolOption func(*poolOptions)

// WithWorkers bounds the number of goroutines running branches, including
// the caller's. Ignored when WithController is given.
func WithWorkers(n int) PoolOption {
	return func(o *poolOptions) {
		o.workers = n
	}
}

// WithController takes worker slots from c.
func WithController(c *resource.Controller) PoolOption {
	return func(o *poolOptions) {
		o.ctrl = c
	}
}

// WithPoolLogger configures the logger that reports panicking branches.
func WithPoolLogger(l *Logger) PoolOption {
	return func(o *poolOptions) {
		o.logger = l
	}
}

// Pool is a Joiner that runs the right branch on a new goroutine whenever a
// worker slot is free, and inline otherwise. It never blocks waiting for a
// slot, so nested joins cannot deadlock.
type Pool struct {
	ctrl   *resource.Controller
	logger *Logger
}

// NewPool creates a Pool. By default it allows runtime.GOMAXPROCS(0) workers.
func NewPool(optFns ...PoolOption) *Pool {
	o := poolOptions{}
	for _, fn := range optFns {
		fn(&o)
	}

	if o.ctrl == nil {
		o.ctrl = resource.NewController(resource.Config{MaxWorkers: int64(o.workers)})
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	return &Pool{ctrl: o.ctrl, logger: o.logger}
}

var defaultPool = sync.OnceValue(func() *Pool { return NewPool() })

// DefaultPool returns the process-wide pool used when no joiner is configured.
func DefaultPool() *Pool {
	return defaultPool()
}

// Workers returns the maximum number of goroutines running branches.
func (p *Pool) Workers() int {
	return p.ctrl.Workers()
}

// Join implements Joiner.
func (p *Pool) Join(left, right func(migrated bool)) {
	if !p.ctrl.TryAcquireWorker() {
		left(false)
		right(false)
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		defer p.ctrl.ReleaseWorker()
		return catch(func() { right(true) })
	})

	errLeft := catch(func() { left(false) })
	errRight := g.Wait()

	if pe := asPanic(errLeft); pe != nil {
		panic(pe.value)
	}
	if pe := asPanic(errRight); pe != nil {
		p.logger.WithWorkers(p.Workers()).LogPanic(pe.value, pe.stack)
		panic(pe.value)
	}
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("par: branch panicked: %v", e.value)
}

func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r, stack: debug.Stack()}
		}
	}()
	fn()
	return nil
}

func asPanic(err error) *panicError {
	var pe *panicError
	if errors.As(err, &pe) {
		return pe
	}
	return nil
}
