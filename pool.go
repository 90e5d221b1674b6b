package result

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// default max num of tasks running at once
var ProcsDefault = 1

// Pool runs [Task]s with a bounded number in flight and collects their
// results.
//
// Don't reuse a Pool after [Pool.Wait], because it will not working
// properly. If you want to reuse it, please recreate it.
type Pool[O, E any] struct {
	g       *errgroup.Group
	ctx     context.Context
	timeout time.Duration

	mu      sync.Mutex
	results []Result[O, E]
}

// NewPool returns a Pool bound to ctx.
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	// at most 4 tasks at once, each capped at 3s
//	p := result.NewPool[int, error](ctx,
//		result.Procs(4),
//		result.TaskTimeout(3*time.Second))
//
//	p.Go(result.TaskFunc(func(ctx context.Context) result.Result[int, error] {
//		// heavy process
//		return result.OkOf[error](123)
//	}))
//
//	ress, err := p.Wait()
func NewPool[O, E any](ctx context.Context, opts ...Option) *Pool[O, E] {
	o := new(option)
	for _, opt := range opts {
		opt(o)
	}
	if o.procs < 1 {
		o.procs = ProcsDefault
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.procs)

	return &Pool[O, E]{
		g:       g,
		ctx:     ctx,
		timeout: o.timeout,
	}
}

// Go submits a task. It blocks while the max num of tasks are already
// running. A task submitted after the pool's context is done is not
// run; [Pool.Wait] then reports a [*ContextDoneError].
func (p *Pool[O, E]) Go(t Task[O, E]) {
	p.g.Go(func() error {
		if t == nil {
			return errors.New("task is nil")
		}

		if err := p.ctx.Err(); err != nil {
			return &ContextDoneError{Err: context.Cause(p.ctx)}
		}

		ctx, cancel := p.taskCtx()
		defer cancel()

		res := t.Run(ctx)

		p.mu.Lock()
		p.results = append(p.results, res)
		p.mu.Unlock()
		return nil
	})
}

func (p *Pool[O, E]) taskCtx() (context.Context, context.CancelFunc) {
	if p.timeout > 0 {
		return context.WithTimeout(p.ctx, p.timeout)
	}
	return context.WithCancel(p.ctx)
}

// Wait blocks until all submitted tasks to done, and returns the
// results of every task that ran, in completion order. The error is
// non-nil when a task was skipped, e.g. [*ContextDoneError] after the
// pool's context was cancelled.
func (p *Pool[O, E]) Wait() ([]Result[O, E], error) {
	err := p.g.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results, err
}

// ContextDoneError is error with [context.Context.Done].
type ContextDoneError struct {
	// Err is the return value of context.Cause(ctx)
	Err error
}

func (e *ContextDoneError) Error() string {
	return fmt.Sprintf("context done: %v", e.Err)
}

// Unwrap returns e.Err that is context.Cause(ctx).
func (e *ContextDoneError) Unwrap() error {
	return e.Err
}
