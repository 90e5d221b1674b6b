package result

import "context"

// Task is a unit of work executed by [Pool]. Run reports its outcome
// as a [Result] rather than a bare (value, error) pair, so the failure
// payload can be any type.
type Task[O, E any] interface {
	Run(context.Context) Result[O, E]
}

type taskFunc[O, E any] struct {
	fn func(context.Context) Result[O, E]
}

func (t *taskFunc[O, E]) Run(ctx context.Context) Result[O, E] {
	return t.fn(ctx)
}

// TaskFunc converts func(context.Context) Result[O, E] to [Task].
func TaskFunc[O, E any](fn func(context.Context) Result[O, E]) Task[O, E] {
	return &taskFunc[O, E]{
		fn: fn,
	}
}
