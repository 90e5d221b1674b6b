package result

import (
	"runtime"
	"time"
)

// option is option for [NewPool].
type option struct {
	procs   int
	timeout time.Duration
}

// Option is option for [NewPool].
type Option func(*option)

// Procs specifies max num of tasks running at once.
func Procs(n int) Option {
	return func(o *option) {
		o.procs = n
	}
}

// ProcsNumCPU sets [runtime.NumCPU] to [Procs].
func ProcsNumCPU() Option {
	return Procs(runtime.NumCPU())
}

// TaskTimeout specifies timeout of each [Task].
//
// If 0 or less is specified, no timeout is set.
func TaskTimeout(d time.Duration) Option {
	return func(o *option) {
		o.timeout = d
	}
}
