package kuwahara

import (
	"fmt"

	"github.com/gogpu/kuwahara/internal/filter"
	"github.com/gogpu/kuwahara/internal/parallel"
)

// Method selects how window statistics are gathered. Every method produces
// bit-identical output; they differ only in speed.
type Method uint8

const (
	// MethodSliding slides running column sums across each row of windows,
	// costing O(1) amortized per window. This is the default.
	MethodSliding Method = Method(filter.MethodSliding)

	// MethodDirect reads every pixel of every window, costing
	// O((radius+1)²) per window.
	MethodDirect Method = Method(filter.MethodDirect)
)

// String returns the method name.
func (m Method) String() string {
	return filter.Method(m).String()
}

// ParseMethod converts "sliding" or "direct" to a Method.
func ParseMethod(s string) (Method, error) {
	m, err := filter.ParseMethod(s)
	if err != nil {
		return 0, fmt.Errorf("kuwahara: unknown method %q", s)
	}
	return Method(m), nil
}

// Option configures a Filter.
//
// Example:
//
//	// Sequential, sliding windows (the defaults)
//	err := kuwahara.Apply(pm, 7)
//
//	// Use every CPU
//	err := kuwahara.Apply(pm, 7, kuwahara.WithWorkers(0))
type Option func(*options)

// options holds optional configuration for a Filter.
type options struct {
	workers int
	method  Method
}

// defaultOptions returns the default filter options.
func defaultOptions() options {
	return options{
		workers: 1,
		method:  MethodSliding,
	}
}

// WithWorkers sets the number of goroutines used by each pass.
// 1 runs both passes on the calling goroutine; 0 or a negative value uses
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMethod selects how window statistics are gathered.
func WithMethod(m Method) Option {
	return func(o *options) {
		o.method = m
	}
}

// runner returns the Runner for one invocation, the number of workers it
// uses, and a function that releases it.
func (o options) runner() (filter.Runner, int, func()) {
	if o.workers == 1 {
		return filter.Sequential{}, 1, func() {}
	}
	pool := parallel.NewWorkerPool(o.workers)
	return pool, pool.Workers(), pool.Close
}
