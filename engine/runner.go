package engine

import "context"

// Runner abstracts whatever produces a Result for a URL, so the progress
// view can be driven without a real transfer.
type Runner interface {
	Run(ctx context.Context, rawURL string) (*Result, error)
}

// RunnerFunc adapts a plain function to Runner.
type RunnerFunc func(ctx context.Context, rawURL string) (*Result, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, rawURL string) (*Result, error) {
	return f(ctx, rawURL)
}

var _ Runner = (*Probe)(nil)
