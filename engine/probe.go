package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ftahirops/httpstat/collector"
	"github.com/ftahirops/httpstat/model"
)

// ProbeState represents the lifecycle of a probe.
type ProbeState int

const (
	ProbeIdle    ProbeState = 0
	ProbeRunning ProbeState = 1
	ProbeDone    ProbeState = 2
)

func (s ProbeState) String() string {
	switch s {
	case ProbeIdle:
		return "idle"
	case ProbeRunning:
		return "running"
	case ProbeDone:
		return "done"
	}
	return "unknown"
}

// Result is everything one probe produced.
type Result struct {
	Exchange *model.Exchange
	Timing   *model.Timing
	Response *model.Response // nil when the header dump was unreadable
}

// Probe runs one transfer and turns its output into a validated Timing.
type Probe struct {
	transfer collector.Transfer
	log      zerolog.Logger

	mu    sync.RWMutex
	state ProbeState
}

// NewProbe creates an idle probe.
func NewProbe(t collector.Transfer, log zerolog.Logger) *Probe {
	return &Probe{transfer: t, log: log}
}

// State returns the current lifecycle state.
func (p *Probe) State() ProbeState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *Probe) setState(s ProbeState) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// Run fetches rawURL and parses the result. On error any temp files the
// transfer created are already removed.
func (p *Probe) Run(ctx context.Context, rawURL string) (*Result, error) {
	p.setState(ProbeRunning)
	defer p.setState(ProbeDone)

	p.log.Debug().Str("transfer", p.transfer.Name()).Str("url", rawURL).Msg("fetch")
	ex, err := p.transfer.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	res, err := p.analyze(ex)
	if err != nil {
		if cerr := collector.Cleanup(ex, false); cerr != nil {
			p.log.Warn().Err(cerr).Msg("temp file cleanup failed")
		}
		return nil, err
	}
	return res, nil
}

func (p *Probe) analyze(ex *model.Exchange) (*Result, error) {
	rec, err := model.ParseMetrics(ex.Metrics)
	if err != nil {
		return nil, fmt.Errorf("parse metrics: %w", err)
	}
	for _, label := range rec.Defaulted() {
		p.log.Debug().Str("label", label).Msg("unparsable metric value, using 0")
	}

	t := model.NewTiming(rec)
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("incomplete metrics: %w", err)
	}
	for _, iv := range t.Negative() {
		p.log.Warn().Str("phase", iv.Name).Int64("ms", iv.Ms).Msg("negative duration")
	}

	res := &Result{Exchange: ex, Timing: t}
	if ex.HeaderPath != "" {
		resp, err := collector.ReadHeaders(ex.HeaderPath)
		if err != nil {
			p.log.Warn().Err(err).Msg("response headers unavailable")
		} else {
			res.Response = resp
		}
	}
	return res, nil
}
