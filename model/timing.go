package model

import "go.uber.org/multierr"

// Timing exposes a TimingRecord as whole-millisecond timestamps and the
// phase durations derived from them.
//
// Every base accessor truncates seconds*1000 toward zero, and derived
// durations subtract the truncated values. Both rules are load-bearing:
// 2.512s is 2512ms, 2.5999s is 2599ms, and 2.598s-2.512s is 2598-2512.
type Timing struct {
	record TimingRecord
}

// NewTiming wraps a parsed record.
func NewTiming(r TimingRecord) *Timing {
	return &Timing{record: r}
}

// Record returns the underlying record.
func (t *Timing) Record() TimingRecord {
	return t.record
}

// Validate reports every required label missing from the record.
// Accessors panic on a missing label, so callers validate first.
func (t *Timing) Validate() error {
	var errs error
	for _, label := range RequiredLabels {
		if _, ok := t.record.Get(label); !ok {
			errs = multierr.Append(errs, &MissingPhaseError{Label: label})
		}
	}
	return errs
}

func (t *Timing) ms(label string) int64 {
	v, ok := t.record.Get(label)
	if !ok {
		panic(&MissingPhaseError{Label: label})
	}
	return int64(v * 1000)
}

// ─── Base timestamps (ms since request start) ──────────────────────────────

func (t *Timing) NameLookup() int64    { return t.ms(LabelNameLookup) }
func (t *Timing) Connect() int64       { return t.ms(LabelConnect) }
func (t *Timing) AppConnect() int64    { return t.ms(LabelAppConnect) }
func (t *Timing) PreTransfer() int64   { return t.ms(LabelPreTransfer) }
func (t *Timing) StartTransfer() int64 { return t.ms(LabelStartTransfer) }
func (t *Timing) Total() int64         { return t.ms(LabelTotal) }

// ─── Derived durations (ms) ────────────────────────────────────────────────

// DNS is the name lookup time.
func (t *Timing) DNS() int64 { return t.NameLookup() }

// TCPConnect is connect - namelookup.
func (t *Timing) TCPConnect() int64 { return t.Connect() - t.NameLookup() }

// TLSHandshake is pretransfer - connect.
func (t *Timing) TLSHandshake() int64 { return t.PreTransfer() - t.Connect() }

// ServerProcessing is starttransfer - pretransfer.
func (t *Timing) ServerProcessing() int64 { return t.StartTransfer() - t.PreTransfer() }

// ContentTransfer is total - starttransfer.
func (t *Timing) ContentTransfer() int64 { return t.Total() - t.StartTransfer() }

// Interval is one named derived duration.
type Interval struct {
	Name string
	Ms   int64
}

// Intervals returns the derived durations in diagram order.
func (t *Timing) Intervals() []Interval {
	return []Interval{
		{"dns", t.DNS()},
		{"tcp_connect", t.TCPConnect()},
		{"tls_handshake", t.TLSHandshake()},
		{"server_processing", t.ServerProcessing()},
		{"content_transfer", t.ContentTransfer()},
	}
}

// Negative returns derived durations below zero. They mean the tool reported
// timestamps out of order; they are kept as-is so the anomaly stays visible.
func (t *Timing) Negative() []Interval {
	var out []Interval
	for _, iv := range t.Intervals() {
		if iv.Ms < 0 {
			out = append(out, iv)
		}
	}
	return out
}

// SpeedDownload returns the average download speed in bytes per second.
func (t *Timing) SpeedDownload() (float64, bool) {
	return t.record.Get(LabelSpeedDownload)
}

// SpeedUpload returns the average upload speed in bytes per second.
func (t *Timing) SpeedUpload() (float64, bool) {
	return t.record.Get(LabelSpeedUpload)
}
