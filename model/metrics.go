package model

import (
	"sort"
	"strings"

	"github.com/ftahirops/httpstat/util"
	"go.uber.org/multierr"
)

// Metric labels reported by the transfer tool, one "label:value" per line.
const (
	LabelNameLookup    = "time_namelookup"
	LabelConnect       = "time_connect"
	LabelAppConnect    = "time_appconnect"
	LabelPreTransfer   = "time_pretransfer"
	LabelStartTransfer = "time_starttransfer"
	LabelTotal         = "time_total"
	LabelSpeedDownload = "speed_download"
	LabelSpeedUpload   = "speed_upload"
)

// RequiredLabels lists the base timestamps every record must carry.
var RequiredLabels = []string{
	LabelNameLookup,
	LabelConnect,
	LabelAppConnect,
	LabelPreTransfer,
	LabelStartTransfer,
	LabelTotal,
}

// OptionalLabels lists metrics that are reported but not required.
var OptionalLabels = []string{
	LabelSpeedDownload,
	LabelSpeedUpload,
}

// TimingRecord maps metric labels to float seconds (or bytes per second for
// the speed metrics). It is immutable once built.
type TimingRecord struct {
	values    map[string]float64
	defaulted []string
}

// NewTimingRecord builds a record from a copy of values.
func NewTimingRecord(values map[string]float64) TimingRecord {
	m := make(map[string]float64, len(values))
	for k, v := range values {
		m[k] = v
	}
	return TimingRecord{values: m}
}

// Get returns the value stored for label.
func (r TimingRecord) Get(label string) (float64, bool) {
	v, ok := r.values[label]
	return v, ok
}

// Len returns the number of labels in the record.
func (r TimingRecord) Len() int {
	return len(r.values)
}

// Labels returns the record's labels in sorted order.
func (r TimingRecord) Labels() []string {
	labels := make([]string, 0, len(r.values))
	for k := range r.values {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

// Defaulted returns labels whose value failed to parse and was stored as 0.
func (r TimingRecord) Defaulted() []string {
	return append([]string(nil), r.defaulted...)
}

// ParseMetrics parses a newline-delimited block of "label:value" lines.
//
// Each line is split at its first colon. Blank lines (including the one left
// by a final newline) are skipped. A value that is not a finite number is
// stored as 0 and listed by Defaulted. A line with no colon or an empty label
// is a *MalformedLineError; every such line in the block is reported and the
// parse fails.
func ParseMetrics(block string) (TimingRecord, error) {
	rec := TimingRecord{values: make(map[string]float64)}
	var errs error

	for i, line := range util.SplitLines(block) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, raw, ok := util.SplitKeyValue(line, ":")
		if !ok || key == "" {
			errs = multierr.Append(errs, &MalformedLineError{Line: i + 1, Text: line})
			continue
		}
		v, ok := util.ParseFiniteFloat(raw)
		if !ok {
			rec.defaulted = append(rec.defaulted, key)
		}
		rec.values[key] = v
	}

	if errs != nil {
		return TimingRecord{}, errs
	}
	return rec, nil
}
