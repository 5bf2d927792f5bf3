package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedMetricLine matches lines without a "label:value" shape.
	ErrMalformedMetricLine = errors.New("malformed metric line")

	// ErrMissingRequiredPhase matches a base timestamp absent from a record.
	ErrMissingRequiredPhase = errors.New("missing required phase")
)

// MalformedLineError reports one metric line that has no separator or an
// empty label. Line is 1-based.
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, ErrMalformedMetricLine, e.Text)
}

func (e *MalformedLineError) Unwrap() error {
	return ErrMalformedMetricLine
}

// MissingPhaseError names a required label absent from a TimingRecord.
type MissingPhaseError struct {
	Label string
}

func (e *MissingPhaseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredPhase, e.Label)
}

func (e *MissingPhaseError) Unwrap() error {
	return ErrMissingRequiredPhase
}
