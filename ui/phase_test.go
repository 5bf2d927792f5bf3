package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseSlotID(t *testing.T) {
	want := map[Phase]string{
		DNSLookup:        "a0000",
		TCPConnection:    "a0001",
		SSLHandshake:     "a0002",
		ServerProcessing: "a0003",
		ContentTransfer:  "a0004",
		NameLookup:       "b0000",
		Connect:          "b0001",
		PreTransfer:      "b0002",
		StartTransfer:    "b0003",
		Total:            "b0004",
	}
	for p, id := range want {
		assert.Equal(t, id, p.SlotID(), "SlotID(%s)", p)
	}
	assert.Len(t, Phases, len(want))
	assert.Equal(t, "", Phase(99).SlotID())
}

func TestPhaseRow(t *testing.T) {
	for _, p := range Phases[:5] {
		assert.Equal(t, TopRow, p.Row(), "%s", p)
	}
	for _, p := range Phases[5:] {
		assert.Equal(t, BottomRow, p.Row(), "%s", p)
	}
}

func TestPhaseAlign(t *testing.T) {
	tests := []struct {
		phase Phase
		ms    int64
		want  string
	}{
		{DNSLookup, 100, " 100ms "},
		{NameLookup, 100, "100ms  "},
		{TCPConnection, 5, "  5ms  "},
		{ServerProcessing, 10, " 10ms  "},
		{ContentTransfer, 1000, "1000ms "},
		{SSLHandshake, 12345, "12345ms"},
		{DNSLookup, 123456, "123456ms"},
		{Total, 1000, "1000ms "},
		{Connect, 123456, "123456ms"},
		{TCPConnection, -300, "-300ms "},
		{Connect, -5, "-5ms   "},
	}
	for _, tt := range tests {
		if got := tt.phase.Align(tt.ms); got != tt.want {
			t.Errorf("%s.Align(%d) = %q, want %q", tt.phase, tt.ms, got, tt.want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "SSL Handshake", SSLHandshake.String())
	assert.Equal(t, "starttransfer", StartTransfer.String())
	assert.Equal(t, "Phase(42)", Phase(42).String())
}
