package ui

import (
	"fmt"
	"strings"
)

// slotWidth is the fixed width of every time label in the diagram.
// Column positions in the templates depend on it.
const slotWidth = 7

// Row is the diagram row a phase is drawn on.
type Row int

const (
	TopRow    Row = iota // per-phase durations, centered under the headings
	BottomRow            // cumulative timestamps, left-justified after a label
)

// Phase is one slot of the timing diagram.
type Phase int

const (
	DNSLookup Phase = iota
	TCPConnection
	SSLHandshake
	ServerProcessing
	ContentTransfer
	NameLookup
	Connect
	PreTransfer
	StartTransfer
	Total
)

// Phases lists every phase in slot order.
var Phases = []Phase{
	DNSLookup, TCPConnection, SSLHandshake, ServerProcessing, ContentTransfer,
	NameLookup, Connect, PreTransfer, StartTransfer, Total,
}

func (p Phase) String() string {
	switch p {
	case DNSLookup:
		return "DNS Lookup"
	case TCPConnection:
		return "TCP Connection"
	case SSLHandshake:
		return "SSL Handshake"
	case ServerProcessing:
		return "Server Processing"
	case ContentTransfer:
		return "Content Transfer"
	case NameLookup:
		return "namelookup"
	case Connect:
		return "connect"
	case PreTransfer:
		return "pretransfer"
	case StartTransfer:
		return "starttransfer"
	case Total:
		return "total"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// SlotID returns the template placeholder key bound to the phase.
func (p Phase) SlotID() string {
	switch p {
	case DNSLookup:
		return "a0000"
	case TCPConnection:
		return "a0001"
	case SSLHandshake:
		return "a0002"
	case ServerProcessing:
		return "a0003"
	case ContentTransfer:
		return "a0004"
	case NameLookup:
		return "b0000"
	case Connect:
		return "b0001"
	case PreTransfer:
		return "b0002"
	case StartTransfer:
		return "b0003"
	case Total:
		return "b0004"
	}
	return ""
}

// Row reports which diagram row the phase belongs to.
func (p Phase) Row() Row {
	if p >= DNSLookup && p <= ContentTransfer {
		return TopRow
	}
	return BottomRow
}

// Align formats ms as "<ms>ms" padded to the slot width: centered on the top
// row, left-justified on the bottom row. Longer labels are not truncated.
func (p Phase) Align(ms int64) string {
	label := fmt.Sprintf("%dms", ms)
	if p.Row() == TopRow {
		return center(label, slotWidth)
	}
	return fmt.Sprintf("%-*s", slotWidth, label)
}

// center pads s to width with the odd space, if any, on the right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
