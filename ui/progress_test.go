package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestProgressRenderTopRow(t *testing.T) {
	s := NewProgress(DNSLookup, 100, Blue).Render()

	assert.Equal(t, "a0000", s.ID)
	assert.Equal(t, "\x1b[34m 100ms \x1b[0m", s.Text)
}

func TestProgressRenderBottomRow(t *testing.T) {
	s := NewProgress(NameLookup, 100, Blue).Render()

	assert.Equal(t, "b0000", s.ID)
	assert.Equal(t, "\x1b[34m100ms  \x1b[0m", s.Text)
}

func TestProgressRenderNegativeIsNotClamped(t *testing.T) {
	s := NewProgress(TCPConnection, -86, Red).Render()

	assert.Equal(t, "a0001", s.ID)
	assert.Equal(t, "\x1b[31m -86ms \x1b[0m", s.Text)
}

func TestProgressRenderKeepsSlotWidth(t *testing.T) {
	for _, p := range Phases {
		for _, ms := range []int64{0, 7, 86, 999, 2512} {
			s := NewProgress(p, ms, GrayScale(10)).Render()
			if w := lipgloss.Width(s.Text); w != slotWidth {
				t.Errorf("%s at %dms: visible width %d, want %d (%q)", p, ms, w, slotWidth, s.Text)
			}
		}
	}
}
