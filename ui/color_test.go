package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleApply(t *testing.T) {
	tests := []struct {
		style Style
		text  string
		want  string
	}{
		{Blue, "blue", "\x1b[34mblue\x1b[0m"},
		{Bold, "bold", "\x1b[1mbold\x1b[0m"},
		{Cyan, "cyan", "\x1b[36mcyan\x1b[0m"},
		{Green, "green", "\x1b[32mgreen\x1b[0m"},
		{Magenta, "magenta", "\x1b[35mmagenta\x1b[0m"},
		{Red, "red", "\x1b[31mred\x1b[0m"},
		{Underline, "underline", "\x1b[4munderline\x1b[0m"},
		{Yellow, "yellow", "\x1b[33myellow\x1b[0m"},
		{GrayScale(16), "gray", "\x1b[38;5;248mgray\x1b[0m"},
	}
	for _, tt := range tests {
		if got := tt.style.Apply(tt.text); got != tt.want {
			t.Errorf("Apply(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestColorize(t *testing.T) {
	assert.Equal(t, "\x1b[34mx\x1b[0m", Colorize(Blue, "x"))
	assert.Equal(t, Blue.Apply("x"), Colorize(Blue, "x"))
}

func TestGrayScaleRamp(t *testing.T) {
	assert.Equal(t, "38;5;232", GrayScale(0).Code())
	assert.Equal(t, "38;5;248", GrayScale(16).Code())
	assert.Equal(t, "38;5;255", GrayScale(GrayLevels-1).Code())

	// out of range levels clamp to the ends of the ramp
	assert.Equal(t, "38;5;232", GrayScale(-4).Code())
	assert.Equal(t, "38;5;255", GrayScale(100).Code())
}

func TestZeroStyleIsPlain(t *testing.T) {
	var s Style
	assert.Equal(t, "", s.Code())
	assert.Equal(t, "plain", s.Apply("plain"))
}

func TestStyleIsComparable(t *testing.T) {
	assert.Equal(t, GrayScale(3), GrayScale(3))
	assert.NotEqual(t, GrayScale(3), GrayScale(4))
	assert.NotEqual(t, Blue, Cyan)
}
