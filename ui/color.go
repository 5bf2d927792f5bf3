package ui

import "fmt"

// ── ANSI SGR styles ────────────────────────────────────────────────────────

const (
	esc   = "\x1b["
	reset = "\x1b[0m"
)

type styleKind int

const (
	kindNone styleKind = iota
	kindBlue
	kindBold
	kindCyan
	kindGreen
	kindMagenta
	kindRed
	kindUnderline
	kindYellow
	kindGray
)

// Style is a terminal text style: one of the named SGR attributes or a
// level on the 256-color grayscale ramp. The zero Style leaves text as-is.
type Style struct {
	kind  styleKind
	level int
}

var (
	Blue      = Style{kind: kindBlue}
	Bold      = Style{kind: kindBold}
	Cyan      = Style{kind: kindCyan}
	Green     = Style{kind: kindGreen}
	Magenta   = Style{kind: kindMagenta}
	Red       = Style{kind: kindRed}
	Underline = Style{kind: kindUnderline}
	Yellow    = Style{kind: kindYellow}
)

// GrayLevels is the number of steps on the grayscale ramp (colors 232-255).
const GrayLevels = 24

// GrayScale returns grayscale level n, 0 darkest. n is clamped to
// [0, GrayLevels).
func GrayScale(n int) Style {
	if n < 0 {
		n = 0
	}
	if n >= GrayLevels {
		n = GrayLevels - 1
	}
	return Style{kind: kindGray, level: n}
}

// Code returns the SGR parameter string, e.g. "34" or "38;5;248".
func (s Style) Code() string {
	switch s.kind {
	case kindBlue:
		return "34"
	case kindBold:
		return "1"
	case kindCyan:
		return "36"
	case kindGreen:
		return "32"
	case kindMagenta:
		return "35"
	case kindRed:
		return "31"
	case kindUnderline:
		return "4"
	case kindYellow:
		return "33"
	case kindGray:
		return fmt.Sprintf("38;5;%d", 232+s.level)
	}
	return ""
}

// Apply wraps text in the style's escape sequence and a reset.
func (s Style) Apply(text string) string {
	code := s.Code()
	if code == "" {
		return text
	}
	return esc + code + "m" + text + reset
}

// Colorize is Apply in function form.
func Colorize(s Style, text string) string {
	return s.Apply(text)
}
