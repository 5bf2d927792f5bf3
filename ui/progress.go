package ui

// Slot is a rendered (slot id, text) pair ready for a Template.
type Slot struct {
	ID   string
	Text string
}

// Progress is the elapsed time of one phase and the style to draw it in.
type Progress struct {
	Phase Phase
	Ms    int64
	Style Style
}

// NewProgress returns a Progress for phase.
func NewProgress(phase Phase, ms int64, style Style) Progress {
	return Progress{Phase: phase, Ms: ms, Style: style}
}

// Render aligns and colors the elapsed time. Negative values render as
// "-Nms" so out-of-order timestamps stay visible.
func (p Progress) Render() Slot {
	return Slot{
		ID:   p.Phase.SlotID(),
		Text: p.Style.Apply(p.Phase.Align(p.Ms)),
	}
}
