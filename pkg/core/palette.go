package core

// RGB is a color with channels in the 0..1 range.
type RGB struct {
	R, G, B float32
}

// Lighten raises every channel by delta, capped at 1.
func (c RGB) Lighten(delta float32) RGB {
	return RGB{R: min(c.R+delta, 1), G: min(c.G+delta, 1), B: min(c.B+delta, 1)}
}

var palette = [...]RGB{
	Red:    {1.0, 0.8, 0.8},
	Green:  {0.8, 1.0, 0.8},
	Blue:   {0.8, 0.8, 1.0},
	Yellow: {1.0, 1.0, 0.8},
	Orange: {1.0, 0.9, 0.8},
}

// RGB returns the background used for notes tagged with c.
// Unknown colors render as the default color.
func (c Color) RGB() RGB {
	if !c.Valid() {
		return palette[DefaultColor]
	}
	return palette[c]
}

// Interaction is the pointer state of a note button.
type Interaction int

const (
	Idle Interaction = iota
	Hovered
)

// HoverLift is how much each channel brightens under the pointer.
const HoverLift = 0.1

// ButtonRadius is the corner radius of note buttons.
const ButtonRadius = 5.0

// Appearance describes how a note button is drawn.
type Appearance struct {
	Background   RGB
	BorderRadius float32
}

// Style maps a color tag and interaction state to an appearance.
func Style(c Color, i Interaction) Appearance {
	bg := c.RGB()
	if i == Hovered {
		bg = bg.Lighten(HoverLift)
	}
	return Appearance{Background: bg, BorderRadius: ButtonRadius}
}
