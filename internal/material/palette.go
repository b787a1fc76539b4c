package material

import "image/color"

var palette = buildPalette()

// Palette returns display colors indexed by State.
func Palette() []color.RGBA {
	return palette
}

// Color returns the display color for s.
func (s State) Color() color.RGBA {
	if !s.Valid() {
		return palette[Wall]
	}
	return palette[s]
}

func buildPalette() []color.RGBA {
	p := make([]color.RGBA, numStates)
	for i := range p {
		p[i] = toRGBA(colorFor(State(i)))
	}
	return p
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func colorFor(s State) color.NRGBA {
	switch s {
	case Empty:
		return color.NRGBA{R: 100, G: 100, B: 255, A: 255}
	case Dirt:
		return color.NRGBA{R: 150, G: 40, B: 0, A: 255}
	case Water:
		return color.NRGBA{R: 20, G: 60, B: 200, A: 255}
	case Steam:
		return color.NRGBA{R: 210, G: 215, B: 235, A: 255}
	case Wall:
		fallthrough
	default:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	}
}
