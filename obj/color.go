package obj

import "github.com/oliverbestmann/wavefront/glm"

var ColorWhite = Gray(1)
var ColorBlack = Gray(0)

// Color is a linear rgb color as found in material libraries.
type Color struct {
	R, G, B Real
}

func RGB(r, g, b Real) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns a color with all components set to the same value.
func Gray(value Real) Color {
	return Color{R: value, G: value, B: value}
}

func (c Color) Vec() glm.Vec3[Real] {
	return glm.Vec3[Real]{c.R, c.G, c.B}
}

func (c Color) Components() (r, g, b Real) {
	return c.R, c.G, c.B
}
