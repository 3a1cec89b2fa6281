//go:build wavefront64

package obj

// Real is the scalar type of coordinates, colors and material factors.
type Real = float64

const realBits = 64

const epsilon = 2.220446049250313e-16
