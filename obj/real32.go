//go:build !wavefront64

package obj

// Real is the scalar type of coordinates, colors and material factors.
// Build with the wavefront64 tag to switch to float64.
type Real = float32

const realBits = 32

const epsilon = 1.1920929e-07
