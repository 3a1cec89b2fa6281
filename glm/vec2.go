package glm

import "math"

type Vec2[T Numeric] [2]T

// Polar returns the point at the given angle on a circle with the given radius
// around the origin.
func Polar[T float](angle Rad, radius T) Vec2[T] {
	s, c := fastSincos(angle)
	return Vec2[T]{T(c) * radius, T(s) * radius}
}

func (lhs Vec2[T]) Dot(rhs Vec2[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1])
}

// Cross returns the z component of the cross product of both
// vectors extended into 3d space.
func (lhs Vec2[T]) Cross(rhs Vec2[T]) T {
	return lhs[0]*rhs[1] - lhs[1]*rhs[0]
}

func (lhs Vec2[T]) Magnitude() T {
	return T(math.Sqrt(float64(lhs.Dot(lhs))))
}

func (lhs Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{
		lhs[0] * s,
		lhs[1] * s,
	}
}

func (lhs Vec2[T]) Normalize() Vec2[T] {
	return lhs.MulScalar(1 / lhs.Magnitude())
}

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
	}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
	}
}

// Rotate rotates the vector counter clockwise around the origin.
func (lhs Vec2[T]) Rotate(angle Rad) Vec2[T] {
	fs, fc := fastSincos(angle)
	s := float64(fs)
	c := float64(fc)

	x, y := float64(lhs[0]), float64(lhs[1])

	return Vec2[T]{
		T(x*c - y*s),
		T(x*s + y*c),
	}
}

func (lhs Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], z}
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}
