package glm

import "golang.org/x/exp/constraints"

type float interface {
	~float32 | ~float64
}

// Numeric is the set of element types a vector can hold.
type Numeric interface {
	constraints.Integer | constraints.Float
}
