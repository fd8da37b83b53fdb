// Package constraints declares the generic type constraints shared by the
// math and ordering operators, built on top of golang.org/x/exp/constraints
// rather than re-declaring the integer/float type sets by hand.
package constraints

import "golang.org/x/exp/constraints"

// Numeric matches any built-in numeric type usable with arithmetic
// operators.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Ordered matches any type supporting the < <= > >= comparison operators.
type Ordered interface {
	constraints.Ordered
}
