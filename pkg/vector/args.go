package vector

import (
	"errors"
	"math"
)

// ErrMixedBounds is returned by ClampArgs when the lower bound is a vector but
// the upper bound is not.
var ErrMixedBounds = errors.New("clamp bounds must both be vectors or all scalars")

// Arg is one operand of a shape-dispatched call: either a whole vector or a
// single scalar. It backs callers whose argument shapes are only known at run
// time, such as decoded scripts.
type Arg struct {
	vec      Vector3
	scalar   float64
	isVector bool
}

// V wraps a vector operand.
func V(v Vector3) Arg { return Arg{vec: v, isVector: true} }

// S wraps a scalar operand.
func S(f float64) Arg { return Arg{scalar: f} }

func (a Arg) IsVector() bool { return a.isVector }

func (a Arg) Vector() Vector3 { return a.vec }

func (a Arg) Scalar() float64 { return a.scalar }

// Components resolves args into three values. A leading vector supplies all
// three; otherwise the first three args are scalars and a missing one, or a
// vector in scalar position, becomes NaN.
func Components(args ...Arg) (x, y, z float64) {
	if len(args) > 0 && args[0].isVector {
		return args[0].vec.X, args[0].vec.Y, args[0].vec.Z
	}
	return scalarAt(args, 0), scalarAt(args, 1), scalarAt(args, 2)
}

// ClampArgs clamps v either by two vectors (lower, upper) or by six scalars
// (minX, minY, minZ, maxX, maxY, maxZ). A vector lower bound followed by
// anything other than a vector is rejected with ErrMixedBounds.
func ClampArgs(v Vector3, args ...Arg) (Vector3, error) {
	if len(args) > 0 && args[0].isVector {
		if len(args) < 2 || !args[1].isVector {
			return Vector3{}, ErrMixedBounds
		}
		return Clamp(v, args[0].vec, args[1].vec), nil
	}
	return ClampXYZ(v,
		scalarAt(args, 0), scalarAt(args, 1), scalarAt(args, 2),
		scalarAt(args, 3), scalarAt(args, 4), scalarAt(args, 5),
	), nil
}

func scalarAt(args []Arg, i int) float64 {
	if i >= len(args) || args[i].isVector {
		return math.NaN()
	}
	return args[i].scalar
}
