// Package vector provides a three-component float64 vector with two call styles:
// pointer-receiver methods that mutate the receiver and return it for chaining,
// and package-level functions that take values and return new vectors.
//
// Both styles share one implementation, so for equal inputs they produce
// bit-identical results. Degenerate input (normalizing a zero vector, reflecting
// across a zero axis, dividing by zero) is not guarded: it yields Inf/NaN
// components following IEEE-754 arithmetic.
package vector

import (
	"math"
	"strconv"
)

// Epsilon is the default per-axis tolerance used by Equals.
const Epsilon = 1e-6

// Vector3 is a plain 3D vector value.
//
// Methods with pointer receivers mutate the vector in place. A single Vector3
// must not be mutated from several goroutines at once; there is no locking.
type Vector3 struct {
	X, Y, Z float64
}

// New creates a vector from up to three components. Missing components are 0,
// anything past the third is ignored.
func New(components ...float64) Vector3 {
	var v Vector3
	switch {
	case len(components) >= 3:
		v.Z = components[2]
		fallthrough
	case len(components) == 2:
		v.Y = components[1]
		fallthrough
	case len(components) == 1:
		v.X = components[0]
	}
	return v
}

// Named constants. Every call returns a fresh copy, so there is no shared
// instance a caller could mutate.

func UnitX() Vector3    { return Vector3{1, 0, 0} }
func UnitY() Vector3    { return Vector3{0, 1, 0} }
func UnitZ() Vector3    { return Vector3{0, 0, 1} }
func MinusX() Vector3   { return Vector3{-1, 0, 0} }
func MinusY() Vector3   { return Vector3{0, -1, 0} }
func MinusZ() Vector3   { return Vector3{0, 0, -1} }
func One() Vector3      { return Vector3{1, 1, 1} }
func Zero() Vector3     { return Vector3{} }
func MinusOne() Vector3 { return Vector3{-1, -1, -1} }

// Named returns the constant registered under name (unit_x, minus_one, ...).
func Named(name string) (Vector3, bool) {
	ctor, ok := named[name]
	if !ok {
		return Vector3{}, false
	}
	return ctor(), true
}

var named = map[string]func() Vector3{
	"unit_x":    UnitX,
	"unit_y":    UnitY,
	"unit_z":    UnitZ,
	"minus_x":   MinusX,
	"minus_y":   MinusY,
	"minus_z":   MinusZ,
	"one":       One,
	"zero":      Zero,
	"minus_one": MinusOne,
}

// String formats the vector as "x, y, z" using the shortest float representation.
func (v Vector3) String() string {
	buf := make([]byte, 0, 48)
	buf = strconv.AppendFloat(buf, v.X, 'g', -1, 64)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, v.Y, 'g', -1, 64)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, v.Z, 'g', -1, 64)
	return string(buf)
}

// Normalized returns v divided by its magnitude without modifying v.
func (v Vector3) Normalized() Vector3 {
	return Normalize(v)
}

// Equals reports whether every axis of a and b differs by at most epsilon
// (Epsilon when omitted). The tolerance is per axis, not Euclidean.
func Equals(a, b Vector3, epsilon ...float64) bool {
	eps := Epsilon
	if len(epsilon) > 0 {
		eps = epsilon[0]
	}
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}
