package vector

import "math"

// The functions below mirror the mutating methods. Each works on a copy of its
// first operand, so no argument is ever modified.

func Clone(v Vector3) Vector3 { return v }

func Negate(v Vector3) Vector3 { return *v.Negate() }

func Add(a, b Vector3) Vector3 { return *a.Add(b) }

func AddXYZ(v Vector3, x, y, z float64) Vector3 { return *v.AddXYZ(x, y, z) }

func Subtract(a, b Vector3) Vector3 { return *a.Subtract(b) }

func SubtractXYZ(v Vector3, x, y, z float64) Vector3 { return *v.SubtractXYZ(x, y, z) }

func Multiply(v Vector3, s float64) Vector3 { return *v.Multiply(s) }

func Divide(v Vector3, s float64) Vector3 { return *v.Divide(s) }

func Scale(a, b Vector3) Vector3 { return *a.Scale(b) }

func ScaleXYZ(v Vector3, x, y, z float64) Vector3 { return *v.ScaleXYZ(x, y, z) }

// Dot returns a·b.
func Dot(a, b Vector3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b. Cross(a, b) == -Cross(b, a).
func Cross(a, b Vector3) Vector3 { return *a.Cross(b) }

// Reflect returns v reflected across the line defined by axis.
func Reflect(v, axis Vector3) Vector3 { return *v.Reflect(axis) }

// Normalize returns v scaled to unit length.
func Normalize(v Vector3) Vector3 { return *v.Normalize() }

// Magnitude returns the Euclidean length of v.
func Magnitude(v Vector3) float64 {
	return math.Sqrt(SqrMagnitude(v))
}

// SqrMagnitude returns the squared length of v, for comparisons that don't need
// the square root.
func SqrMagnitude(v Vector3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func Distance(a, b Vector3) float64 {
	return Magnitude(Subtract(a, b))
}

func SqrDistance(a, b Vector3) float64 {
	return SqrMagnitude(Subtract(a, b))
}

func Min(a, b Vector3) Vector3 { return *a.Min(b) }

func MinXYZ(v Vector3, x, y, z float64) Vector3 { return *v.MinXYZ(x, y, z) }

func Max(a, b Vector3) Vector3 { return *a.Max(b) }

func MaxXYZ(v Vector3, x, y, z float64) Vector3 { return *v.MaxXYZ(x, y, z) }

// Clamp bounds v component-wise to [lower, upper]. When a lower bound exceeds
// its upper bound the lower bound wins.
func Clamp(v, lower, upper Vector3) Vector3 { return *v.Clamp(lower, upper) }

func ClampXYZ(v Vector3, minX, minY, minZ, maxX, maxY, maxZ float64) Vector3 {
	return *v.ClampXYZ(minX, minY, minZ, maxX, maxY, maxZ)
}
