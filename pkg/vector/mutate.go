package vector

import "math"

// Clone returns an independent copy of v.
func (v *Vector3) Clone() *Vector3 {
	c := *v
	return &c
}

// Negate flips the sign of every component.
func (v *Vector3) Negate() *Vector3 {
	v.X, v.Y, v.Z = -v.X, -v.Y, -v.Z
	return v
}

func (v *Vector3) Add(o Vector3) *Vector3 {
	return v.AddXYZ(o.X, o.Y, o.Z)
}

func (v *Vector3) AddXYZ(x, y, z float64) *Vector3 {
	v.X += x
	v.Y += y
	v.Z += z
	return v
}

func (v *Vector3) Subtract(o Vector3) *Vector3 {
	return v.SubtractXYZ(o.X, o.Y, o.Z)
}

func (v *Vector3) SubtractXYZ(x, y, z float64) *Vector3 {
	v.X -= x
	v.Y -= y
	v.Z -= z
	return v
}

// Multiply scales every component by s.
func (v *Vector3) Multiply(s float64) *Vector3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// Divide divides every component by s. A zero s yields Inf or NaN.
func (v *Vector3) Divide(s float64) *Vector3 {
	v.X /= s
	v.Y /= s
	v.Z /= s
	return v
}

// Scale multiplies component-wise by o.
func (v *Vector3) Scale(o Vector3) *Vector3 {
	return v.ScaleXYZ(o.X, o.Y, o.Z)
}

func (v *Vector3) ScaleXYZ(x, y, z float64) *Vector3 {
	v.X *= x
	v.Y *= y
	v.Z *= z
	return v
}

// Dot returns the dot product without modifying v.
func (v *Vector3) Dot(o Vector3) float64 {
	return Dot(*v, o)
}

// Cross replaces v with v × o.
func (v *Vector3) Cross(o Vector3) *Vector3 {
	v.X, v.Y, v.Z = v.Y*o.Z-v.Z*o.Y,
		v.Z*o.X-v.X*o.Z,
		v.X*o.Y-v.Y*o.X
	return v
}

// Reflect replaces v with its reflection across the line through axis: the
// component along axis is kept and the perpendicular component is inverted.
// A zero axis produces NaN components.
func (v *Vector3) Reflect(axis Vector3) *Vector3 {
	n := axis
	n.Normalize()

	parallel := n
	parallel.Multiply(Dot(*v, n))

	perpendicular := *v
	perpendicular.Subtract(parallel)

	*v = parallel
	return v.Subtract(perpendicular)
}

// Normalize divides v by its own magnitude. A zero vector becomes NaN.
func (v *Vector3) Normalize() *Vector3 {
	return v.Divide(Magnitude(*v))
}

// MinXYZ keeps the component-wise minimum of v and (x, y, z).
func (v *Vector3) MinXYZ(x, y, z float64) *Vector3 {
	v.X = math.Min(v.X, x)
	v.Y = math.Min(v.Y, y)
	v.Z = math.Min(v.Z, z)
	return v
}

func (v *Vector3) Min(o Vector3) *Vector3 {
	return v.MinXYZ(o.X, o.Y, o.Z)
}

// MaxXYZ keeps the component-wise maximum of v and (x, y, z).
func (v *Vector3) MaxXYZ(x, y, z float64) *Vector3 {
	v.X = math.Max(v.X, x)
	v.Y = math.Max(v.Y, y)
	v.Z = math.Max(v.Z, z)
	return v
}

func (v *Vector3) Max(o Vector3) *Vector3 {
	return v.MaxXYZ(o.X, o.Y, o.Z)
}

// ClampXYZ bounds each component by max(min(value, upper), lower).
func (v *Vector3) ClampXYZ(minX, minY, minZ, maxX, maxY, maxZ float64) *Vector3 {
	return v.MinXYZ(maxX, maxY, maxZ).MaxXYZ(minX, minY, minZ)
}

func (v *Vector3) Clamp(lower, upper Vector3) *Vector3 {
	return v.ClampXYZ(lower.X, lower.Y, lower.Z, upper.X, upper.Y, upper.Z)
}
