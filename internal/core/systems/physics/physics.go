package physics

// Lightweight kinematics built on pkg/vector: point bodies with a radius,
// integrated with explicit Euler steps inside an axis-aligned box.

import (
	"github.com/google/uuid"
	"github.com/zeusync/vecmath/pkg/vector"
)

// Transform provides spatial information.
type Transform interface {
	Position3() vector.Vector3
}

type Transform3D struct{ Pos vector.Vector3 }

func (t Transform3D) Position3() vector.Vector3 { return t.Pos }

// Distance computes the distance between two transforms.
func Distance(a, b Transform) float64 {
	return vector.Distance(a.Position3(), b.Position3())
}

type Body struct {
	ID       uuid.UUID
	Position vector.Vector3
	Velocity vector.Vector3
	Radius   float64
}

func (b Body) Position3() vector.Vector3 { return b.Position }

// Bounce returns velocity after hitting a wall whose normal is parallel to
// normal: the normal component flips, the tangential components are kept.
func Bounce(velocity, normal vector.Vector3) vector.Vector3 {
	// Reflecting across the normal line inverts the tangential part, negating
	// that result restores it and flips the normal part instead.
	return vector.Negate(vector.Reflect(velocity, normal))
}
