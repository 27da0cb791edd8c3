package script

import (
	"context"
	"math"
	"sort"

	"github.com/zeusync/vecmath/internal/core/systems/physics"
	"github.com/zeusync/vecmath/pkg/vector"
)

// operation is a mutation applied to the current vector, a query that reads
// it and yields a scalar, or a simulation step that moves it as a body.
type operation struct {
	// needsVector marks ops whose first argument must be a vector.
	needsVector bool
	apply       func(v *vector.Vector3, args []vector.Arg) error
	query       func(v vector.Vector3, args []vector.Arg) float64
	simulate    func(ctx context.Context, sim *simulation, v *vector.Vector3, args []vector.Arg) error
}

var operations = map[string]operation{
	"negate": {apply: func(v *vector.Vector3, _ []vector.Arg) error {
		v.Negate()
		return nil
	}},
	"add": {apply: func(v *vector.Vector3, args []vector.Arg) error {
		v.AddXYZ(vector.Components(args...))
		return nil
	}},
	"subtract": {apply: func(v *vector.Vector3, args []vector.Arg) error {
		v.SubtractXYZ(vector.Components(args...))
		return nil
	}},
	"scale": {apply: func(v *vector.Vector3, args []vector.Arg) error {
		v.ScaleXYZ(vector.Components(args...))
		return nil
	}},
	"multiply": {apply: func(v *vector.Vector3, args []vector.Arg) error {
		v.Multiply(scalarArg(args))
		return nil
	}},
	"divide": {apply: func(v *vector.Vector3, args []vector.Arg) error {
		v.Divide(scalarArg(args))
		return nil
	}},
	"min": {apply: func(v *vector.Vector3, args []vector.Arg) error {
		v.MinXYZ(vector.Components(args...))
		return nil
	}},
	"max": {apply: func(v *vector.Vector3, args []vector.Arg) error {
		v.MaxXYZ(vector.Components(args...))
		return nil
	}},
	"clamp": {apply: func(v *vector.Vector3, args []vector.Arg) error {
		clamped, err := vector.ClampArgs(*v, args...)
		if err != nil {
			return err
		}
		*v = clamped
		return nil
	}},
	"cross": {needsVector: true, apply: func(v *vector.Vector3, args []vector.Arg) error {
		v.Cross(args[0].Vector())
		return nil
	}},
	"reflect": {needsVector: true, apply: func(v *vector.Vector3, args []vector.Arg) error {
		v.Reflect(args[0].Vector())
		return nil
	}},
	"normalize": {apply: func(v *vector.Vector3, _ []vector.Arg) error {
		v.Normalize()
		return nil
	}},
	"bounce": {needsVector: true, apply: func(v *vector.Vector3, args []vector.Arg) error {
		*v = physics.Bounce(*v, args[0].Vector())
		return nil
	}},

	"step": {simulate: func(ctx context.Context, sim *simulation, v *vector.Vector3, args []vector.Arg) error {
		dt, count, err := stepArgs(args)
		if err != nil {
			return err
		}
		return sim.advance(ctx, v, dt, count)
	}},

	"dot": {needsVector: true, query: func(v vector.Vector3, args []vector.Arg) float64 {
		return vector.Dot(v, args[0].Vector())
	}},
	"distance": {needsVector: true, query: func(v vector.Vector3, args []vector.Arg) float64 {
		return vector.Distance(v, args[0].Vector())
	}},
	"sqr_distance": {needsVector: true, query: func(v vector.Vector3, args []vector.Arg) float64 {
		return vector.SqrDistance(v, args[0].Vector())
	}},
	"magnitude": {query: func(v vector.Vector3, _ []vector.Arg) float64 {
		return vector.Magnitude(v)
	}},
	"sqr_magnitude": {query: func(v vector.Vector3, _ []vector.Arg) float64 {
		return vector.SqrMagnitude(v)
	}},
}

// Operations lists the supported operation names in sorted order.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scalarArg returns the first argument as a scalar, NaN when it is missing or
// a vector.
func scalarArg(args []vector.Arg) float64 {
	if len(args) == 0 || args[0].IsVector() {
		return math.NaN()
	}
	return args[0].Scalar()
}
