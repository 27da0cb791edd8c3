package script

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/zeusync/vecmath/internal/core/observability/log"
	"github.com/zeusync/vecmath/internal/core/systems/physics"
	"github.com/zeusync/vecmath/pkg/vector"
)

// World turns the script's current vector into the position of a body inside
// a physics box. Unset fields fall back to physics.DefaultWorldConfig.
type World struct {
	Min         *Value   `yaml:"min,omitempty"`
	Max         *Value   `yaml:"max,omitempty"`
	Gravity     *Value   `yaml:"gravity,omitempty"`
	Velocity    *Value   `yaml:"velocity,omitempty"`
	Restitution *float64 `yaml:"restitution,omitempty"`
	CellSize    *float64 `yaml:"cell_size,omitempty"`
}

func (w *World) validate() error {
	for _, v := range []*Value{w.Min, w.Max, w.Gravity, w.Velocity} {
		if v != nil && !v.IsVector() {
			return ErrWorldNotVector
		}
	}
	if w.Restitution != nil && !(*w.Restitution >= 0) {
		return ErrInvalidRestitution
	}
	return nil
}

func (w *World) config() physics.WorldConfig {
	cfg := physics.DefaultWorldConfig()
	if w.Min != nil {
		cfg.Min = w.Min.Arg().Vector()
	}
	if w.Max != nil {
		cfg.Max = w.Max.Arg().Vector()
	}
	if w.Gravity != nil {
		cfg.Gravity = w.Gravity.Arg().Vector()
	}
	if w.Restitution != nil {
		cfg.Restitution = *w.Restitution
	}
	if w.CellSize != nil {
		cfg.CellSize = *w.CellSize
	}
	return cfg
}

// simulation is the per-run state of a script with a world section.
type simulation struct {
	world *physics.World
	body  uuid.UUID
}

func newSimulation(w *World, start vector.Vector3, logger log.Log) (*simulation, error) {
	world, err := physics.NewWorld(w.config(), logger)
	if err != nil {
		return nil, err
	}
	velocity := vector.Zero()
	if w.Velocity != nil {
		velocity = w.Velocity.Arg().Vector()
	}
	body := world.Spawn(start, velocity, 0)
	return &simulation{world: world, body: body.ID}, nil
}

// advance moves the body to pos, steps the world count times and writes the
// resulting position back into pos.
func (s *simulation) advance(ctx context.Context, pos *vector.Vector3, dt float64, count int) error {
	if _, err := s.world.Place(s.body, *pos); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.world.Step(dt)
	}
	b, err := s.world.Get(s.body)
	if err != nil {
		return err
	}
	*pos = b.Position
	return nil
}

// stepArgs reads the dt and optional repeat count of a step operation.
func stepArgs(args []vector.Arg) (float64, int, error) {
	if len(args) == 0 || len(args) > 2 || args[0].IsVector() {
		return 0, 0, ErrInvalidStep
	}
	dt := args[0].Scalar()
	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0, 0, fmt.Errorf("%w: dt %g", ErrInvalidStep, dt)
	}
	if len(args) == 1 {
		return dt, 1, nil
	}
	n := args[1]
	if n.IsVector() || n.Scalar() < 1 || n.Scalar() > math.MaxInt32 || n.Scalar() != math.Trunc(n.Scalar()) {
		return 0, 0, fmt.Errorf("%w: count must be a positive integer", ErrInvalidStep)
	}
	return dt, int(n.Scalar()), nil
}
