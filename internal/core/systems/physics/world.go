package physics

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/zeusync/vecmath/internal/core/observability/log"
	"github.com/zeusync/vecmath/pkg/vector"
)

var (
	ErrBodyNotFound  = errors.New("body not found")
	ErrInvalidBounds = errors.New("world bounds must have min <= max on every axis")
)

// WorldConfig describes the simulation box.
type WorldConfig struct {
	Min, Max vector.Vector3
	Gravity  vector.Vector3
	// Restitution scales a body's velocity on every wall hit, 1 is lossless.
	Restitution float64
	// CellSize of the neighbour grid.
	CellSize float64
}

func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Min:         vector.MinusOne(),
		Max:         vector.One(),
		Gravity:     vector.New(0, -9.81, 0),
		Restitution: 1,
		CellSize:    0.5,
	}
}

// World owns a set of bodies. All methods are safe for concurrent use.
type World struct {
	mu     sync.RWMutex
	cfg    WorldConfig
	bodies map[uuid.UUID]*Body
	grid   *Grid
	logger log.Log
}

func NewWorld(cfg WorldConfig, logger log.Log) (*World, error) {
	if cfg.Min.X > cfg.Max.X || cfg.Min.Y > cfg.Max.Y || cfg.Min.Z > cfg.Max.Z {
		return nil, ErrInvalidBounds
	}
	return &World{
		cfg:    cfg,
		bodies: make(map[uuid.UUID]*Body),
		grid:   NewGrid(cfg.CellSize),
		logger: logger,
	}, nil
}

// Spawn adds a body, clamping its position into the world box.
func (w *World) Spawn(position, velocity vector.Vector3, radius float64) Body {
	b := &Body{
		ID:       uuid.New(),
		Position: vector.Clamp(position, w.cfg.Min, w.cfg.Max),
		Velocity: velocity,
		Radius:   radius,
	}

	w.mu.Lock()
	w.bodies[b.ID] = b
	w.grid.Insert(b.ID, b.Position)
	w.mu.Unlock()

	w.logger.Debug("body spawned", log.String("id", b.ID.String()), log.Stringer("position", b.Position))
	return *b
}

// Place moves an existing body to position, clamped into the world box. Its
// velocity is kept.
func (w *World) Place(id uuid.UUID, position vector.Vector3) (Body, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, ok := w.bodies[id]
	if !ok {
		return Body{}, ErrBodyNotFound
	}
	b.Position = vector.Clamp(position, w.cfg.Min, w.cfg.Max)
	w.grid.Insert(id, b.Position)
	return *b, nil
}

func (w *World) Remove(id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.bodies[id]; !ok {
		return ErrBodyNotFound
	}
	delete(w.bodies, id)
	w.grid.Remove(id)
	return nil
}

// Get returns a copy of the body.
func (w *World) Get(id uuid.UUID) (Body, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	b, ok := w.bodies[id]
	if !ok {
		return Body{}, ErrBodyNotFound
	}
	return *b, nil
}

// Bodies returns copies of all bodies in no particular order.
func (w *World) Bodies() []Body {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		out = append(out, *b)
	}
	return out
}

// Step advances every body by dt seconds. A body leaving the box is clamped
// back onto the wall and bounces off it.
func (w *World) Step(dt float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, b := range w.bodies {
		b.Velocity.Add(vector.Multiply(w.cfg.Gravity, dt))
		b.Position.Add(vector.Multiply(b.Velocity, dt))

		for _, hit := range w.walls(b.Position) {
			b.Velocity = Bounce(b.Velocity, hit)
			b.Velocity.Multiply(w.cfg.Restitution)
		}
		b.Position.Clamp(w.cfg.Min, w.cfg.Max)

		w.grid.Insert(b.ID, b.Position)
	}
}

// walls returns the normals of the walls p lies beyond.
func (w *World) walls(p vector.Vector3) []vector.Vector3 {
	var hits []vector.Vector3
	if p.X < w.cfg.Min.X || p.X > w.cfg.Max.X {
		hits = append(hits, vector.UnitX())
	}
	if p.Y < w.cfg.Min.Y || p.Y > w.cfg.Max.Y {
		hits = append(hits, vector.UnitY())
	}
	if p.Z < w.cfg.Min.Z || p.Z > w.cfg.Max.Z {
		hits = append(hits, vector.UnitZ())
	}
	return hits
}

// Near returns the bodies whose centre is within radius of p.
func (w *World) Near(p vector.Vector3, radius float64) []Body {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ids := w.grid.Near(p, radius)
	out := make([]Body, 0, len(ids))
	for _, id := range ids {
		out = append(out, *w.bodies[id])
	}
	return out
}

// Colliding reports whether the spheres of two bodies overlap.
func Colliding(a, b Body) bool {
	r := a.Radius + b.Radius
	return vector.SqrDistance(a.Position, b.Position) <= r*r
}
