package physics

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/vecmath/internal/core/observability/log"
	"github.com/zeusync/vecmath/pkg/vector"
)

func newWorld(t *testing.T, mutate func(*WorldConfig)) *World {
	t.Helper()
	cfg := DefaultWorldConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := NewWorld(cfg, log.NewNop())
	require.NoError(t, err)
	return w
}

func TestBounce(t *testing.T) {
	v := vector.New(1, -2, 3)
	assert.True(t, vector.Equals(vector.New(1, 2, 3), Bounce(v, vector.UnitY())))
	assert.True(t, vector.Equals(vector.New(-1, -2, 3), Bounce(v, vector.New(5, 0, 0))))
}

func TestDistance(t *testing.T) {
	a := Transform3D{Pos: vector.Zero()}
	b := Body{Position: vector.New(3, 4, 0)}
	assert.Equal(t, 5.0, Distance(a, b))
}

func TestNewWorldRejectsInvertedBounds(t *testing.T) {
	cfg := DefaultWorldConfig()
	cfg.Min, cfg.Max = cfg.Max, cfg.Min
	_, err := NewWorld(cfg, log.NewNop())
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestSpawnClampsIntoBox(t *testing.T) {
	w := newWorld(t, nil)
	b := w.Spawn(vector.New(5, 0.5, -3), vector.Zero(), 0.1)
	assert.Equal(t, vector.New(1, 0.5, -1), b.Position)

	got, err := w.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestStepFallsAndBounces(t *testing.T) {
	w := newWorld(t, func(c *WorldConfig) { c.Gravity = vector.New(0, -10, 0) })
	b := w.Spawn(vector.New(0, -0.95, 0), vector.New(0.1, 0, 0), 0.05)

	w.Step(0.1)

	got, err := w.Get(b.ID)
	require.NoError(t, err)
	// v = (0.1, -1, 0), p = (0.01, -1.05, 0) crosses the floor
	assert.InDelta(t, -1.0, got.Position.Y, 1e-12)
	assert.InDelta(t, 0.01, got.Position.X, 1e-12)
	assert.InDelta(t, 1.0, got.Velocity.Y, 1e-12)
	assert.InDelta(t, 0.1, got.Velocity.X, 1e-12)
}

func TestStepRestitution(t *testing.T) {
	w := newWorld(t, func(c *WorldConfig) {
		c.Gravity = vector.Zero()
		c.Restitution = 0.5
	})
	b := w.Spawn(vector.New(0.9, 0, 0), vector.New(2, 0, 0), 0)
	w.Step(0.1)

	got, err := w.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Position.X)
	assert.InDelta(t, -1.0, got.Velocity.X, 1e-12)
}

func TestWorldNearAndRemove(t *testing.T) {
	w := newWorld(t, func(c *WorldConfig) { c.Gravity = vector.Zero() })
	a := w.Spawn(vector.New(0, 0, 0), vector.Zero(), 0.1)
	b := w.Spawn(vector.New(0.15, 0, 0), vector.Zero(), 0.1)
	far := w.Spawn(vector.New(0.9, 0.9, 0.9), vector.Zero(), 0.1)

	near := w.Near(vector.Zero(), 0.2)
	ids := []uuid.UUID{}
	for _, n := range near {
		ids = append(ids, n.ID)
	}
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, ids)
	assert.True(t, Colliding(a, b))
	assert.False(t, Colliding(a, far))

	require.NoError(t, w.Remove(b.ID))
	assert.ErrorIs(t, w.Remove(b.ID), ErrBodyNotFound)
	assert.Len(t, w.Near(vector.Zero(), 0.2), 1)
	assert.Len(t, w.Bodies(), 2)
}

func TestWorldConcurrentAccess(t *testing.T) {
	w := newWorld(t, nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				w.Spawn(vector.New(0, 0, 0), vector.UnitX(), 0.1)
				w.Step(0.01)
				_ = w.Near(vector.Zero(), 1)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, w.Bodies(), 160)
	for _, b := range w.Bodies() {
		assert.True(t, vector.Equals(b.Position, vector.Clamp(b.Position, vector.MinusOne(), vector.One()), 0))
	}
}

func TestGrid(t *testing.T) {
	g := NewGrid(1)
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	g.Insert(ids[0], vector.New(0.5, 0.5, 0.5))
	g.Insert(ids[1], vector.New(-0.5, 0.5, 0.5))
	g.Insert(ids[2], vector.New(10, 10, 10))

	assert.ElementsMatch(t, ids[:2], g.Near(vector.Zero(), 1))
	assert.ElementsMatch(t, ids[2:], g.Near(vector.New(10, 10, 9), 1))
	assert.Empty(t, g.Near(vector.New(5, 5, 5), 1))
	assert.Nil(t, g.Near(vector.Zero(), -1))

	g.Insert(ids[2], vector.Zero())
	assert.Equal(t, 3, g.Len())
	assert.Len(t, g.Near(vector.Zero(), 1), 3)

	assert.True(t, g.Remove(ids[0]))
	assert.False(t, g.Remove(ids[0]))
	assert.ElementsMatch(t, []uuid.UUID{ids[1], ids[2]}, g.Near(vector.Zero(), 1))
}

func TestGridNearUsesCellsForSmallQueries(t *testing.T) {
	g := NewGrid(1)
	ids := make(map[vector.Vector3]uuid.UUID)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				p := vector.New(float64(x), float64(y), float64(z))
				ids[p] = uuid.New()
				g.Insert(ids[p], p)
			}
		}
	}

	want := []uuid.UUID{ids[vector.New(1, 1, 1)]}
	for _, axis := range []vector.Vector3{vector.UnitX(), vector.UnitY(), vector.UnitZ()} {
		want = append(want, ids[vector.Add(vector.One(), axis)], ids[vector.Subtract(vector.One(), axis)])
	}
	assert.ElementsMatch(t, want, g.Near(vector.One(), 1))
}

func TestGridNearLargeRadius(t *testing.T) {
	g := NewGrid(0.5)
	id := uuid.New()
	g.Insert(id, vector.Zero())

	done := make(chan []uuid.UUID, 1)
	go func() { done <- g.Near(vector.Zero(), 1e4) }()
	select {
	case got := <-done:
		assert.Equal(t, []uuid.UUID{id}, got)
	case <-time.After(time.Second):
		t.Fatal("Near did not return for a large radius")
	}

	assert.Equal(t, []uuid.UUID{id}, g.Near(vector.New(1, 2, 3), math.Inf(1)))
	assert.Equal(t, []uuid.UUID{id}, g.Near(vector.New(1e300, 0, 0), 2e300))
}

func TestGridNearRejectsNonFinite(t *testing.T) {
	g := NewGrid(1)
	g.Insert(uuid.New(), vector.Zero())

	assert.Nil(t, g.Near(vector.Zero(), math.NaN()))
	assert.Nil(t, g.Near(vector.New(math.NaN(), 0, 0), 1))
	assert.Nil(t, g.Near(vector.New(0, math.Inf(-1), 0), 1))
	assert.Nil(t, g.Near(vector.New(0, 0, math.Inf(1)), math.Inf(1)))
}

func TestWorldPlace(t *testing.T) {
	w := newWorld(t, func(c *WorldConfig) { c.Gravity = vector.Zero() })
	b := w.Spawn(vector.Zero(), vector.UnitX(), 0.1)

	moved, err := w.Place(b.ID, vector.New(0.5, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, vector.New(0.5, 1, 0), moved.Position)
	assert.Equal(t, vector.UnitX(), moved.Velocity)
	assert.Empty(t, w.Near(vector.Zero(), 0.2))
	assert.Len(t, w.Near(vector.New(0.5, 1, 0), 0.1), 1)

	_, err = w.Place(uuid.New(), vector.Zero())
	assert.ErrorIs(t, err, ErrBodyNotFound)
}
