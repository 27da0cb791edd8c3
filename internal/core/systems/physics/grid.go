package physics

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/zeusync/vecmath/pkg/vector"
)

type gridEntry struct {
	id  uuid.UUID
	pos vector.Vector3
}

// Grid is a spatial hash over cubic cells. Cell coordinates are hashed with
// xxhash, so unrelated cells can share a bucket; queries filter by distance.
// Grid is not safe for concurrent use.
type Grid struct {
	cellSize float64
	cells    map[uint64][]gridEntry
	index    map[uuid.UUID]uint64
}

func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[uint64][]gridEntry),
		index:    make(map[uuid.UUID]uint64),
	}
}

func (g *Grid) Len() int { return len(g.index) }

// Insert adds id at pos, replacing any previous position.
func (g *Grid) Insert(id uuid.UUID, pos vector.Vector3) {
	g.Remove(id)
	key := cellKey(g.cell(pos))
	g.cells[key] = append(g.cells[key], gridEntry{id: id, pos: pos})
	g.index[id] = key
}

func (g *Grid) Remove(id uuid.UUID) bool {
	key, ok := g.index[id]
	if !ok {
		return false
	}
	delete(g.index, id)

	bucket := g.cells[key]
	for i, e := range bucket {
		if e.id == id {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			break
		}
	}
	if len(bucket) == 0 {
		delete(g.cells, key)
	} else {
		g.cells[key] = bucket
	}
	return true
}

// Near returns the ids within radius of center, inclusive. A NaN or infinite
// center, or a NaN or negative radius, matches nothing.
func (g *Grid) Near(center vector.Vector3, radius float64) []uuid.UUID {
	if !(radius >= 0) || !finite(center) {
		return nil
	}
	r2 := radius * radius

	// Visiting more cells than there are entries costs more than a full scan.
	if g.span(center, radius) > float64(len(g.index)) {
		var out []uuid.UUID
		for _, bucket := range g.cells {
			for _, e := range bucket {
				if vector.SqrDistance(e.pos, center) <= r2 {
					out = append(out, e.id)
				}
			}
		}
		return out
	}

	lo := g.cell(vector.SubtractXYZ(center, radius, radius, radius))
	hi := g.cell(vector.AddXYZ(center, radius, radius, radius))

	seen := make(map[uint64]struct{})
	var out []uuid.UUID
	for x := lo[0]; x <= hi[0]; x++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				key := cellKey([3]int64{x, y, z})
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				for _, e := range g.cells[key] {
					if vector.SqrDistance(e.pos, center) <= r2 {
						out = append(out, e.id)
					}
				}
			}
		}
	}
	return out
}

// span is the number of cells a query box of the given radius covers. It is
// computed in floating point so a huge radius yields +Inf instead of an
// overflowed cell index; boxes reaching past the int64 cell range count as
// infinite too.
func (g *Grid) span(center vector.Vector3, radius float64) float64 {
	axis := func(c float64) float64 {
		lo, hi := math.Floor((c-radius)/g.cellSize), math.Floor((c+radius)/g.cellSize)
		if lo < -maxCell || hi > maxCell {
			return math.Inf(1)
		}
		return hi - lo + 1
	}
	return axis(center.X) * axis(center.Y) * axis(center.Z)
}

const maxCell = 1 << 62

func finite(v vector.Vector3) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (g *Grid) cell(p vector.Vector3) [3]int64 {
	return [3]int64{
		int64(math.Floor(p.X / g.cellSize)),
		int64(math.Floor(p.Y / g.cellSize)),
		int64(math.Floor(p.Z / g.cellSize)),
	}
}

func cellKey(c [3]int64) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(c[0]))
	binary.LittleEndian.PutUint64(buf[8:], uint64(c[1]))
	binary.LittleEndian.PutUint64(buf[16:], uint64(c[2]))
	return xxhash.Sum64(buf[:])
}
