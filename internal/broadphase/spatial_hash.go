package broadphase

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"spheremove/internal/engine"
	"spheremove/internal/physics"
)

var ErrInvalidCellSize = errors.New("broadphase: cell size must be greater than zero")

// CellKey addresses one cube of the uniform grid.
type CellKey struct {
	X, Y, Z int32
}

// maxCellCoord bounds cell indices on every axis. It keeps the float to int
// conversion defined and leaves room for the inclusive loops in boxToCells.
const maxCellCoord = 1 << 30

// cellCoord maps v to its cell index. Coordinates past the grid edge share
// the outermost cell, and NaN maps to cell 0.
func cellCoord(v, invCellSize float32) int32 {
	c := math.Floor(float64(v * invCellSize))
	switch {
	case math.IsNaN(c):
		return 0
	case c > maxCellCoord:
		return maxCellCoord
	case c < -maxCellCoord:
		return -maxCellCoord
	}
	return int32(c)
}

func finiteBox(b physics.AABB) bool {
	for _, v := range [6]float32{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// SpatialHash is a uniform grid broadphase. Each cell keeps the entities whose
// AABB touches it, and each entity keeps the list of cells it was added to so
// removal and updates never scan the whole grid.
//
// It is not safe for concurrent use.
type SpatialHash struct {
	cellSize    float32
	invCellSize float32

	buckets map[CellKey][]engine.EntityID
	cells   map[engine.EntityID][]CellKey
	proxies map[engine.EntityID]Proxy
}

var _ Broadphase = (*SpatialHash)(nil)

func New(cellSize float32) (*SpatialHash, error) {
	if !(cellSize > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCellSize, cellSize)
	}
	return &SpatialHash{
		cellSize:    cellSize,
		invCellSize: 1 / cellSize,
		buckets:     make(map[CellKey][]engine.EntityID),
		cells:       make(map[engine.EntityID][]CellKey),
		proxies:     make(map[engine.EntityID]Proxy),
	}, nil
}

func (h *SpatialHash) CellSize() float32 {
	return h.cellSize
}

// boxToCells appends the inclusive cell range covering box, X fastest.
// A box with a NaN or infinite coordinate covers no cells.
func (h *SpatialHash) boxToCells(box physics.AABB, out []CellKey) []CellKey {
	out = out[:0]
	if !finiteBox(box) {
		return out
	}

	x0, y0, z0 := cellCoord(box.Min.X, h.invCellSize), cellCoord(box.Min.Y, h.invCellSize), cellCoord(box.Min.Z, h.invCellSize)
	x1, y1, z1 := cellCoord(box.Max.X, h.invCellSize), cellCoord(box.Max.Y, h.invCellSize), cellCoord(box.Max.Z, h.invCellSize)

	for z := z0; z <= z1; z++ {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				out = append(out, CellKey{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}

// Insert registers proxy in every cell its AABB covers. A known entity is
// removed first so it never appears twice in a bucket. A proxy whose AABB is
// not finite is stored but occupies no cells until a later Update fixes it.
func (h *SpatialHash) Insert(proxy Proxy) {
	if _, ok := h.proxies[proxy.Entity]; ok {
		h.Remove(proxy.Entity)
	}

	cells := h.boxToCells(proxy.AABB, nil)
	for _, c := range cells {
		h.buckets[c] = append(h.buckets[c], proxy.Entity)
	}
	h.cells[proxy.Entity] = cells
	h.proxies[proxy.Entity] = proxy
}

// Remove erases entity from every bucket it occupies. Unknown entities are ignored.
func (h *SpatialHash) Remove(entity engine.EntityID) {
	for _, c := range h.cells[entity] {
		h.removeFromBucket(c, entity)
	}
	delete(h.cells, entity)
	delete(h.proxies, entity)
}

func (h *SpatialHash) removeFromBucket(c CellKey, entity engine.EntityID) {
	bucket, ok := h.buckets[c]
	if !ok {
		return
	}
	bucket = slices.DeleteFunc(bucket, func(id engine.EntityID) bool { return id == entity })
	if len(bucket) == 0 {
		delete(h.buckets, c)
		return
	}
	h.buckets[c] = bucket
}

// Update moves entity to box. Unknown entities are inserted with default
// filter bits. When the covered cells do not change only the stored AABB is
// replaced and no bucket is touched.
func (h *SpatialHash) Update(entity engine.EntityID, box physics.AABB) {
	proxy, ok := h.proxies[entity]
	if !ok {
		h.Insert(NewProxy(entity, box, false))
		return
	}

	oldCells := h.cells[entity]
	newCells := h.boxToCells(box, nil)

	oldSet := make(map[CellKey]struct{}, len(oldCells))
	for _, c := range oldCells {
		oldSet[c] = struct{}{}
	}
	newSet := make(map[CellKey]struct{}, len(newCells))
	for _, c := range newCells {
		newSet[c] = struct{}{}
	}

	changed := len(oldSet) != len(newSet)
	if !changed {
		for c := range newSet {
			if _, ok := oldSet[c]; !ok {
				changed = true
				break
			}
		}
	}

	proxy.AABB = box
	h.proxies[entity] = proxy
	if !changed {
		return
	}

	for _, c := range oldCells {
		if _, keep := newSet[c]; !keep {
			h.removeFromBucket(c, entity)
		}
	}
	for _, c := range newCells {
		if _, had := oldSet[c]; !had {
			h.buckets[c] = append(h.buckets[c], entity)
		}
	}
	h.cells[entity] = newCells
}

// QueryAABB collects the entities registered in the cells covering area.
// Callers still need a narrowphase test: a hit only means the cells overlap.
func (h *SpatialHash) QueryAABB(area physics.AABB, filter *QueryFilter, out []engine.EntityID) []engine.EntityID {
	out = out[:0]
	for _, c := range h.boxToCells(area, nil) {
		bucket, ok := h.buckets[c]
		if !ok {
			continue
		}
		if filter == nil {
			out = append(out, bucket...)
			continue
		}
		for _, id := range bucket {
			if p, ok := h.proxies[id]; ok && filter.Accepts(p) {
				out = append(out, id)
			}
		}
	}

	slices.Sort(out)
	return slices.Compact(out)
}

// Proxy returns the stored proxy for entity.
func (h *SpatialHash) Proxy(entity engine.EntityID) (Proxy, bool) {
	p, ok := h.proxies[entity]
	return p, ok
}

// Cells returns a copy of the cells entity currently occupies.
func (h *SpatialHash) Cells(entity engine.EntityID) []CellKey {
	return slices.Clone(h.cells[entity])
}

// Len is the number of registered proxies.
func (h *SpatialHash) Len() int {
	return len(h.proxies)
}

// CellCount is the number of non-empty buckets.
func (h *SpatialHash) CellCount() int {
	return len(h.buckets)
}
