package broadphase

import (
	"cmp"
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Digest hashes every bucket in cell order, entries in stored order. Two grids
// with the same digest hold the same bucket contents.
func (h *SpatialHash) Digest() uint64 {
	keys := make([]CellKey, 0, len(h.buckets))
	for k := range h.buckets {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b CellKey) int {
		if c := cmp.Compare(a.Z, b.Z); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})

	d := xxhash.New()
	var buf [8]byte
	for _, k := range keys {
		binary.LittleEndian.PutUint32(buf[0:], uint32(k.X))
		binary.LittleEndian.PutUint32(buf[4:], uint32(k.Y))
		_, _ = d.Write(buf[:])
		binary.LittleEndian.PutUint32(buf[0:], uint32(k.Z))
		binary.LittleEndian.PutUint32(buf[4:], uint32(len(h.buckets[k])))
		_, _ = d.Write(buf[:])
		for _, id := range h.buckets[k] {
			binary.LittleEndian.PutUint64(buf[:], uint64(id))
			_, _ = d.Write(buf[:])
		}
	}
	return d.Sum64()
}
