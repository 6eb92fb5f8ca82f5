// Package nodediff classifies node ids between two snapshots of the same tree.
//
// Given the node maps of an old and a new snapshot, every id of
// old ∪ new lands in exactly one of four sets:
//
//	New        only in new
//	Removed    only in old
//	Modified   in both, nodes differ
//	Unchanged  in both, nodes equal
//
// What "differ" means is decided by the caller's comparison func, so each
// tree kind can choose which fields a renderer cares about.
package nodediff

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Set is a read-only set of node ids. Node ids are small, dense and
// positive, so a bitset indexed by id is enough.
type Set struct {
	bits *bitset.BitSet
}

func newSet() Set {
	return Set{bits: bitset.New(0)}
}

func (s Set) add(id int64) {
	s.bits.Set(uint(id))
}

func (s Set) Contains(id int64) bool {
	if s.bits == nil || id < 0 {
		return false
	}
	return s.bits.Test(uint(id))
}

func (s Set) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// IDs returns the members in ascending order, nil when empty.
func (s Set) IDs() []int64 {
	if s.Len() == 0 {
		return nil
	}
	out := make([]int64, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int64(i))
	}
	return out
}

// Overlaps reports whether s and o share any id.
func (s Set) Overlaps(o Set) bool {
	if s.bits == nil || o.bits == nil {
		return false
	}
	return s.bits.IntersectionCardinality(o.bits) > 0
}

func (s Set) String() string {
	return fmt.Sprint(s.IDs())
}

type Diff struct {
	New       Set
	Removed   Set
	Modified  Set
	Unchanged Set
}

// Compute diffs two id-keyed node maps. same reports whether two versions
// of one node count as unchanged.
func Compute[N any](old, new map[int64]N, same func(a, b N) bool) Diff {
	d := Diff{
		New:       newSet(),
		Removed:   newSet(),
		Modified:  newSet(),
		Unchanged: newSet(),
	}
	for id, o := range old {
		n, ok := new[id]
		switch {
		case !ok:
			d.Removed.add(id)
		case same(o, n):
			d.Unchanged.add(id)
		default:
			d.Modified.add(id)
		}
	}
	for id := range new {
		if _, ok := old[id]; !ok {
			d.New.add(id)
		}
	}
	return d
}

// Changed reports whether anything was added, removed or modified.
func (d Diff) Changed() bool {
	return d.New.Len()+d.Removed.Len()+d.Modified.Len() > 0
}

// Len is the number of ids covered by the diff, i.e. |old ∪ new|.
func (d Diff) Len() int {
	return d.New.Len() + d.Removed.Len() + d.Modified.Len() + d.Unchanged.Len()
}

func (d Diff) String() string {
	return fmt.Sprintf("new=%v removed=%v modified=%v unchanged=%v",
		d.New, d.Removed, d.Modified, d.Unchanged)
}
