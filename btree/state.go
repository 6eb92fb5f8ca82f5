package btree

import (
	"encoding/binary"
	"fmt"
	"slices"

	"TreeLab/arena"

	"github.com/cespare/xxhash/v2"
)

func (s State[K]) Root() int64 {
	return s.root
}

func (s State[K]) Empty() bool {
	return s.root == arena.None
}

func (s State[K]) Len() int {
	return len(s.nodes)
}

func (s State[K]) Order() int {
	return s.order
}

// Node returns a copy of the node stored under id. The slices are fresh.
func (s State[K]) Node(id int64) (Node[K], bool) {
	n, ok := s.nodes[id]
	if !ok {
		return Node[K]{}, false
	}
	return n.clone(), true
}

func (s State[K]) IDs() []int64 {
	ids := make([]int64, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Depth is the number of levels, 0 when empty.
func (s State[K]) Depth() int {
	depth := 0
	for id := s.root; id != arena.None; depth++ {
		n := s.nodes[id]
		if n.IsLeaf() {
			return depth + 1
		}
		id = n.Children[0]
	}
	return depth
}

// InOrder returns every key in ascending order.
func (s State[K]) InOrder() []K {
	var keys []K
	var walk func(id int64)
	walk = func(id int64) {
		n, ok := s.nodes[id]
		if !ok {
			return
		}
		for i, k := range n.Keys {
			if !n.IsLeaf() {
				walk(n.Children[i])
			}
			keys = append(keys, k)
		}
		if !n.IsLeaf() {
			walk(n.Children[len(n.Children)-1])
		}
	}
	walk(s.root)
	return keys
}

// Keys returns the keys of the node stored under id.
func (s State[K]) Keys(id int64) []K {
	return append([]K(nil), s.nodes[id].Keys...)
}

func (s State[K]) Equal(o State[K]) bool {
	if s.root != o.root || s.order != o.order || len(s.nodes) != len(o.nodes) {
		return false
	}
	for id, n := range s.nodes {
		m, ok := o.nodes[id]
		if !ok || !slices.Equal(n.Keys, m.Keys) || !slices.Equal(n.Children, m.Children) {
			return false
		}
	}
	return true
}

func (s State[K]) Fingerprint() uint64 {
	d := xxhash.New()
	buf := binary.LittleEndian.AppendUint64(nil, uint64(s.root))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.order))
	for _, id := range s.IDs() {
		n := s.nodes[id]
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.ID))
		buf = fmt.Append(buf, n.Keys, "|")
		for _, c := range n.Children {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(c))
		}
		d.Write(buf)
		buf = buf[:0]
	}
	d.Write(buf)
	return d.Sum64()
}
