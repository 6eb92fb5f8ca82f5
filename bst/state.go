package bst

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

// Node returns a copy of the node stored under id.
func (s State[K]) Node(id int64) (Node[K], bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// IDs returns every node id in ascending order.
func (s State[K]) IDs() []int64 {
	ids := make([]int64, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// InOrder returns the keys in ascending order.
func (s State[K]) InOrder() []K {
	keys := make([]K, 0, len(s.nodes))
	var walk func(id int64)
	walk = func(id int64) {
		n, ok := s.nodes[id]
		if !ok {
			return
		}
		walk(n.Left)
		keys = append(keys, n.Key)
		walk(n.Right)
	}
	walk(s.root)
	return keys
}

// Keys maps a path of ids to the keys held by those nodes.
func (s State[K]) Keys(path []int64) []K {
	keys := make([]K, 0, len(path))
	for _, id := range path {
		if n, ok := s.nodes[id]; ok {
			keys = append(keys, n.Key)
		}
	}
	return keys
}

// Equal reports whether both states hold the same nodes under the same ids.
func (s State[K]) Equal(o State[K]) bool {
	if s.root != o.root || len(s.nodes) != len(o.nodes) {
		return false
	}
	for id, n := range s.nodes {
		if m, ok := o.nodes[id]; !ok || m != n {
			return false
		}
	}
	return true
}

// Fingerprint hashes the whole state. Equal states hash equally.
func (s State[K]) Fingerprint() uint64 {
	d := xxhash.New()
	buf := binary.LittleEndian.AppendUint64(nil, uint64(s.root))
	for _, id := range s.IDs() {
		n := s.nodes[id]
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.ID))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.Left))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n.Right))
		buf = fmt.Append(buf, n.Key, "|")
		d.Write(buf)
		buf = buf[:0]
	}
	d.Write(buf)
	return d.Sum64()
}
