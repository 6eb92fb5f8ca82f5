package avl

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

// Height of the tree, 0 when empty.
func (s State[K]) Height() int {
	if n, ok := s.nodes[s.root]; ok {
		return n.Height
	}
	return 0
}

func (s State[K]) Node(id int64) (Node[K], bool) {
	n, ok := s.nodes[id]
	return n, ok
}

func (s State[K]) IDs() []int64 {
	ids := make([]int64, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

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

func (s State[K]) Fingerprint() uint64 {
	d := xxhash.New()
	buf := binary.LittleEndian.AppendUint64(nil, uint64(s.root))
	for _, id := range s.IDs() {
		n := s.nodes[id]
		for _, v := range []int64{n.ID, n.Left, n.Right, n.Parent, int64(n.Height), int64(n.Balance)} {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
		}
		buf = fmt.Append(buf, n.Key, "|")
		d.Write(buf)
		buf = buf[:0]
	}
	d.Write(buf)
	return d.Sum64()
}
