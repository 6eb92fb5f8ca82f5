package btree

import (
	"TreeLab/arena"

	"github.com/cockroachdb/errors"
)

// Validate checks every B-tree invariant for the state's order: key
// counts, sorted keys, child counts, key ranges, leaf depth, and that
// every node hangs off the root exactly once.
func (s State[K]) Validate() error {
	if s.root == arena.None {
		if len(s.nodes) != 0 {
			return errors.Newf("empty root but %d nodes stored", len(s.nodes))
		}
		return nil
	}
	maxKeys := s.order - 1
	minKeys := (s.order+1)/2 - 1

	seen := make(map[int64]bool, len(s.nodes))
	leafDepth := -1
	var check func(id int64, depth int, lo, hi *K) error
	check = func(id int64, depth int, lo, hi *K) error {
		n, ok := s.nodes[id]
		if !ok {
			return errors.Newf("link to missing node %d", id)
		}
		if seen[id] {
			return errors.Newf("node %d reachable twice", id)
		}
		seen[id] = true

		if len(n.Keys) == 0 || len(n.Keys) > maxKeys {
			return errors.Newf("node %d holds %d keys, want 1..%d", id, len(n.Keys), maxKeys)
		}
		if id != s.root && len(n.Keys) < minKeys {
			return errors.Newf("node %d holds %d keys, want at least %d", id, len(n.Keys), minKeys)
		}
		for i, k := range n.Keys {
			if i > 0 && !(n.Keys[i-1] < k) {
				return errors.Newf("node %d keys not strictly ascending: %v", id, n.Keys)
			}
			if lo != nil && !(*lo < k) {
				return errors.Newf("node %d key %v not above %v", id, k, *lo)
			}
			if hi != nil && !(k < *hi) {
				return errors.Newf("node %d key %v not below %v", id, k, *hi)
			}
		}

		if n.IsLeaf() {
			if leafDepth == -1 {
				leafDepth = depth
			} else if depth != leafDepth {
				return errors.Newf("leaf %d at depth %d, other leaves at %d", id, depth, leafDepth)
			}
			return nil
		}
		if len(n.Children) != len(n.Keys)+1 {
			return errors.Newf("node %d has %d keys and %d children", id, len(n.Keys), len(n.Children))
		}
		for i, c := range n.Children {
			clo, chi := lo, hi
			if i > 0 {
				clo = &n.Keys[i-1]
			}
			if i < len(n.Keys) {
				chi = &n.Keys[i]
			}
			if err := check(c, depth+1, clo, chi); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(s.root, 0, nil, nil); err != nil {
		return err
	}
	if len(seen) != len(s.nodes) {
		return errors.Newf("%d nodes stored, %d reachable from root", len(s.nodes), len(seen))
	}
	return nil
}
