package bst

import (
	"TreeLab/arena"

	"github.com/cockroachdb/errors"
)

// Validate checks the BST ordering and that every stored node hangs off
// the root exactly once.
func (s State[K]) Validate() error {
	if s.root == arena.None {
		if len(s.nodes) != 0 {
			return errors.Newf("empty root but %d nodes stored", len(s.nodes))
		}
		return nil
	}

	seen := make(map[int64]bool, len(s.nodes))
	var check func(id int64, lo, hi *K) error
	check = func(id int64, lo, hi *K) error {
		if id == arena.None {
			return nil
		}
		n, ok := s.nodes[id]
		if !ok {
			return errors.Newf("link to missing node %d", id)
		}
		if seen[id] {
			return errors.Newf("node %d reachable twice", id)
		}
		seen[id] = true
		if n.ID != id {
			return errors.Newf("node stored under %d carries id %d", id, n.ID)
		}
		if lo != nil && !(*lo < n.Key) {
			return errors.Newf("node %d key %v not above %v", id, n.Key, *lo)
		}
		if hi != nil && !(n.Key < *hi) {
			return errors.Newf("node %d key %v not below %v", id, n.Key, *hi)
		}
		key := n.Key
		if err := check(n.Left, lo, &key); err != nil {
			return err
		}
		return check(n.Right, &key, hi)
	}
	if err := check(s.root, nil, nil); err != nil {
		return err
	}
	if len(seen) != len(s.nodes) {
		return errors.Newf("%d nodes stored, %d reachable from root", len(s.nodes), len(seen))
	}
	return nil
}
