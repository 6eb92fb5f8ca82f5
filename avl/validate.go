package avl

import (
	"TreeLab/arena"

	"github.com/cockroachdb/errors"
)

// Validate checks ordering, parent links, stored heights and balance
// factors, and that every node hangs off the root exactly once.
func (s State[K]) Validate() error {
	if s.root == arena.None {
		if len(s.nodes) != 0 {
			return errors.Newf("empty root but %d nodes stored", len(s.nodes))
		}
		return nil
	}
	if r, ok := s.nodes[s.root]; ok && r.Parent != arena.None {
		return errors.Newf("root %d has parent %d", s.root, r.Parent)
	}

	seen := make(map[int64]bool, len(s.nodes))
	var check func(id, parent int64, lo, hi *K) (int, error)
	check = func(id, parent int64, lo, hi *K) (int, error) {
		if id == arena.None {
			return 0, nil
		}
		n, ok := s.nodes[id]
		if !ok {
			return 0, errors.Newf("link to missing node %d", id)
		}
		if seen[id] {
			return 0, errors.Newf("node %d reachable twice", id)
		}
		seen[id] = true
		if n.Parent != parent {
			return 0, errors.Newf("node %d has parent %d, expected %d", id, n.Parent, parent)
		}
		if lo != nil && !(*lo < n.Key) {
			return 0, errors.Newf("node %d key %v not above %v", id, n.Key, *lo)
		}
		if hi != nil && !(n.Key < *hi) {
			return 0, errors.Newf("node %d key %v not below %v", id, n.Key, *hi)
		}
		key := n.Key
		lh, err := check(n.Left, id, lo, &key)
		if err != nil {
			return 0, err
		}
		rh, err := check(n.Right, id, &key, hi)
		if err != nil {
			return 0, err
		}
		h := 1 + max(lh, rh)
		if n.Height != h {
			return 0, errors.Newf("node %d stores height %d, actual %d", id, n.Height, h)
		}
		if n.Balance != lh-rh {
			return 0, errors.Newf("node %d stores balance %d, actual %d", id, n.Balance, lh-rh)
		}
		if n.Balance > 1 || n.Balance < -1 {
			return 0, errors.Newf("node %d out of balance: %d", id, n.Balance)
		}
		return h, nil
	}
	if _, err := check(s.root, arena.None, nil, nil); err != nil {
		return err
	}
	if len(seen) != len(s.nodes) {
		return errors.Newf("%d nodes stored, %d reachable from root", len(s.nodes), len(seen))
	}
	return nil
}
