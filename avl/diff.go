package avl

import (
	"TreeLab/nodediff"

	"golang.org/x/exp/constraints"
)

// Diff classifies node ids between two states. Key, child links, height
// and balance all count; a parent-only change does not.
func Diff[K constraints.Ordered](old, new State[K]) nodediff.Diff {
	return nodediff.Compute(old.nodes, new.nodes, func(a, b Node[K]) bool {
		return a.Key == b.Key &&
			a.Left == b.Left &&
			a.Right == b.Right &&
			a.Balance == b.Balance &&
			a.Height == b.Height
	})
}
