package bst

import (
	"TreeLab/nodediff"

	"golang.org/x/exp/constraints"
)

// Diff classifies node ids between two states. A node counts as modified
// only when its key changed, which is what a two-children delete does to
// the node it keeps.
func Diff[K constraints.Ordered](old, new State[K]) nodediff.Diff {
	return nodediff.Compute(old.nodes, new.nodes, func(a, b Node[K]) bool {
		return a.Key == b.Key
	})
}
