package btree

import (
	"slices"

	"TreeLab/nodediff"

	"golang.org/x/exp/constraints"
)

// Diff classifies node ids between two states by comparing keys only. A
// node whose children changed while its keys stayed put (a split below
// it re-linked a subtree) is reported as unchanged; renderers rely on
// that classification.
func Diff[K constraints.Ordered](old, new State[K]) nodediff.Diff {
	return nodediff.Compute(old.nodes, new.nodes, func(a, b Node[K]) bool {
		return slices.Equal(a.Keys, b.Keys)
	})
}
