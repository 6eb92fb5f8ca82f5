// Structure of the B-tree builder
/*
Builder (order m)
 ├── arena : id -> *Node (live, mutable)
 └── root  : id of the root node, arena.None when empty

Node
 ├── Keys      sorted ascending, at most m-1
 └── Children  child ids, empty for leaves, len(Keys)+1 otherwise

- a child's keys lie strictly between the two parent keys around it
- all leaves sit at the same depth
- every node but the root keeps at least ceil(m/2)-1 keys
- an overflowing node splits at len/2: the left half keeps the node's id,
  the median moves up, the right half gets a new id
*/
package btree

import (
	"TreeLab/arena"

	"golang.org/x/exp/constraints"
)

const MinOrder = 3

type Node[K constraints.Ordered] struct {
	ID       int64
	Keys     []K
	Children []int64
}

func (n Node[K]) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n Node[K]) clone() Node[K] {
	return Node[K]{
		ID:       n.ID,
		Keys:     append([]K(nil), n.Keys...),
		Children: append([]int64(nil), n.Children...),
	}
}

// Builder owns a mutable B-tree. It is not safe for concurrent use.
type Builder[K constraints.Ordered] struct {
	order   int
	maxKeys int
	nodes   *arena.Arena[Node[K]]
	root    int64
}

// State is an immutable snapshot of a B-tree.
type State[K constraints.Ordered] struct {
	order int
	nodes map[int64]Node[K]
	root  int64
}
