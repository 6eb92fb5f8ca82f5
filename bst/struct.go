// Structure of the BST builder
/*
Builder
 ├── arena : id -> *Node (live, mutable)
 └── root  : id of the root node, arena.None when empty

Node
 ├── ID          assigned once, never reused
 ├── Key
 └── Left/Right  child ids, arena.None when absent

- every key in Left's subtree < Key < every key in Right's subtree
- keys are unique; inserting an existing key is a no-op
- State is a detached copy of the arena, never mutated after creation
*/
package bst

import (
	"TreeLab/arena"

	"golang.org/x/exp/constraints"
)

type Node[K constraints.Ordered] struct {
	ID    int64
	Key   K
	Left  int64
	Right int64
}

func (n Node[K]) IsLeaf() bool {
	return n.Left == arena.None && n.Right == arena.None
}

// Builder owns a mutable BST. It is not safe for concurrent use.
type Builder[K constraints.Ordered] struct {
	nodes *arena.Arena[Node[K]]
	root  int64
}

// State is an immutable snapshot of a BST.
type State[K constraints.Ordered] struct {
	nodes map[int64]Node[K]
	root  int64
}
