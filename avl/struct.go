// Structure of the AVL builder
/*
Builder
 ├── arena        : id -> *Node (live, mutable)
 ├── root         : id of the root node, arena.None when empty
 └── lastRotation : first rotation of the most recent insert/delete

Node
 ├── ID, Key
 ├── Left/Right/Parent  ids, arena.None when absent (Parent is a back link only)
 ├── Height             leaf = 1
 └── Balance            Height(Left) - Height(Right), in [-1, 1] between operations
*/
package avl

import (
	"TreeLab/arena"

	"golang.org/x/exp/constraints"
)

type Node[K constraints.Ordered] struct {
	ID      int64
	Key     K
	Left    int64
	Right   int64
	Parent  int64
	Height  int
	Balance int
}

func (n Node[K]) IsLeaf() bool {
	return n.Left == arena.None && n.Right == arena.None
}

type RotationKind string

const (
	RotationLL RotationKind = "LL" // single right rotation
	RotationRR RotationKind = "RR" // single left rotation
	RotationLR RotationKind = "LR" // left on the child, then right on the pivot
	RotationRL RotationKind = "RL" // right on the child, then left on the pivot
)

// Rotation describes a rebalancing step. Pivot is the unbalanced node,
// Child its heavier child and Grandchild the child's inner child for the
// double rotations (arena.None otherwise). Ids refer to the state before
// the rotation.
type Rotation struct {
	Kind       RotationKind
	Pivot      int64
	Child      int64
	Grandchild int64
}

// Builder owns a mutable AVL tree. It is not safe for concurrent use.
type Builder[K constraints.Ordered] struct {
	nodes        *arena.Arena[Node[K]]
	root         int64
	lastRotation *Rotation
}

// State is an immutable snapshot of an AVL tree.
type State[K constraints.Ordered] struct {
	nodes map[int64]Node[K]
	root  int64
}
