package bst

import (
	"TreeLab/arena"

	"golang.org/x/exp/constraints"
)

func NewBuilder[K constraints.Ordered]() *Builder[K] {
	return &Builder[K]{
		nodes: arena.New[Node[K]](),
		root:  arena.None,
	}
}

// Reset empties the tree. Ids handed out before stay retired.
func (b *Builder[K]) Reset() {
	b.nodes.Reset()
	b.root = arena.None
}

func (b *Builder[K]) Len() int {
	return b.nodes.Len()
}

func (b *Builder[K]) newNode(key K) *Node[K] {
	n := &Node[K]{ID: b.nodes.Allocate(), Key: key}
	b.nodes.Put(n.ID, n)
	return n
}

// Snapshot copies the live tree into a State.
func (b *Builder[K]) Snapshot() State[K] {
	return State[K]{
		nodes: b.nodes.Copy(func(n *Node[K]) Node[K] { return *n }),
		root:  b.root,
	}
}
