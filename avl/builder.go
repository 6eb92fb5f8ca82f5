package avl

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
	b.lastRotation = nil
}

func (b *Builder[K]) Len() int {
	return b.nodes.Len()
}

// Height of the whole tree, 0 when empty.
func (b *Builder[K]) Height() int {
	return b.height(b.root)
}

// LastRotation returns the first rotation performed by the most recent
// Insert or Delete, if any.
func (b *Builder[K]) LastRotation() (Rotation, bool) {
	if b.lastRotation == nil {
		return Rotation{}, false
	}
	return *b.lastRotation, true
}

func (b *Builder[K]) newNode(key K, parent int64) *Node[K] {
	n := &Node[K]{
		ID:     b.nodes.Allocate(),
		Key:    key,
		Parent: parent,
		Height: 1,
	}
	b.nodes.Put(n.ID, n)
	return n
}

func (b *Builder[K]) Snapshot() State[K] {
	return State[K]{
		nodes: b.nodes.Copy(func(n *Node[K]) Node[K] { return *n }),
		root:  b.root,
	}
}
