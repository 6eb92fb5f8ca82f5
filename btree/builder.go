package btree

import (
	"TreeLab/arena"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

var ErrOrder = errors.New("btree: order must be at least 3")

// NewBuilder creates an empty B-tree where a node holds at most order
// children and order-1 keys.
func NewBuilder[K constraints.Ordered](order int) (*Builder[K], error) {
	if order < MinOrder {
		return nil, errors.Wrapf(ErrOrder, "got %d", order)
	}
	return &Builder[K]{
		order:   order,
		maxKeys: order - 1,
		nodes:   arena.New[Node[K]](),
		root:    arena.None,
	}, nil
}

func (b *Builder[K]) Order() int   { return b.order }
func (b *Builder[K]) MaxKeys() int { return b.maxKeys }
func (b *Builder[K]) Len() int     { return b.nodes.Len() }

// Reset empties the tree. Ids handed out before stay retired.
func (b *Builder[K]) Reset() {
	b.nodes.Reset()
	b.root = arena.None
}

func (b *Builder[K]) newNode(keys []K, children []int64) *Node[K] {
	n := &Node[K]{ID: b.nodes.Allocate(), Keys: keys, Children: children}
	b.nodes.Put(n.ID, n)
	return n
}

func (b *Builder[K]) Snapshot() State[K] {
	return State[K]{
		order: b.order,
		nodes: b.nodes.Copy(func(n *Node[K]) Node[K] { return n.clone() }),
		root:  b.root,
	}
}
