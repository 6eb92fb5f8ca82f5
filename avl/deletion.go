package avl

import (
	"TreeLab/arena"
	"TreeLab/types"
)

// ClassifyDelete reports which delete case key falls into without touching
// the tree, together with the id of the node holding key.
func (b *Builder[K]) ClassifyDelete(key K) (int64, types.DeleteCase) {
	id, ok := b.find(key)
	if !ok {
		return arena.None, types.NotFound
	}
	n := b.nodes.MustGet(id)
	switch {
	case n.IsLeaf():
		return id, types.Leaf
	case n.Left != arena.None && n.Right != arena.None:
		return id, types.TwoChildren
	default:
		return id, types.OneChild
	}
}

// Delete removes key and rebalances from the parent of the node that was
// physically unlinked. With two children the node takes its inorder
// successor's key and the successor is unlinked instead.
func (b *Builder[K]) Delete(key K) (State[K], types.DeleteCase) {
	b.lastRotation = nil

	nodeId, c := b.ClassifyDelete(key)
	if c == types.NotFound {
		return b.Snapshot(), c
	}
	node := b.nodes.MustGet(nodeId)
	parentId := node.Parent

	switch c {
	case types.Leaf:
		b.replaceChild(parentId, nodeId, arena.None)
		b.nodes.Free(nodeId)
		b.rebalancePath(parentId)

	case types.OneChild:
		childId := node.Left
		if childId == arena.None {
			childId = node.Right
		}
		b.nodes.MustGet(childId).Parent = parentId
		b.replaceChild(parentId, nodeId, childId)
		b.nodes.Free(nodeId)
		b.rebalancePath(parentId)

	case types.TwoChildren:
		succId := node.Right
		for left := b.nodes.MustGet(succId).Left; left != arena.None; left = b.nodes.MustGet(succId).Left {
			succId = left
		}
		succ := b.nodes.MustGet(succId)
		node.Key = succ.Key

		start := succ.Parent
		if start == nodeId {
			node.Right = succ.Right
		} else {
			b.nodes.MustGet(start).Left = succ.Right
		}
		if succ.Right != arena.None {
			b.nodes.MustGet(succ.Right).Parent = start
		}
		b.nodes.Free(succId)
		b.rebalancePath(start)
	}
	return b.Snapshot(), c
}
