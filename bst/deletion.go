package bst

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

// Delete removes key. A node with two children takes over its inorder
// successor's key and the successor node is removed instead. NotFound
// leaves the tree unchanged.
func (b *Builder[K]) Delete(key K) (State[K], types.DeleteCase) {
	root, c := b.deleteRecursive(b.root, key)
	b.root = root
	return b.Snapshot(), c
}

// deleteRecursive removes key from the subtree at nodeId and returns the id
// of the subtree's new root.
func (b *Builder[K]) deleteRecursive(nodeId int64, key K) (int64, types.DeleteCase) {
	if nodeId == arena.None {
		return arena.None, types.NotFound
	}
	node := b.nodes.MustGet(nodeId)

	if key < node.Key {
		left, c := b.deleteRecursive(node.Left, key)
		node.Left = left
		return nodeId, c
	}
	if key > node.Key {
		right, c := b.deleteRecursive(node.Right, key)
		node.Right = right
		return nodeId, c
	}

	switch {
	case node.IsLeaf():
		b.nodes.Free(nodeId)
		return arena.None, types.Leaf
	case node.Left == arena.None:
		b.nodes.Free(nodeId)
		return node.Right, types.OneChild
	case node.Right == arena.None:
		b.nodes.Free(nodeId)
		return node.Left, types.OneChild
	}

	// two children: splice out the leftmost node of the right subtree
	succId, succParentId := b.minWithParent(node.Right, nodeId)
	succ := b.nodes.MustGet(succId)
	node.Key = succ.Key
	if succParentId == nodeId {
		node.Right = succ.Right
	} else {
		b.nodes.MustGet(succParentId).Left = succ.Right
	}
	b.nodes.Free(succId)
	return nodeId, types.TwoChildren
}

func (b *Builder[K]) minWithParent(nodeId, parentId int64) (int64, int64) {
	for {
		n := b.nodes.MustGet(nodeId)
		if n.Left == arena.None {
			return nodeId, parentId
		}
		parentId = nodeId
		nodeId = n.Left
	}
}
