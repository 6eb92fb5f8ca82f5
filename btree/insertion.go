package btree

import (
	"slices"

	"TreeLab/arena"

	"github.com/cockroachdb/errors"
)

// Insert adds key to the leaf whose range brackets it and splits every
// node that overflows on the way back up, the root included. It returns
// the new state and the id of the leaf the key was inserted into; a later
// split in the same call may have moved the key to a sibling or up.
//
// Keys already in the tree are ignored: the state is returned unchanged
// together with the id of the node holding the key.
func (b *Builder[K]) Insert(key K) (State[K], int64) {
	if id, ok := b.find(key); ok {
		return b.Snapshot(), id
	}

	if b.root == arena.None {
		n := b.newNode([]K{key}, nil)
		b.root = n.ID
		return b.Snapshot(), n.ID
	}

	leafId := b.insertRecursive(b.root, key)
	if len(b.nodes.MustGet(b.root).Keys) > b.maxKeys {
		b.splitRoot()
	}
	b.assertFits(b.root)
	return b.Snapshot(), leafId
}

func (b *Builder[K]) insertRecursive(nodeId int64, key K) int64 {
	node := b.nodes.MustGet(nodeId)
	i, _ := childIndex(node.Keys, key)
	if node.IsLeaf() {
		node.Keys = slices.Insert(node.Keys, i, key)
		return nodeId
	}

	childId := node.Children[i]
	leafId := b.insertRecursive(childId, key)
	if len(b.nodes.MustGet(childId).Keys) > b.maxKeys {
		b.splitChild(nodeId, i)
	}
	return leafId
}

// split cuts the node at its median. The node keeps the left half, a new
// node takes the right half. The median is returned for the parent.
func (b *Builder[K]) split(nodeId int64) (K, int64) {
	node := b.nodes.MustGet(nodeId)
	mid := len(node.Keys) / 2
	median := node.Keys[mid]

	rightKeys := append([]K(nil), node.Keys[mid+1:]...)
	var rightChildren []int64
	if !node.IsLeaf() {
		rightChildren = append([]int64(nil), node.Children[mid+1:]...)
		node.Children = node.Children[: mid+1 : mid+1]
	}
	node.Keys = node.Keys[:mid:mid]

	right := b.newNode(rightKeys, rightChildren)
	b.assertFits(nodeId)
	b.assertFits(right.ID)
	return median, right.ID
}

// splitChild splits parent's idx-th child and links the new right sibling
// directly after it.
func (b *Builder[K]) splitChild(parentId int64, idx int) {
	parent := b.nodes.MustGet(parentId)
	median, rightId := b.split(parent.Children[idx])
	parent.Keys = slices.Insert(parent.Keys, idx, median)
	parent.Children = slices.Insert(parent.Children, idx+1, rightId)
}

// splitRoot grows the tree by one level: the new root holds only the
// median, with the old root and its new sibling as children.
func (b *Builder[K]) splitRoot() {
	oldRoot := b.root
	median, rightId := b.split(oldRoot)
	newRoot := b.newNode([]K{median}, []int64{oldRoot, rightId})
	b.root = newRoot.ID
}

func (b *Builder[K]) assertFits(nodeId int64) {
	if n := b.nodes.MustGet(nodeId); len(n.Keys) > b.maxKeys {
		panic(errors.AssertionFailedf("btree: node %d holds %d keys after splitting, max %d",
			nodeId, len(n.Keys), b.maxKeys))
	}
}
