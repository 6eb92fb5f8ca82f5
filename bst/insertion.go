package bst

import "TreeLab/arena"

// Insert adds key and returns the new state with the id of the node that
// holds key. An existing key leaves the tree untouched and returns the id
// of the node already holding it.
func (b *Builder[K]) Insert(key K) (State[K], int64) {
	if b.root == arena.None {
		n := b.newNode(key)
		b.root = n.ID
		return b.Snapshot(), n.ID
	}

	curId := b.root
	for {
		cur := b.nodes.MustGet(curId)
		switch {
		case key < cur.Key:
			if cur.Left == arena.None {
				n := b.newNode(key)
				cur.Left = n.ID
				return b.Snapshot(), n.ID
			}
			curId = cur.Left
		case key > cur.Key:
			if cur.Right == arena.None {
				n := b.newNode(key)
				cur.Right = n.ID
				return b.Snapshot(), n.ID
			}
			curId = cur.Right
		default:
			return b.Snapshot(), curId
		}
	}
}
