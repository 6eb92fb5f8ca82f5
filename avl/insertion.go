package avl

import "TreeLab/arena"

// Insert adds key, rebalances, and returns the new state with the id of
// the node holding key. Inserting an existing key changes nothing.
func (b *Builder[K]) Insert(key K) (State[K], int64) {
	b.lastRotation = nil

	if b.root == arena.None {
		n := b.newNode(key, arena.None)
		b.root = n.ID
		return b.Snapshot(), n.ID
	}

	curId := b.root
	for {
		cur := b.nodes.MustGet(curId)
		switch {
		case key < cur.Key:
			if cur.Left == arena.None {
				n := b.newNode(key, curId)
				cur.Left = n.ID
				b.rebalancePath(curId)
				return b.Snapshot(), n.ID
			}
			curId = cur.Left
		case key > cur.Key:
			if cur.Right == arena.None {
				n := b.newNode(key, curId)
				cur.Right = n.ID
				b.rebalancePath(curId)
				return b.Snapshot(), n.ID
			}
			curId = cur.Right
		default:
			return b.Snapshot(), curId
		}
	}
}
