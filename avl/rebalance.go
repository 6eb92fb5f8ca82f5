package avl

import (
	"TreeLab/arena"

	"github.com/cockroachdb/errors"
)

// rebalancePath walks from startId up to the root refreshing heights and
// rotating any node whose balance left [-1, 1]. Only the first rotation
// is remembered in lastRotation.
func (b *Builder[K]) rebalancePath(startId int64) {
	for curId := startId; curId != arena.None; {
		b.updateHeightAndBalance(curId)
		node := b.nodes.MustGet(curId)

		switch {
		case node.Balance > 1:
			left := b.nodes.MustGet(node.Left)
			if left.Balance >= 0 {
				b.record(RotationLL, curId, node.Left, arena.None)
				curId = b.rotateRight(curId)
			} else {
				b.record(RotationLR, curId, node.Left, left.Right)
				b.rotateLeft(node.Left)
				curId = b.rotateRight(curId)
			}
		case node.Balance < -1:
			right := b.nodes.MustGet(node.Right)
			if right.Balance <= 0 {
				b.record(RotationRR, curId, node.Right, arena.None)
				curId = b.rotateLeft(curId)
			} else {
				b.record(RotationRL, curId, node.Right, right.Left)
				b.rotateRight(node.Right)
				curId = b.rotateLeft(curId)
			}
		}

		cur := b.nodes.MustGet(curId)
		if cur.Balance > 1 || cur.Balance < -1 {
			panic(errors.AssertionFailedf("avl: node %d still has balance %d after rebalancing", curId, cur.Balance))
		}
		curId = cur.Parent
	}
}

func (b *Builder[K]) record(kind RotationKind, pivot, child, grandchild int64) {
	if b.lastRotation != nil {
		return
	}
	b.lastRotation = &Rotation{
		Kind:       kind,
		Pivot:      pivot,
		Child:      child,
		Grandchild: grandchild,
	}
}
