package avl

import "TreeLab/arena"

func (b *Builder[K]) height(id int64) int {
	if id == arena.None {
		return 0
	}
	return b.nodes.MustGet(id).Height
}

func (b *Builder[K]) updateHeightAndBalance(id int64) {
	n := b.nodes.MustGet(id)
	lh, rh := b.height(n.Left), b.height(n.Right)
	n.Height = 1 + max(lh, rh)
	n.Balance = lh - rh
}

// replaceChild points the parent of oldId (or the root) at newId.
func (b *Builder[K]) replaceChild(parentId, oldId, newId int64) {
	if parentId == arena.None {
		b.root = newId
		return
	}
	p := b.nodes.MustGet(parentId)
	if p.Left == oldId {
		p.Left = newId
	} else {
		p.Right = newId
	}
}

// rotateLeft lifts z's right child y into z's place and returns y.
/*
     z                y
    / \              / \
   T1  y    =>      z   T3
      / \          / \
     T2  T3       T1  T2
*/
func (b *Builder[K]) rotateLeft(zId int64) int64 {
	z := b.nodes.MustGet(zId)
	yId := z.Right
	y := b.nodes.MustGet(yId)
	t2 := y.Left

	y.Left = zId
	z.Right = t2

	y.Parent = z.Parent
	z.Parent = yId
	if t2 != arena.None {
		b.nodes.MustGet(t2).Parent = zId
	}
	b.replaceChild(y.Parent, zId, yId)

	b.updateHeightAndBalance(zId)
	b.updateHeightAndBalance(yId)
	return yId
}

// rotateRight lifts z's left child y into z's place and returns y.
/*
       z            y
      / \          / \
     y   T3  =>   T1  z
    / \              / \
   T1  T2           T2  T3
*/
func (b *Builder[K]) rotateRight(zId int64) int64 {
	z := b.nodes.MustGet(zId)
	yId := z.Left
	y := b.nodes.MustGet(yId)
	t2 := y.Right

	y.Right = zId
	z.Left = t2

	y.Parent = z.Parent
	z.Parent = yId
	if t2 != arena.None {
		b.nodes.MustGet(t2).Parent = zId
	}
	b.replaceChild(y.Parent, zId, yId)

	b.updateHeightAndBalance(zId)
	b.updateHeightAndBalance(yId)
	return yId
}
