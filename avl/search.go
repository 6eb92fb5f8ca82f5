package avl

import "TreeLab/arena"

// SearchPath returns the ids visited looking for key, root first.
func (b *Builder[K]) SearchPath(key K) []int64 {
	var path []int64
	for curId := b.root; curId != arena.None; {
		path = append(path, curId)
		cur := b.nodes.MustGet(curId)
		switch {
		case key == cur.Key:
			return path
		case key < cur.Key:
			curId = cur.Left
		default:
			curId = cur.Right
		}
	}
	return path
}

// InsertionPath returns the ids an insert of key would walk before any
// rebalancing, ending at the would-be parent.
func (b *Builder[K]) InsertionPath(key K) []int64 {
	var path []int64
	for curId := b.root; curId != arena.None; {
		path = append(path, curId)
		cur := b.nodes.MustGet(curId)
		switch {
		case key < cur.Key:
			curId = cur.Left
		case key > cur.Key:
			curId = cur.Right
		default:
			return path
		}
	}
	return path
}

func (b *Builder[K]) Contains(key K) bool {
	_, ok := b.find(key)
	return ok
}

func (b *Builder[K]) find(key K) (int64, bool) {
	path := b.SearchPath(key)
	if len(path) == 0 {
		return arena.None, false
	}
	last := path[len(path)-1]
	return last, b.nodes.MustGet(last).Key == key
}
