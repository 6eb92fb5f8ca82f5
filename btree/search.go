package btree

import (
	"slices"

	"TreeLab/arena"

	"golang.org/x/exp/constraints"
)

// childIndex returns the index of the child whose range brackets key and
// whether key sits in the node itself. Equal keys go right.
func childIndex[K constraints.Ordered](keys []K, key K) (int, bool) {
	i, found := slices.BinarySearch(keys, key)
	if found {
		return i + 1, true
	}
	return i, false
}

// SearchPath returns the ids visited looking for key. It stops at the node
// holding key or at the leaf that would hold it.
func (b *Builder[K]) SearchPath(key K) []int64 {
	var path []int64
	for curId := b.root; curId != arena.None; {
		path = append(path, curId)
		cur := b.nodes.MustGet(curId)
		i, found := childIndex(cur.Keys, key)
		if found || cur.IsLeaf() {
			return path
		}
		curId = cur.Children[i]
	}
	return path
}

// InsertionPath returns the ids from the root down to the leaf key would
// be inserted into.
func (b *Builder[K]) InsertionPath(key K) []int64 {
	var path []int64
	for curId := b.root; curId != arena.None; {
		path = append(path, curId)
		cur := b.nodes.MustGet(curId)
		if cur.IsLeaf() {
			return path
		}
		i, _ := childIndex(cur.Keys, key)
		curId = cur.Children[i]
	}
	return path
}

// Contains reports whether key is stored anywhere in the tree.
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
	_, found := slices.BinarySearch(b.nodes.MustGet(last).Keys, key)
	return last, found
}
