// Package arena holds the live nodes of one tree builder.
/*
Arena
 ├── nodes  : id -> *node (live, mutable, owned by the builder)
 └── nextID : monotonic counter, starts at 1

- id 0 (None) is never handed out and means "no node"
- ids are never recycled, not even after Reset
- links between nodes are ids, never pointers
*/
package arena

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// None is the id used for an absent node (empty tree, missing child).
const None int64 = 0

type Arena[N any] struct {
	nodes  map[int64]*N
	nextID int64
}

func New[N any]() *Arena[N] {
	return &Arena[N]{
		nodes:  make(map[int64]*N),
		nextID: 1,
	}
}

// Allocate reserves the next id. The caller stores the node with Put.
func (a *Arena[N]) Allocate() int64 {
	id := a.nextID
	a.nextID++
	return id
}

func (a *Arena[N]) Put(id int64, n *N) {
	if id == None {
		panic(errors.AssertionFailedf("arena: cannot store a node under the empty id"))
	}
	a.nodes[id] = n
}

// Get returns the node stored under id, or nil.
func (a *Arena[N]) Get(id int64) *N {
	if id == None {
		return nil
	}
	return a.nodes[id]
}

// MustGet is Get for links the builder itself wrote. A miss means a
// dangling link and the tree is corrupt.
func (a *Arena[N]) MustGet(id int64) *N {
	n, ok := a.nodes[id]
	if !ok {
		panic(errors.AssertionFailedf("arena: dangling link to node %d", id))
	}
	return n
}

func (a *Arena[N]) Free(id int64) {
	delete(a.nodes, id)
}

func (a *Arena[N]) Len() int {
	return len(a.nodes)
}

// IDs returns the live ids in ascending order.
func (a *Arena[N]) IDs() []int64 {
	ids := make([]int64, 0, len(a.nodes))
	for id := range a.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// NextID reports the id the next Allocate will return.
func (a *Arena[N]) NextID() int64 {
	return a.nextID
}

// Reset drops every node but keeps the id counter running.
func (a *Arena[N]) Reset() {
	a.nodes = make(map[int64]*N)
}

// Copy builds a detached value copy of every live node. clone must not
// return anything that aliases the arena (slices in particular).
func (a *Arena[N]) Copy(clone func(*N) N) map[int64]N {
	out := make(map[int64]N, len(a.nodes))
	for id, n := range a.nodes {
		out[id] = clone(n)
	}
	return out
}
