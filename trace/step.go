// Package trace records tree operations in a structure-neutral form so a
// renderer (or a person) can replay them without linking the builders.
/*
Trace file
────────────────────────────────────────────
| snappy framed stream                     |
|   Step JSON \n Step JSON \n ...          |
────────────────────────────────────────────
*/
package trace

import (
	"TreeLab/avl"
	"TreeLab/bst"
	"TreeLab/btree"
	"TreeLab/nodediff"
	"TreeLab/types"
)

// Node is a tree node with the fields every renderer needs. Binary trees
// put their key in Keys[0] and their left/right ids in Children (0 for a
// missing side).
type Node struct {
	ID       int64   `json:"id"`
	Keys     []int64 `json:"keys"`
	Children []int64 `json:"children,omitempty"`
	Height   int     `json:"height,omitempty"`
	Balance  int     `json:"balance,omitempty"`
	Label    string  `json:"label"`
}

type Snapshot struct {
	Root   int64     `json:"root"`
	Nodes  []Node    `json:"nodes"`
	Levels [][]int64 `json:"levels,omitempty"`
}

type DiffRecord struct {
	New       []int64 `json:"new,omitempty"`
	Removed   []int64 `json:"removed,omitempty"`
	Modified  []int64 `json:"modified,omitempty"`
	Unchanged []int64 `json:"unchanged,omitempty"`
}

// Step is one operation and its outcome.
type Step struct {
	Seq        uint64              `json:"seq"`
	Kind       types.Kind          `json:"kind"`
	Op         types.OperationType `json:"op"`
	Key        int64               `json:"key"`
	NodeID     int64               `json:"node_id,omitempty"`
	DeleteCase string              `json:"delete_case,omitempty"`
	Rotation   string              `json:"rotation,omitempty"`
	Path       []int64             `json:"path,omitempty"`
	Snapshot   Snapshot            `json:"snapshot"`
	Diff       DiffRecord          `json:"diff"`
}

func FromDiff(d nodediff.Diff) DiffRecord {
	return DiffRecord{
		New:       d.New.IDs(),
		Removed:   d.Removed.IDs(),
		Modified:  d.Modified.IDs(),
		Unchanged: d.Unchanged.IDs(),
	}
}

func FromBST(s bst.State[int64]) Snapshot {
	out := Snapshot{Root: s.Root(), Levels: s.Levels()}
	for _, id := range s.IDs() {
		n, _ := s.Node(id)
		out.Nodes = append(out.Nodes, Node{
			ID:       id,
			Keys:     []int64{n.Key},
			Children: []int64{n.Left, n.Right},
			Label:    s.Label(id),
		})
	}
	return out
}

func FromAVL(s avl.State[int64]) Snapshot {
	out := Snapshot{Root: s.Root(), Levels: s.Levels()}
	for _, id := range s.IDs() {
		n, _ := s.Node(id)
		out.Nodes = append(out.Nodes, Node{
			ID:       id,
			Keys:     []int64{n.Key},
			Children: []int64{n.Left, n.Right},
			Height:   n.Height,
			Balance:  n.Balance,
			Label:    s.Label(id),
		})
	}
	return out
}

func FromBTree(s btree.State[int64]) Snapshot {
	out := Snapshot{Root: s.Root(), Levels: s.Levels()}
	for _, id := range s.IDs() {
		n, _ := s.Node(id)
		out.Nodes = append(out.Nodes, Node{
			ID:       id,
			Keys:     n.Keys,
			Children: n.Children,
			Label:    s.Label(id),
		})
	}
	return out
}

// Node looks up a node by id.
func (s Snapshot) Node(id int64) (Node, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
