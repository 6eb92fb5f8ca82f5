package session

import (
	"TreeLab/arena"
	"TreeLab/avl"
	"TreeLab/bst"
	"TreeLab/btree"
	"TreeLab/trace"

	"github.com/cockroachdb/errors"
)

// engine adapts one builder kind to trace steps. Each method fills in the
// outcome fields of step and advances the engine's previous state.
type engine interface {
	insert(key int64, step *trace.Step)
	delete(key int64, step *trace.Step) error
	search(key int64, step *trace.Step)
}

func lastOf(path []int64) int64 {
	if len(path) == 0 {
		return arena.None
	}
	return path[len(path)-1]
}

type bstEngine struct {
	b    *bst.Builder[int64]
	prev bst.State[int64]
}

func newBSTEngine() *bstEngine {
	b := bst.NewBuilder[int64]()
	return &bstEngine{b: b, prev: b.Snapshot()}
}

func (e *bstEngine) advance(step *trace.Step, s bst.State[int64]) {
	step.Snapshot = trace.FromBST(s)
	step.Diff = trace.FromDiff(bst.Diff(e.prev, s))
	e.prev = s
}

func (e *bstEngine) insert(key int64, step *trace.Step) {
	step.Path = e.b.InsertionPath(key)
	s, id := e.b.Insert(key)
	step.NodeID = id
	e.advance(step, s)
}

func (e *bstEngine) delete(key int64, step *trace.Step) error {
	step.Path = e.b.SearchPath(key)
	s, c := e.b.Delete(key)
	step.DeleteCase = c.String()
	e.advance(step, s)
	return nil
}

func (e *bstEngine) search(key int64, step *trace.Step) {
	step.Path = e.b.SearchPath(key)
	if e.b.Contains(key) {
		step.NodeID = lastOf(step.Path)
	}
	e.advance(step, e.prev)
}

type avlEngine struct {
	b    *avl.Builder[int64]
	prev avl.State[int64]
}

func newAVLEngine() *avlEngine {
	b := avl.NewBuilder[int64]()
	return &avlEngine{b: b, prev: b.Snapshot()}
}

func (e *avlEngine) advance(step *trace.Step, s avl.State[int64]) {
	step.Snapshot = trace.FromAVL(s)
	step.Diff = trace.FromDiff(avl.Diff(e.prev, s))
	e.prev = s
}

func (e *avlEngine) insert(key int64, step *trace.Step) {
	step.Path = e.b.InsertionPath(key)
	s, id := e.b.Insert(key)
	step.NodeID = id
	e.rotation(step)
	e.advance(step, s)
}

func (e *avlEngine) delete(key int64, step *trace.Step) error {
	step.Path = e.b.SearchPath(key)
	s, c := e.b.Delete(key)
	step.DeleteCase = c.String()
	e.rotation(step)
	e.advance(step, s)
	return nil
}

func (e *avlEngine) rotation(step *trace.Step) {
	if rot, ok := e.b.LastRotation(); ok {
		step.Rotation = string(rot.Kind)
	}
}

func (e *avlEngine) search(key int64, step *trace.Step) {
	step.Path = e.b.SearchPath(key)
	if e.b.Contains(key) {
		step.NodeID = lastOf(step.Path)
	}
	e.advance(step, e.prev)
}

type btreeEngine struct {
	b    *btree.Builder[int64]
	prev btree.State[int64]
}

func newBTreeEngine(order int) (*btreeEngine, error) {
	b, err := btree.NewBuilder[int64](order)
	if err != nil {
		return nil, err
	}
	return &btreeEngine{b: b, prev: b.Snapshot()}, nil
}

func (e *btreeEngine) advance(step *trace.Step, s btree.State[int64]) {
	step.Snapshot = trace.FromBTree(s)
	step.Diff = trace.FromDiff(btree.Diff(e.prev, s))
	e.prev = s
}

func (e *btreeEngine) insert(key int64, step *trace.Step) {
	step.Path = e.b.InsertionPath(key)
	s, id := e.b.Insert(key)
	step.NodeID = id
	e.advance(step, s)
}

// The B-tree builder is insert-only.
func (e *btreeEngine) delete(key int64, step *trace.Step) error {
	return errors.Wrapf(ErrUnsupported, "delete %d from a b-tree", key)
}

func (e *btreeEngine) search(key int64, step *trace.Step) {
	step.Path = e.b.SearchPath(key)
	if e.b.Contains(key) {
		step.NodeID = lastOf(step.Path)
	}
	e.advance(step, e.prev)
}
