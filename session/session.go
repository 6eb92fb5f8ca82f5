// Package session runs operations against one tree engine and turns each
// one into a trace step, the way a renderer consumes them.
/*
Session
    ↓
    ├─→ engine (bst | avl | btree builder) - mutates the tree, yields states + diffs
    ├─→ history.Timeline                   - bounded scrub-back of recent steps
    └─→ trace.Writer (optional)            - compressed step log on disk
*/
package session

import (
	"io"

	"TreeLab/history"
	"TreeLab/trace"
	"TreeLab/types"

	"github.com/cockroachdb/errors"
)

const (
	DefaultOrder       = 3
	DefaultHistorySize = 256
)

var ErrUnsupported = errors.New("operation not supported by this tree kind")

type Config struct {
	Kind        types.Kind
	Order       int   // B-tree order, DefaultOrder when 0
	HistorySize int64 // frames kept in the timeline, DefaultHistorySize when 0
	Trace       io.Writer
}

// Session is single-owner: Apply must not be called concurrently.
type Session struct {
	kind     types.Kind
	eng      engine
	timeline *history.Timeline[trace.Step]
	tw       *trace.Writer
	seq      uint64
}

func New(cfg Config) (*Session, error) {
	if cfg.Order == 0 {
		cfg.Order = DefaultOrder
	}
	if cfg.HistorySize == 0 {
		cfg.HistorySize = DefaultHistorySize
	}

	var eng engine
	switch cfg.Kind {
	case types.KindBST:
		eng = newBSTEngine()
	case types.KindAVL:
		eng = newAVLEngine()
	case types.KindBTree:
		e, err := newBTreeEngine(cfg.Order)
		if err != nil {
			return nil, err
		}
		eng = e
	default:
		return nil, errors.Newf("session: unknown tree kind %q", cfg.Kind)
	}

	timeline, err := history.NewTimeline[trace.Step](cfg.HistorySize)
	if err != nil {
		return nil, err
	}

	s := &Session{kind: cfg.Kind, eng: eng, timeline: timeline}
	if cfg.Trace != nil {
		s.tw = trace.NewWriter(cfg.Trace)
	}
	return s, nil
}

func (s *Session) Kind() types.Kind {
	return s.kind
}

// Apply runs op and returns the resulting step. Searches never change the
// tree; their step carries an all-unchanged diff.
func (s *Session) Apply(op types.Operation) (trace.Step, error) {
	step := trace.Step{
		Seq:  s.seq + 1,
		Kind: s.kind,
		Op:   op.Type,
		Key:  op.Key,
	}

	switch op.Type {
	case types.OpInsert:
		s.eng.insert(op.Key, &step)
	case types.OpDelete:
		if err := s.eng.delete(op.Key, &step); err != nil {
			return trace.Step{}, err
		}
	case types.OpSearch:
		s.eng.search(op.Key, &step)
	default:
		return trace.Step{}, errors.Newf("session: unknown operation %s", op.Type)
	}

	s.seq++
	s.timeline.Record(op.String(), step)
	if s.tw != nil {
		if err := s.tw.Write(step); err != nil {
			return step, err
		}
	}
	return step, nil
}

// Run applies ops in order and stops at the first error.
func (s *Session) Run(ops []types.Operation) ([]trace.Step, error) {
	steps := make([]trace.Step, 0, len(ops))
	for _, op := range ops {
		step, err := s.Apply(op)
		if err != nil {
			return steps, errors.Wrapf(err, "apply %s", op)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Frame returns the step with sequence number seq if it is one of the
// last HistorySize steps.
func (s *Session) Frame(seq uint64) (trace.Step, bool) {
	s.timeline.Wait()
	f, ok := s.timeline.At(seq)
	if !ok {
		return trace.Step{}, false
	}
	return f.State, true
}

// Steps is the number of operations applied so far.
func (s *Session) Steps() uint64 {
	return s.seq
}

// Close flushes the trace and releases the timeline.
func (s *Session) Close() error {
	defer s.timeline.Close()
	if s.tw != nil {
		return s.tw.Close()
	}
	return nil
}
