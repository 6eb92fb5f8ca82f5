package session

import (
	"bytes"
	"testing"

	"TreeLab/trace"
	"TreeLab/types"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestBSTInsertSteps checks ids, paths and the key-only diff of BST inserts.
func TestBSTInsertSteps(t *testing.T) {
	s := newSession(t, Config{Kind: types.KindBST})

	steps, err := s.Run([]types.Operation{
		types.Insert(50), types.Insert(30), types.Insert(70),
	})
	require.NoError(t, err)
	require.Len(t, steps, 3)

	last := steps[2]
	require.Equal(t, uint64(3), last.Seq)
	require.Equal(t, types.OpInsert, last.Op)
	require.Equal(t, int64(3), last.NodeID)
	require.Equal(t, []int64{1}, last.Path)
	require.Equal(t, int64(1), last.Snapshot.Root)
	require.Equal(t, []int64{3}, last.Diff.New)
	require.Empty(t, last.Diff.Modified)
	require.Equal(t, []int64{1, 2}, last.Diff.Unchanged)
	require.Equal(t, uint64(3), s.Steps())
}

// TestSearchLeavesTreeUnchanged ensures searches never change any tree kind.
func TestSearchLeavesTreeUnchanged(t *testing.T) {
	for _, kind := range []types.Kind{types.KindBST, types.KindAVL, types.KindBTree} {
		t.Run(string(kind), func(t *testing.T) {
			s := newSession(t, Config{Kind: kind})
			_, err := s.Run([]types.Operation{
				types.Insert(10), types.Insert(20), types.Insert(30),
			})
			require.NoError(t, err)

			hit, err := s.Apply(types.Search(20))
			require.NoError(t, err)
			require.NotZero(t, hit.NodeID)
			require.Empty(t, hit.Diff.New)
			require.Empty(t, hit.Diff.Removed)
			require.Empty(t, hit.Diff.Modified)
			require.NotEmpty(t, hit.Diff.Unchanged)

			miss, err := s.Apply(types.Search(99))
			require.NoError(t, err)
			require.Zero(t, miss.NodeID)
			require.NotEmpty(t, miss.Path)
			require.Equal(t, hit.Snapshot, miss.Snapshot)
		})
	}
}

// TestBSTDeleteCase checks delete cases travel into the step.
func TestBSTDeleteCase(t *testing.T) {
	s := newSession(t, Config{Kind: types.KindBST})
	_, err := s.Run([]types.Operation{
		types.Insert(50), types.Insert(30), types.Insert(70), types.Insert(60), types.Insert(80),
	})
	require.NoError(t, err)

	step, err := s.Apply(types.Delete(70))
	require.NoError(t, err)
	require.Equal(t, types.TwoChildren.String(), step.DeleteCase)
	require.NotEmpty(t, step.Diff.Removed)

	step, err = s.Apply(types.Delete(99))
	require.NoError(t, err)
	require.Equal(t, types.NotFound.String(), step.DeleteCase)
	require.Empty(t, step.Diff.Removed)
	require.Empty(t, step.Diff.Modified)
}

// TestAVLRecordsRotation checks the step names the rotation an insert caused.
func TestAVLRecordsRotation(t *testing.T) {
	s := newSession(t, Config{Kind: types.KindAVL})
	steps, err := s.Run([]types.Operation{
		types.Insert(30), types.Insert(20), types.Insert(10),
	})
	require.NoError(t, err)

	require.Empty(t, steps[0].Rotation)
	require.Empty(t, steps[1].Rotation)
	require.Equal(t, "LL", steps[2].Rotation)

	root, ok := steps[2].Snapshot.Node(steps[2].Snapshot.Root)
	require.True(t, ok)
	require.Equal(t, []int64{20}, root.Keys)

	search, err := s.Apply(types.Search(10))
	require.NoError(t, err)
	require.Empty(t, search.Rotation)
}

// TestBTreeRejectsDelete ensures b-tree deletes fail without consuming a step.
func TestBTreeRejectsDelete(t *testing.T) {
	s := newSession(t, Config{Kind: types.KindBTree, Order: 3})
	_, err := s.Apply(types.Insert(10))
	require.NoError(t, err)

	_, err = s.Apply(types.Delete(10))
	require.True(t, errors.Is(err, ErrUnsupported))
	require.Equal(t, uint64(1), s.Steps())

	_, err = s.Run([]types.Operation{types.Insert(20), types.Delete(20), types.Insert(30)})
	require.True(t, errors.Is(err, ErrUnsupported))
	require.Equal(t, uint64(2), s.Steps())
}

// TestNewRejectsBadConfig covers unknown kinds, small orders and bad history sizes.
func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Kind: "splay"})
	require.Error(t, err)

	_, err = New(Config{Kind: types.KindBTree, Order: 2})
	require.Error(t, err)

	_, err = New(Config{Kind: types.KindBST, HistorySize: -1})
	require.Error(t, err)
}

// TestUnknownOperation ensures an unknown op type is an error.
func TestUnknownOperation(t *testing.T) {
	s := newSession(t, Config{Kind: types.KindBST})
	_, err := s.Apply(types.Operation{Type: 9, Key: 1})
	require.Error(t, err)
	require.Zero(t, s.Steps())
}

// TestFrame reads every step back from the timeline.
func TestFrame(t *testing.T) {
	s := newSession(t, Config{Kind: types.KindBTree, Order: 4})
	steps, err := s.Run([]types.Operation{
		types.Insert(5), types.Insert(15), types.Insert(25), types.Insert(35),
	})
	require.NoError(t, err)

	for _, want := range steps {
		got, ok := s.Frame(want.Seq)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	_, ok := s.Frame(99)
	require.False(t, ok)
}

// TestTraceWritten reads the trace back and compares it with the returned steps.
func TestTraceWritten(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(Config{Kind: types.KindAVL, Trace: &buf})
	require.NoError(t, err)

	steps, err := s.Run([]types.Operation{
		types.Insert(10), types.Insert(20), types.Insert(30), types.Delete(10), types.Search(30),
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	read, err := trace.ReadAll(&buf)
	require.NoError(t, err)
	require.Equal(t, steps, read)
	require.Equal(t, "RR", read[2].Rotation)
	require.Equal(t, types.OpDelete, read[3].Op)
}

// TestFrameWindow ensures only the last HistorySize steps can be read back.
func TestFrameWindow(t *testing.T) {
	s := newSession(t, Config{Kind: types.KindAVL, HistorySize: 4})
	for k := int64(1); k <= 10; k++ {
		_, err := s.Apply(types.Insert(k))
		require.NoError(t, err)
	}

	for seq := uint64(7); seq <= 10; seq++ {
		step, ok := s.Frame(seq)
		require.True(t, ok, "seq %d", seq)
		require.Equal(t, seq, step.Seq)
		require.Equal(t, int64(seq), step.Key)
	}
	for _, seq := range []uint64{1, 5, 6} {
		_, ok := s.Frame(seq)
		require.False(t, ok, "seq %d", seq)
	}
}
