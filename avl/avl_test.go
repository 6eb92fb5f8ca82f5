package avl

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"testing"

	"TreeLab/arena"
	"TreeLab/types"

	"github.com/stretchr/testify/require"
)

func insertAll(b *Builder[int], keys ...int) State[int] {
	var s State[int]
	for _, k := range keys {
		s, _ = b.Insert(k)
	}
	return s
}

// TestInsertRRRotation inserts ascending keys and expects one left rotation at 10.
func TestInsertRRRotation(t *testing.T) {
	b := NewBuilder[int]()
	insertAll(b, 10, 20)
	_, rotated := b.LastRotation()
	require.False(t, rotated)

	before := b.Snapshot()
	s, _ := b.Insert(30)
	rot, ok := b.LastRotation()
	require.True(t, ok)
	require.Equal(t, RotationRR, rot.Kind)
	require.Equal(t, arena.None, rot.Grandchild)

	pivot, _ := before.Node(rot.Pivot)
	require.Equal(t, 10, pivot.Key)
	child, _ := before.Node(rot.Child)
	require.Equal(t, 20, child.Key)

	root, _ := s.Node(s.Root())
	require.Equal(t, 20, root.Key)
	require.Equal(t, 2, root.Height)
	require.Equal(t, 2, s.Height())
	require.Equal(t, 2, b.Height())
	require.NoError(t, s.Validate())
}

// TestInsertRotationKinds covers the four rotation shapes.
func TestInsertRotationKinds(t *testing.T) {
	tests := []struct {
		name       string
		keys       []int
		kind       RotationKind
		pivot      int
		child      int
		grandchild int
	}{
		{"LL", []int{30, 20, 10}, RotationLL, 30, 20, 0},
		{"RR", []int{10, 20, 30}, RotationRR, 10, 20, 0},
		{"LR", []int{30, 10, 20}, RotationLR, 30, 10, 20},
		{"RL", []int{10, 30, 20}, RotationRL, 10, 30, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder[int]()
			before := insertAll(b, tt.keys[:2]...)
			s, _ := b.Insert(tt.keys[2])

			rot, ok := b.LastRotation()
			require.True(t, ok)
			require.Equal(t, tt.kind, rot.Kind)
			require.Equal(t, []int{tt.pivot}, before.Keys([]int64{rot.Pivot}))
			require.Equal(t, []int{tt.child}, before.Keys([]int64{rot.Child}))
			if tt.grandchild == 0 {
				require.Equal(t, arena.None, rot.Grandchild)
			} else {
				// the grandchild is the node just inserted
				require.Equal(t, []int{tt.grandchild}, s.Keys([]int64{rot.Grandchild}))
			}

			root, _ := s.Node(s.Root())
			require.Equal(t, 20, root.Key)
			require.Equal(t, []int{10, 20, 30}, s.InOrder())
			require.NoError(t, s.Validate())
		})
	}
}

// TestInsertDuplicate ensures duplicates leave the state untouched.
func TestInsertDuplicate(t *testing.T) {
	b := NewBuilder[int]()
	before := insertAll(b, 10, 20, 30, 40)
	want := b.SearchPath(30)

	after, id := b.Insert(30)
	require.Equal(t, want[len(want)-1], id)
	require.True(t, before.Equal(after))
	require.Equal(t, before.Fingerprint(), after.Fingerprint())
	_, rotated := b.LastRotation()
	require.False(t, rotated)
}

// TestDeleteRebalances removes a leaf and expects the root to rotate.
func TestDeleteRebalances(t *testing.T) {
	b := NewBuilder[int]()
	before := insertAll(b, 20, 10, 30, 40)

	s, c := b.Delete(10)
	require.Equal(t, types.Leaf, c)
	rot, ok := b.LastRotation()
	require.True(t, ok)
	require.Equal(t, RotationRR, rot.Kind)
	require.Equal(t, []int{20}, before.Keys([]int64{rot.Pivot}))

	root, _ := s.Node(s.Root())
	require.Equal(t, 30, root.Key)
	require.Equal(t, arena.None, root.Parent)
	require.NoError(t, s.Validate())

	d := Diff(before, s)
	require.Equal(t, 1, d.Removed.Len())
	require.Empty(t, d.New.IDs())
}

// TestDeleteTwoChildren checks the successor splice keeps the node id.
func TestDeleteTwoChildren(t *testing.T) {
	b := NewBuilder[int]()
	insertAll(b, 20, 10, 30, 25, 40)
	rootId := b.Snapshot().Root()

	s, c := b.Delete(20)
	require.Equal(t, types.TwoChildren, c)
	require.Equal(t, rootId, s.Root())
	root, _ := s.Node(rootId)
	require.Equal(t, 25, root.Key)
	require.Equal(t, []int{10, 25, 30, 40}, s.InOrder())
	require.NoError(t, s.Validate())
}

// TestDeleteOneChildAndNotFound covers the remaining delete cases.
func TestDeleteOneChildAndNotFound(t *testing.T) {
	b := NewBuilder[int]()
	insertAll(b, 20, 10, 30, 40)

	s, c := b.Delete(30)
	require.Equal(t, types.OneChild, c)
	require.Equal(t, []int{10, 20, 40}, s.InOrder())
	require.NoError(t, s.Validate())

	before := b.Snapshot()
	s, c = b.Delete(99)
	require.Equal(t, types.NotFound, c)
	require.True(t, before.Equal(s))

	for _, k := range []int{10, 20, 40} {
		s, _ = b.Delete(k)
		require.NoError(t, s.Validate())
	}
	require.True(t, s.Empty())
	require.Equal(t, 0, b.Height())
}

// TestSearchPaths tests read-only paths on a rotated tree.
func TestSearchPaths(t *testing.T) {
	b := NewBuilder[int]()
	s := insertAll(b, 10, 20, 30, 40, 50)

	require.Equal(t, []int{20, 40, 50}, s.Keys(b.SearchPath(50)))
	require.Equal(t, []int{20, 40, 30}, s.Keys(b.InsertionPath(35)))
	require.True(t, s.Equal(b.Snapshot()))
	require.True(t, b.Contains(30))
	require.False(t, b.Contains(35))
}

// TestRandomOperations checks balance and the diff partition after every step.
func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	b := NewBuilder[int]()
	prev := b.Snapshot()
	present := map[int]bool{}

	for i := 0; i < 3000; i++ {
		key := r.IntN(300)
		var next State[int]
		if r.IntN(5) < 2 {
			var c types.DeleteCase
			next, c = b.Delete(key)
			if present[key] == (c == types.NotFound) {
				t.Fatalf("step %d: delete %d returned %s, present=%v", i, key, c, present[key])
			}
			delete(present, key)
		} else {
			next, _ = b.Insert(key)
			present[key] = true
		}
		if err := next.Validate(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		for _, id := range next.IDs() {
			n, _ := next.Node(id)
			if n.Balance < -1 || n.Balance > 1 {
				t.Fatalf("step %d: node %d balance %d", i, id, n.Balance)
			}
		}

		checkPartition(t, prev, next)
		prev = next
	}

	want := make([]int, 0, len(present))
	for k := range present {
		want = append(want, k)
	}
	slices.Sort(want)
	require.Equal(t, want, prev.InOrder())
}

func checkPartition(t *testing.T, old, new State[int]) {
	t.Helper()
	d := Diff(old, new)
	union := map[int64]bool{}
	for _, id := range old.IDs() {
		union[id] = true
	}
	for _, id := range new.IDs() {
		union[id] = true
	}
	if d.Len() != len(union) {
		t.Fatalf("expected diff to cover %d ids, got %d", len(union), d.Len())
	}
	if d.New.Overlaps(d.Removed) || d.New.Overlaps(d.Modified) || d.New.Overlaps(d.Unchanged) ||
		d.Removed.Overlaps(d.Modified) || d.Removed.Overlaps(d.Unchanged) || d.Modified.Overlaps(d.Unchanged) {
		t.Fatalf("diff classes overlap: %v", d)
	}
}

// TestDump tests the level dump output.
func TestDump(t *testing.T) {
	b := NewBuilder[int]()
	s := insertAll(b, 10, 20, 30)
	var buf bytes.Buffer
	s.Dump(&buf)
	require.Contains(t, buf.String(), "height = 2")
	require.Contains(t, buf.String(), "key=20 h=2 bf=+0")
	require.Equal(t, "20 (+0)", s.Label(s.Root()))
}
