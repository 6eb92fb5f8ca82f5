package history

import (
	"testing"

	"TreeLab/bst"

	"github.com/stretchr/testify/require"
)

// TestTimelineRecordAndScrub records BST snapshots and reads them back.
func TestTimelineRecordAndScrub(t *testing.T) {
	tl, err := NewTimeline[bst.State[int]](32)
	require.NoError(t, err)
	defer tl.Close()

	b := bst.NewBuilder[int]()
	var fps []uint64
	for _, k := range []int{50, 30, 70} {
		s, _ := b.Insert(k)
		tl.Record("insert", s)
		fps = append(fps, s.Fingerprint())
	}
	tl.Wait()

	require.Equal(t, uint64(3), tl.Len())
	for i, fp := range fps {
		f, ok := tl.At(uint64(i + 1))
		require.True(t, ok, "step %d", i+1)
		require.Equal(t, uint64(i+1), f.Step)
		require.Equal(t, "insert", f.Label)
		require.Equal(t, fp, f.State.Fingerprint())
		require.Equal(t, i+1, f.State.Len())
	}

	latest, ok := tl.Latest()
	require.True(t, ok)
	require.Equal(t, uint64(3), latest.Step)

	_, ok = tl.At(99)
	require.False(t, ok)
}

// TestTimelineEmpty covers a timeline with no frames.
func TestTimelineEmpty(t *testing.T) {
	tl, err := NewTimeline[int](4)
	require.NoError(t, err)
	defer tl.Close()

	_, ok := tl.Latest()
	require.False(t, ok)
	require.Equal(t, uint64(0), tl.Len())
	require.Zero(t, tl.Oldest())
	require.Equal(t, int64(4), tl.Capacity())
}

// TestTimelineRejectsCapacity ensures a non-positive capacity is an error.
func TestTimelineRejectsCapacity(t *testing.T) {
	_, err := NewTimeline[int](0)
	require.Error(t, err)
}

// TestTimelineKeepsLastWindow overflows the timeline and checks that exactly
// the last capacity steps are held.
func TestTimelineKeepsLastWindow(t *testing.T) {
	const capacity = 8
	tl, err := NewTimeline[int](capacity)
	require.NoError(t, err)
	defer tl.Close()

	for i := 1; i <= 200; i++ {
		tl.Record("step", i*10)
	}
	tl.Wait()

	require.Equal(t, uint64(200), tl.Len())
	require.Equal(t, uint64(193), tl.Oldest())
	for step := uint64(193); step <= 200; step++ {
		f, ok := tl.At(step)
		require.True(t, ok, "step %d", step)
		require.Equal(t, int(step)*10, f.State)
	}
	for _, step := range []uint64{1, 100, 182, 189, 192} {
		_, ok := tl.At(step)
		require.False(t, ok, "step %d", step)
	}

	latest, ok := tl.Latest()
	require.True(t, ok)
	require.Equal(t, uint64(200), latest.Step)
}

// TestTimelineWindowWhileRecording reads the window after every record.
func TestTimelineWindowWhileRecording(t *testing.T) {
	tl, err := NewTimeline[int](4)
	require.NoError(t, err)
	defer tl.Close()

	for i := 1; i <= 50; i++ {
		tl.Record("step", i)
		tl.Wait()
		for step := tl.Oldest(); step <= uint64(i); step++ {
			_, ok := tl.At(step)
			require.True(t, ok, "after %d records, step %d", i, step)
		}
	}
}
