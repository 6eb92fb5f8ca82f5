package avl

import (
	"fmt"
	"io"

	"TreeLab/arena"
)

// Levels returns node ids level by level (BFS), root level first.
func (s State[K]) Levels() [][]int64 {
	if s.Empty() {
		return nil
	}
	var levels [][]int64
	queue := []int64{s.root}
	for len(queue) > 0 {
		size := len(queue)
		levels = append(levels, append([]int64(nil), queue...))
		for i := 0; i < size; i++ {
			n := s.nodes[queue[i]]
			if n.Left != arena.None {
				queue = append(queue, n.Left)
			}
			if n.Right != arena.None {
				queue = append(queue, n.Right)
			}
		}
		queue = queue[size:]
	}
	return levels
}

// Label shows the key with its balance factor, e.g. "20 (0)".
func (s State[K]) Label(id int64) string {
	n, ok := s.nodes[id]
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%v (%+d)", n.Key, n.Balance)
}

func (s State[K]) Dump(w io.Writer) {
	if s.Empty() {
		fmt.Fprintln(w, "  (empty tree)")
		return
	}
	fmt.Fprintf(w, "  root = %d, height = %d, %d nodes\n", s.root, s.Height(), len(s.nodes))
	for level, ids := range s.Levels() {
		fmt.Fprintf(w, "  Level %d:\n", level)
		for _, id := range ids {
			n := s.nodes[id]
			fmt.Fprintf(w, "    [node %d] key=%v h=%d bf=%+d left=%d right=%d parent=%d\n",
				id, n.Key, n.Height, n.Balance, n.Left, n.Right, n.Parent)
		}
	}
}
