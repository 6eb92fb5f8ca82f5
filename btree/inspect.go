package btree

import (
	"fmt"
	"io"
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
			queue = append(queue, s.nodes[queue[i]].Children...)
		}
		queue = queue[size:]
	}
	return levels
}

// Label shows the node's keys, e.g. "[10 20]".
func (s State[K]) Label(id int64) string {
	n, ok := s.nodes[id]
	if !ok {
		return "?"
	}
	return fmt.Sprint(n.Keys)
}

func (s State[K]) Dump(w io.Writer) {
	if s.Empty() {
		fmt.Fprintln(w, "  (empty tree)")
		return
	}
	fmt.Fprintf(w, "  order = %d, root = %d, depth = %d, %d nodes\n", s.order, s.root, s.Depth(), len(s.nodes))
	for level, ids := range s.Levels() {
		fmt.Fprintf(w, "  Level %d:\n", level)
		for _, id := range ids {
			n := s.nodes[id]
			if n.IsLeaf() {
				fmt.Fprintf(w, "    [node %d] LEAF keys=%v\n", id, n.Keys)
			} else {
				fmt.Fprintf(w, "    [node %d] INTERNAL keys=%v children=%v\n", id, n.Keys, n.Children)
			}
		}
	}
}
