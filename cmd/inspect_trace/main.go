// Inspect a trace file written by cmd/record.
// Usage: go run ./cmd/inspect_trace <file.trace>
package main

import (
	"fmt"
	"io"
	"os"

	"TreeLab/trace"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
)

func inspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open trace")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	fmt.Printf("=== Trace: %s (%s) ===\n", path, humanize.Bytes(uint64(info.Size())))

	r := trace.NewReader(f)
	var steps, nodes int
	for {
		step, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		steps++
		nodes = len(step.Snapshot.Nodes)

		fmt.Printf("\n#%d %s %s %d", step.Seq, step.Kind, step.Op, step.Key)
		if step.DeleteCase != "" {
			fmt.Printf(" case=%s", step.DeleteCase)
		}
		if step.Rotation != "" {
			fmt.Printf(" rotation=%s", step.Rotation)
		}
		fmt.Println()
		fmt.Printf("  root=%d nodes=%d levels=%d\n", step.Snapshot.Root, len(step.Snapshot.Nodes), len(step.Snapshot.Levels))
		fmt.Printf("  new=%v removed=%v modified=%v unchanged=%d\n",
			step.Diff.New, step.Diff.Removed, step.Diff.Modified, len(step.Diff.Unchanged))
	}

	fmt.Printf("\n%s steps, %s nodes in the final tree\n", humanize.Comma(int64(steps)), humanize.Comma(int64(nodes)))
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <file.trace>\n", os.Args[0])
		os.Exit(1)
	}
	if err := inspect(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
