// Record program: runs a sequence of operations against one tree kind,
// prints each step with its diff and optionally writes a trace file.
// Run: go run ./cmd/record -kind avl -keys 30,20,10,25 -delete 20
// Random: go run ./cmd/record -kind btree -order 4 -random 12 -out demo.trace
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"

	"TreeLab/session"
	"TreeLab/trace"
	"TreeLab/types"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
)

var (
	kindFlag   = flag.String("kind", "bst", "Tree kind: bst, avl or btree.")
	orderFlag  = flag.Int("order", session.DefaultOrder, "B-tree order (max children per node).")
	keysFlag   = flag.String("keys", "", "Comma-separated keys to insert.")
	deleteFlag = flag.String("delete", "", "Comma-separated keys to delete after the inserts.")
	searchFlag = flag.String("search", "", "Comma-separated keys to search for at the end.")
	randomFlag = flag.Int("random", 0, "Insert this many distinct random keys in [1, 99] instead of -keys.")
	outFlag    = flag.String("out", "", "Write a trace file here.")
	noColor    = flag.Bool("no-color", false, "Disable colored output.")
)

var (
	newColor      = color.New(color.FgGreen, color.Bold).SprintFunc()
	modifiedColor = color.New(color.FgYellow).SprintFunc()
	removedColor  = color.New(color.FgRed).SprintFunc()
)

func parseKeys(s string) ([]int64, error) {
	var keys []int64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		k, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad key %q", f)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func buildOps() ([]types.Operation, error) {
	var inserts []int64
	if *randomFlag > 0 {
		ints, err := faker.RandomInt(1, 99, *randomFlag)
		if err != nil {
			return nil, errors.Wrap(err, "random keys")
		}
		for _, k := range ints {
			inserts = append(inserts, int64(k))
		}
	} else {
		keys, err := parseKeys(*keysFlag)
		if err != nil {
			return nil, err
		}
		inserts = keys
	}
	deletes, err := parseKeys(*deleteFlag)
	if err != nil {
		return nil, err
	}
	searches, err := parseKeys(*searchFlag)
	if err != nil {
		return nil, err
	}

	var ops []types.Operation
	for _, k := range inserts {
		ops = append(ops, types.Insert(k))
	}
	for _, k := range deletes {
		ops = append(ops, types.Delete(k))
	}
	for _, k := range searches {
		ops = append(ops, types.Search(k))
	}
	return ops, nil
}

func printStep(step trace.Step) {
	fmt.Printf("#%d %s %d", step.Seq, step.Op, step.Key)
	if step.DeleteCase != "" {
		fmt.Printf(" (%s)", step.DeleteCase)
	}
	if step.Rotation != "" {
		fmt.Printf(" rotation=%s", step.Rotation)
	}
	if step.NodeID != 0 {
		fmt.Printf(" -> node %d", step.NodeID)
	}
	fmt.Printf("  path=%v\n", step.Path)

	if len(step.Snapshot.Nodes) == 0 {
		fmt.Println("  (empty tree)")
	}
	for level, ids := range step.Snapshot.Levels {
		var labels []string
		for _, id := range ids {
			n, _ := step.Snapshot.Node(id)
			label := fmt.Sprintf("%d:%s", id, n.Label)
			switch {
			case slices.Contains(step.Diff.New, id):
				label = newColor(label)
			case slices.Contains(step.Diff.Modified, id):
				label = modifiedColor(label)
			}
			labels = append(labels, label)
		}
		fmt.Printf("  L%d  %s\n", level, strings.Join(labels, "  "))
	}
	if len(step.Diff.Removed) > 0 {
		fmt.Printf("  removed %s\n", removedColor(fmt.Sprint(step.Diff.Removed)))
	}
}

func main() {
	flag.Usage = func() {
		fmt.Println("\nTree recorder\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *noColor {
		color.NoColor = true
	}

	kind, err := types.ParseKind(*kindFlag)
	if err != nil {
		log.Fatal(err)
	}
	ops, err := buildOps()
	if err != nil {
		log.Fatal(err)
	}
	if len(ops) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := session.Config{Kind: kind, Order: *orderFlag}
	var out *os.File
	if *outFlag != "" {
		out, err = os.Create(*outFlag)
		if err != nil {
			log.Fatalf("create trace: %v", err)
		}
		defer out.Close()
		cfg.Trace = out
	}

	s, err := session.New(cfg)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	fmt.Printf("Recording %d operations on a %s tree\n\n", len(ops), kind)
	for _, op := range ops {
		step, err := s.Apply(op)
		if err != nil {
			log.Printf("skip %s: %v", op, err)
			continue
		}
		printStep(step)
	}

	if err := s.Close(); err != nil {
		log.Fatalf("close: %v", err)
	}
	if out != nil {
		info, err := out.Stat()
		if err != nil {
			log.Fatalf("stat trace: %v", err)
		}
		fmt.Printf("\nWrote %d steps to %s (%s)\n", s.Steps(), *outFlag, humanize.Bytes(uint64(info.Size())))
	}
}
