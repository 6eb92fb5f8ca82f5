package trace

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/golang/snappy"
)

// Writer appends steps to a snappy-compressed stream of JSON lines.
type Writer struct {
	zw    *snappy.Writer
	enc   *json.Encoder
	count int
}

func NewWriter(w io.Writer) *Writer {
	zw := snappy.NewBufferedWriter(w)
	return &Writer{zw: zw, enc: json.NewEncoder(zw)}
}

func (w *Writer) Write(step Step) error {
	if err := w.enc.Encode(step); err != nil {
		return errors.Wrapf(err, "trace: encode step %d", step.Seq)
	}
	w.count++
	return nil
}

// Count is the number of steps written so far.
func (w *Writer) Count() int {
	return w.count
}

func (w *Writer) Flush() error {
	return errors.Wrap(w.zw.Flush(), "trace: flush")
}

// Close flushes pending data. It does not close the underlying writer.
func (w *Writer) Close() error {
	return errors.Wrap(w.zw.Close(), "trace: close")
}

// Reader decodes steps written by Writer.
type Reader struct {
	sc *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(snappy.NewReader(r))
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return &Reader{sc: sc}
}

// Next returns the next step, or io.EOF after the last one.
func (r *Reader) Next() (Step, error) {
	for r.sc.Scan() {
		line := r.sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var step Step
		if err := json.Unmarshal(line, &step); err != nil {
			return Step{}, errors.Wrap(err, "trace: decode step")
		}
		return step, nil
	}
	if err := r.sc.Err(); err != nil {
		return Step{}, errors.Wrap(err, "trace: read")
	}
	return Step{}, io.EOF
}

// ReadAll decodes every step in r.
func ReadAll(r io.Reader) ([]Step, error) {
	tr := NewReader(r)
	var steps []Step
	for {
		step, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return steps, nil
		}
		if err != nil {
			return steps, err
		}
		steps = append(steps, step)
	}
}
