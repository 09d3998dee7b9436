package models

import (
	"fmt"
	"math"
)

// Frame is the tabular form of a capture: one row per record, one
// column per dotted field path. Cells are nil where a record lacked the
// field. Column order is fixed at construction time and survives every
// transform, so downstream CSV headers and chart legends are stable.
type Frame struct {
	cols []string
	data map[string][]any
	rows int
}

// Normalize builds a Frame from a flat record sequence. The column set
// is the union of every record's flattened paths, ordered by first
// appearance (paths within one record in sorted order). Rows keep the
// input order. No field types are validated here.
func Normalize(records []Record) *Frame {
	f := &Frame{data: make(map[string][]any), rows: len(records)}

	flat := make([]Record, len(records))
	for i, r := range records {
		flat[i] = r.Flatten()
		for _, path := range records[i].FlatPaths() {
			if _, seen := f.data[path]; !seen {
				f.cols = append(f.cols, path)
				f.data[path] = make([]any, len(records))
			}
		}
	}

	for i, r := range flat {
		for path, val := range r {
			f.data[path][i] = val
		}
	}
	return f
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.rows }

// Columns returns the column paths in layout order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.cols))
	copy(out, f.cols)
	return out
}

// Column returns the cell slice for a path, or false if absent.
// The slice is the frame's own storage; callers must not resize it.
func (f *Frame) Column(path string) ([]any, bool) {
	c, ok := f.data[path]
	return c, ok
}

// ShiftUp moves each named column up one row: row i takes the value
// formerly at row i+1, and the last row becomes nil. Shifting an empty
// frame is a no-op. Unknown columns are an error.
func (f *Frame) ShiftUp(paths ...string) error {
	for _, path := range paths {
		col, ok := f.data[path]
		if !ok {
			return fmt.Errorf("shift: no column %q", path)
		}
		if len(col) == 0 {
			continue
		}
		copy(col, col[1:])
		col[len(col)-1] = nil
	}
	return nil
}

// DropNullRows removes every row holding a nil in any of the named
// columns. Remaining rows keep their relative order. Unknown columns
// are an error.
func (f *Frame) DropNullRows(paths ...string) error {
	for _, path := range paths {
		if _, ok := f.data[path]; !ok {
			return fmt.Errorf("drop rows: no column %q", path)
		}
	}

	keep := make([]int, 0, f.rows)
	for i := 0; i < f.rows; i++ {
		complete := true
		for _, path := range paths {
			if f.data[path][i] == nil {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}
	if len(keep) == f.rows {
		return nil
	}

	for _, col := range f.cols {
		old := f.data[col]
		next := make([]any, len(keep))
		for j, i := range keep {
			next[j] = old[i]
		}
		f.data[col] = next
	}
	f.rows = len(keep)
	return nil
}

// DropColumns removes the named columns from the frame. Unknown names
// are ignored.
func (f *Frame) DropColumns(paths ...string) {
	for _, path := range paths {
		if _, ok := f.data[path]; !ok {
			continue
		}
		delete(f.data, path)
		for i, c := range f.cols {
			if c == path {
				f.cols = append(f.cols[:i], f.cols[i+1:]...)
				break
			}
		}
	}
}

// Floats coerces a column to float64 for plotting. YAML decoding hands
// back a mix of int and float64 depending on how the scalar was
// written, so both are accepted. Nil cells become NaN; anything else is
// an error.
func (f *Frame) Floats(path string) ([]float64, error) {
	col, ok := f.data[path]
	if !ok {
		return nil, fmt.Errorf("no column %q", path)
	}
	out := make([]float64, len(col))
	for i, v := range col {
		switch n := v.(type) {
		case nil:
			out[i] = math.NaN()
		case float64:
			out[i] = n
		case int:
			out[i] = float64(n)
		case int64:
			out[i] = float64(n)
		case uint64:
			out[i] = float64(n)
		default:
			return nil, fmt.Errorf("column %q row %d: %T is not numeric", path, i, v)
		}
	}
	return out, nil
}

// Ints coerces a column to int64. Used for the two epoch columns, which
// must hold whole non-negative counts. Nil cells are an error here:
// callers drop incomplete rows first.
func (f *Frame) Ints(path string) ([]int64, error) {
	col, ok := f.data[path]
	if !ok {
		return nil, fmt.Errorf("no column %q", path)
	}
	out := make([]int64, len(col))
	for i, v := range col {
		switch n := v.(type) {
		case int:
			out[i] = int64(n)
		case int64:
			out[i] = n
		case uint64:
			out[i] = int64(n)
		case float64:
			out[i] = int64(n)
		default:
			return nil, fmt.Errorf("column %q row %d: %T is not an integer", path, i, v)
		}
		if out[i] < 0 {
			return nil, fmt.Errorf("column %q row %d: negative value %d", path, i, out[i])
		}
	}
	return out, nil
}
