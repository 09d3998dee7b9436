package views

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"sensor-plotter/models"
)

// CSVWriter is a buffered CSV writer for table exports. The pipeline is
// single-threaded, so unlike a live logger it flushes once on Close
// rather than on a timer.
type CSVWriter struct {
	file *os.File
	buf  *bufio.Writer
	csv  *csv.Writer
	rows uint64
}

// NewCSVWriter creates the file and writes the header row.
func NewCSVWriter(path string, header []string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv create %s: %w", path, err)
	}

	bw := bufio.NewWriterSize(f, 64*1024)
	cw := csv.NewWriter(bw)
	if err := cw.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("csv write header: %w", err)
	}

	return &CSVWriter{file: f, buf: bw, csv: cw}, nil
}

// WriteRow appends one data row. Encoding errors surface on Close.
func (w *CSVWriter) WriteRow(row []string) {
	_ = w.csv.Write(row)
	w.rows++
}

// Rows returns the number of data rows written (excludes header).
func (w *CSVWriter) Rows() uint64 { return w.rows }

// Close flushes buffered rows and closes the file, reporting any
// deferred write error.
func (w *CSVWriter) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("csv flush: %w", err)
	}
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("csv flush: %w", err)
	}
	return w.file.Close()
}

// ExportFrame writes the reconstructed table to a CSV file: a leading
// RFC 3339 time column followed by the frame's columns in layout order.
// Returns the number of data rows written.
func ExportFrame(f *models.Frame, times []time.Time, path string) (uint64, error) {
	if f.Len() != len(times) {
		return 0, fmt.Errorf("frame has %d rows but timeline has %d", f.Len(), len(times))
	}

	cols := f.Columns()
	header := append([]string{"time"}, cols...)
	w, err := NewCSVWriter(path, header)
	if err != nil {
		return 0, err
	}

	row := make([]string, len(header))
	for i := 0; i < f.Len(); i++ {
		row[0] = times[i].Format(time.RFC3339Nano)
		for j, col := range cols {
			cells, _ := f.Column(col)
			row[j+1] = formatCell(cells[i])
		}
		w.WriteRow(row)
	}

	rows := w.Rows()
	if err := w.Close(); err != nil {
		return rows, err
	}
	return rows, nil
}

// formatCell renders one cell; nil cells export as empty fields.
func formatCell(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case bool:
		return strconv.FormatBool(n)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case time.Time:
		return n.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(n)
	}
}
