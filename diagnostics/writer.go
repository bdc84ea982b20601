package diagnostics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// Writer batches DecisionRows into a temp parquet file and atomically
// renames it into outDir on Finalize, so a reader (cmd/inspector) never
// observes a partially-written file.
type Writer struct {
	outDir string
	tmpDir string

	tmpPath string
	outPath string

	file   *os.File
	writer *parquet.GenericWriter[DecisionRow]

	bufferedRows int
}

// NewWriter opens a fresh batch file under outDir/tmp.
func NewWriter(outDir string) (*Writer, error) {
	if outDir == "" {
		return nil, fmt.Errorf("outDir is required")
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		absOut = outDir
	}
	tmpDir := filepath.Join(absOut, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("decisions_%d.parquet", time.Now().UnixNano())
	tmpPath := filepath.Join(tmpDir, name)
	outPath := filepath.Join(absOut, name)

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open tmp parquet: %w", err)
	}

	w := parquet.NewGenericWriter[DecisionRow](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)
	w.SetKeyValueMetadata("schema", "decision_row_v1")

	return &Writer{
		outDir:  absOut,
		tmpDir:  tmpDir,
		tmpPath: tmpPath,
		outPath: outPath,
		file:    f,
		writer:  w,
	}, nil
}

// BufferedRows reports how many rows have been written but not yet
// finalized.
func (w *Writer) BufferedRows() int { return w.bufferedRows }

// WriteRows appends rows to the batch. Every row is checked first:
// HeuristicNames and HeuristicValues must be the same length, since
// they are two parallel columns standing in for one map column parquet
// cannot encode with a stable schema. A mismatched row would silently
// misalign a heuristic's name with another heuristic's value once read
// back, so the whole call is rejected rather than writing any of it.
func (w *Writer) WriteRows(rows []DecisionRow) error {
	if w.writer == nil || w.file == nil {
		return fmt.Errorf("diagnostics writer is closed")
	}
	if len(rows) == 0 {
		return nil
	}
	for i, row := range rows {
		if len(row.HeuristicNames) != len(row.HeuristicValues) {
			return fmt.Errorf("row %d (game %s turn %d): %d heuristic names but %d values",
				i, row.GameID, row.Turn, len(row.HeuristicNames), len(row.HeuristicValues))
		}
	}
	if _, err := w.writer.Write(rows); err != nil {
		return err
	}
	w.bufferedRows += len(rows)
	return nil
}

// Finalize closes the parquet writer and moves the file from tmp/ into
// outDir. If nothing was written, the tmp file is removed and outPath
// is returned empty.
func (w *Writer) Finalize() (outPath string, rows int, err error) {
	if w.writer == nil && w.file == nil {
		return "", 0, nil
	}
	rows = w.bufferedRows
	outPath = w.outPath

	var closeErr error
	if w.writer != nil {
		closeErr = w.writer.Close()
		w.writer = nil
	}
	var fileErr error
	if w.file != nil {
		_ = w.file.Sync()
		fileErr = w.file.Close()
		w.file = nil
	}
	if closeErr != nil {
		return "", 0, fmt.Errorf("close parquet writer: %w", closeErr)
	}
	if fileErr != nil {
		return "", 0, fmt.Errorf("close parquet file: %w", fileErr)
	}

	if rows == 0 {
		_ = os.Remove(w.tmpPath)
		return "", 0, nil
	}
	if err := os.Rename(w.tmpPath, w.outPath); err != nil {
		return "", 0, fmt.Errorf("rename parquet: %w", err)
	}
	return outPath, rows, nil
}
