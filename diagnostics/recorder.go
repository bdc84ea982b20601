package diagnostics

import (
	"log/slog"
	"sync"
	"time"
)

// Recorder buffers DecisionRows behind a mutex and flushes them to a
// fresh Writer whenever the buffer crosses flushEvery rows, so a single
// slow move never blocks the next one on parquet I/O.
type Recorder struct {
	mu         sync.Mutex
	outDir     string
	flushEvery int
	buf        []DecisionRow
	log        *slog.Logger
}

// NewRecorder returns a Recorder that flushes to outDir every
// flushEvery rows. A nil logger disables flush-failure logging.
func NewRecorder(outDir string, flushEvery int, log *slog.Logger) *Recorder {
	if flushEvery <= 0 {
		flushEvery = 200
	}
	return &Recorder{outDir: outDir, flushEvery: flushEvery, log: log}
}

// Record appends a row and flushes if the buffer is full.
func (r *Recorder) Record(row DecisionRow) {
	r.mu.Lock()
	r.buf = append(r.buf, row)
	shouldFlush := len(r.buf) >= r.flushEvery
	r.mu.Unlock()

	if shouldFlush {
		r.Flush()
	}
}

// Flush writes any buffered rows to a new parquet batch file. It is
// safe to call concurrently and on an empty buffer (a no-op).
func (r *Recorder) Flush() {
	r.mu.Lock()
	pending := r.buf
	r.buf = nil
	r.mu.Unlock()

	if len(pending) == 0 {
		return
	}

	w, err := NewWriter(r.outDir)
	if err != nil {
		r.logError("open diagnostics batch", err)
		return
	}
	if err := w.WriteRows(pending); err != nil {
		r.logError("write diagnostics rows", err)
		return
	}
	if _, _, err := w.Finalize(); err != nil {
		r.logError("finalize diagnostics batch", err)
	}
}

func (r *Recorder) logError(msg string, err error) {
	if r.log == nil {
		return
	}
	r.log.Error(msg, "error", err, "time", time.Now())
}
