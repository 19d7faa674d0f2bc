package editor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"profilecraft/internal/raster"
	"profilecraft/internal/style"
)

// Rasterizer turns a resolved surface into encoded image data.
type Rasterizer interface {
	Capture(ctx context.Context, surface style.Result) ([]byte, error)
}

// ExportResult is the outcome of one export.
type ExportResult struct {
	JobID    string
	Filename string
	Data     []byte
	Err      error
}

// Export captures the live design as it is now and rasterizes it on a new
// goroutine. The result is delivered once on the returned channel. Later
// edits do not affect a running export, and the export never changes the
// session.
func (s *Session) Export(ctx context.Context, r Rasterizer) <-chan ExportResult {
	surface := s.Resolve()
	job := uuid.NewString()
	name := raster.Filename(time.Now())
	logger := s.log.With("job", job)

	out := make(chan ExportResult, 1)
	logger.Info("export started", "file", name)
	go func() {
		start := time.Now()
		data, err := r.Capture(ctx, surface)
		if err != nil {
			logger.Error("export failed", "err", err)
		} else {
			logger.Info("export finished", "bytes", len(data), "duration", time.Since(start))
		}
		out <- ExportResult{JobID: job, Filename: name, Data: data, Err: err}
		close(out)
	}()
	return out
}
