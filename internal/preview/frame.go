// Package preview serves the live design to a local browser so the CSS
// animations can be seen as they will render.
package preview

import (
	"sync/atomic"
	"time"

	"profilecraft/internal/design"
	"profilecraft/internal/style"
)

// Frame is one published state of the editor. Frames are never modified
// after publication.
type Frame struct {
	Version   uint64
	Design    design.Config
	Surface   style.Result
	Playing   bool
	Published time.Time
}

// Publisher hands frames from the editor to the server. Only the editor
// publishes; any number of requests may read.
type Publisher struct {
	latest  atomic.Pointer[Frame]
	version atomic.Uint64
}

// Publish stores a new frame and returns it.
func (p *Publisher) Publish(cfg design.Config, surface style.Result, playing bool) *Frame {
	f := &Frame{
		Version:   p.version.Add(1),
		Design:    cfg.Clone(),
		Surface:   surface,
		Playing:   playing,
		Published: time.Now(),
	}
	p.latest.Store(f)
	return f
}

// Latest returns the most recent frame, or nil before the first Publish.
func (p *Publisher) Latest() *Frame {
	return p.latest.Load()
}
