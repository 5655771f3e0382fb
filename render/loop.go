package render

import (
	"fmt"

	"github.com/maspe36/webgl-cube-demo/gles"
)

// Scheduler runs fn once at the next display refresh.
type Scheduler interface {
	RequestFrame(fn func())
}

// Ticker is one iteration of a frame loop.
type Ticker interface {
	Tick()
}

type loop struct {
	sched  Scheduler
	ticker Ticker
}

func (l *loop) frame() {
	l.ticker.Tick()
	l.sched.RequestFrame(l.frame)
}

// Run arms s with a frame callback that ticks t and then re-arms itself.  The
// loop has no exit; it lasts as long as the scheduler keeps calling back.
func Run(s Scheduler, t Ticker) {
	l := &loop{sched: s, ticker: t}
	s.RequestFrame(l.frame)
}

// Host provides the graphics context of a named surface and schedules frames
// for it.
type Host interface {
	Scheduler
	Surface(id, kind string) (gles.Context, Surface, error)
}

// Start acquires the configured surface from h, builds the renderer and
// starts its frame loop.
func Start(h Host, cfg Config) (*Renderer, error) {
	glctx, surface, err := h.Surface(cfg.CanvasID, cfg.ContextKind)
	if err != nil {
		return nil, fmt.Errorf("render: acquire %s context for %q: %w", cfg.ContextKind, cfg.CanvasID, err)
	}
	r, err := New(glctx, surface, cfg)
	if err != nil {
		return nil, err
	}
	Run(h, r)
	return r, nil
}
