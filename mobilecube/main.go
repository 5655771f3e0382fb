//go:build darwin || linux || windows

// Mobilecube is the native version of the rotating cube, running on
// golang.org/x/mobile/app.
//
// On the desktop run it directly:
//
//	$ go run github.com/maspe36/webgl-cube-demo/mobilecube
//
// Or build an Android APK with gomobile:
//
//	$ gomobile build github.com/maspe36/webgl-cube-demo/mobilecube
//
// The renderer is created when the app becomes visible and released when it
// goes away.  Frames are driven by paint events the app sends to itself, so
// the cube advances once per published frame.
package main

import (
	"log"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/exp/app/debug"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"

	"github.com/maspe36/webgl-cube-demo/mobilegl"
	"github.com/maspe36/webgl-cube-demo/render"
)

// surface tracks the latest size event.
type surface struct {
	sz size.Event
}

func (s *surface) Size() (int, int) { return s.sz.WidthPx, s.sz.HeightPx }

// painter schedules frames on the app's own paint events.
type painter struct {
	a       app.App
	pending func()
}

func (p *painter) RequestFrame(fn func()) {
	p.pending = fn
	p.a.Send(paint.Event{})
}

func (p *painter) paint() {
	fn := p.pending
	p.pending = nil
	if fn != nil {
		fn()
	}
}

var (
	images   *glutil.Images
	fps      *debug.FPS
	renderer *render.Renderer
)

func main() {
	app.Main(func(a app.App) {
		var glctx gl.Context
		surf := &surface{}
		sched := &painter{a: a}
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					onStart(glctx, surf, sched)
				case lifecycle.CrossOff:
					onStop(sched)
					glctx = nil
				}
			case size.Event:
				surf.sz = e
			case paint.Event:
				if glctx == nil || e.External {
					// As we are actively painting as fast as
					// we can (usually 60 FPS), skip any paint
					// events sent by the system.
					continue
				}
				sched.paint()
				if fps != nil {
					fps.Draw(surf.sz)
				}
				a.Publish()
			}
		}
	})
}

func onStart(glctx gl.Context, surf *surface, sched *painter) {
	cfg := render.DefaultConfig()
	// The window repaints continuously; per-frame matrix dumps are left to
	// the browser console.
	cfg.Log = nil

	var err error
	renderer, err = render.New(mobilegl.New(glctx), surf, cfg)
	if err != nil {
		log.Printf("error creating cube renderer: %v", err)
		return
	}

	images = glutil.NewImages(glctx)
	fps = debug.NewFPS(images)

	render.Run(sched, renderer)
}

func onStop(sched *painter) {
	sched.pending = nil
	if renderer != nil {
		renderer.Release()
		renderer = nil
	}
	if fps != nil {
		fps.Release()
		images.Release()
		fps, images = nil, nil
	}
}
