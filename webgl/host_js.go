//go:build js && wasm

package webgl

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/maspe36/webgl-cube-demo/gles"
	"github.com/maspe36/webgl-cube-demo/render"
)

var (
	ErrNoDocument = errors.New("webgl: no global document")
	ErrNoCanvas   = errors.New("webgl: canvas element not found")
	ErrNoContext  = errors.New("webgl: graphics context unavailable")
)

// Canvas is an HTML canvas element.  Its size is read from clientWidth and
// clientHeight on every call.
type Canvas struct {
	el js.Value
}

func (c Canvas) Size() (width, height int) {
	return c.el.Get("clientWidth").Int(), c.el.Get("clientHeight").Int()
}

// Host is the browser window: it looks canvases up in the document and
// schedules frames with requestAnimationFrame.
type Host struct {
	window  js.Value
	pending func()
	frame   js.Func
}

var _ render.Host = (*Host)(nil)

// NewHost returns a Host for the global window.
func NewHost() *Host {
	h := &Host{window: js.Global()}
	h.frame = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn := h.pending
		h.pending = nil
		if fn != nil {
			fn()
		}
		return nil
	})
	return h
}

// RequestFrame runs fn at the next animation frame.  A second request made
// before that frame replaces the first.
func (h *Host) RequestFrame(fn func()) {
	h.pending = fn
	h.window.Call("requestAnimationFrame", h.frame)
}

// Surface finds the canvas with the given element id and acquires a context
// of the given kind from it.
func (h *Host) Surface(id, kind string) (gles.Context, render.Surface, error) {
	doc := h.window.Get("document")
	if !doc.Truthy() {
		return nil, nil, ErrNoDocument
	}
	el := doc.Call("getElementById", id)
	if !el.Truthy() {
		return nil, nil, fmt.Errorf("%w: #%s", ErrNoCanvas, id)
	}
	if el.Get("getContext").Type() != js.TypeFunction {
		return nil, nil, fmt.Errorf("%w: #%s is a %s", ErrNoCanvas, id, el.Get("tagName").String())
	}
	gl := el.Call("getContext", kind)
	if !gl.Truthy() {
		return nil, nil, fmt.Errorf("%w: %q", ErrNoContext, kind)
	}
	return NewContext(gl), Canvas{el: el}, nil
}

// Release frees the frame callback.  No frame may be pending.
func (h *Host) Release() {
	h.frame.Release()
}
