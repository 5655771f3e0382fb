//go:build js && wasm

// Webcube draws a rotating cube into the page's "viewer" canvas.
//
// Build it to WebAssembly and serve this directory together with the Go
// runtime's wasm_exec.js:
//
//	$ GOOS=js GOARCH=wasm go build -o cube.wasm github.com/maspe36/webgl-cube-demo/webcube
//	$ cp "$(go env GOROOT)/misc/wasm/wasm_exec.js" .
//
// index.html loads wasm_exec.js and instantiates cube.wasm.  The projection
// and model-view matrices of every frame are printed to the browser console.
package main

import (
	"log"

	"github.com/maspe36/webgl-cube-demo/render"
	"github.com/maspe36/webgl-cube-demo/webgl"
)

func main() {
	log.SetFlags(0)

	host := webgl.NewHost()
	if _, err := render.Start(host, render.DefaultConfig()); err != nil {
		log.Printf("error starting cube renderer: %v", err)
		host.Release()
		return
	}

	// Frames are driven by requestAnimationFrame callbacks, which need the Go
	// runtime to stay alive.
	select {}
}
