/*
Package webgl runs the cube renderer in a browser.

Context implements gles.Context on top of a JavaScript WebGLRenderingContext
through syscall/js.  JavaScript objects (shaders, programs, buffers, uniform
locations) are kept in per-kind tables and handed out as small integer
handles.  Host finds the canvas element, acquires its context and schedules
frames with window.requestAnimationFrame.

The package only has content when built with GOOS=js GOARCH=wasm.
*/
package webgl
