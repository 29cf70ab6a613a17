// Package webgl runs the demos in a browser <canvas>, through a WebGL 1
// context for meshes and a 2D context for painting.
//
// It only builds for GOOS=js GOARCH=wasm.
package webgl
