// Package gl21 runs the demos in a desktop window through OpenGL 2.1.
//
// glfw and OpenGL calls must come from the main thread, so programs using
// this package should call runtime.LockOSThread from an init function in
// package main, and call every Window method from main.
//
// Building requires cgo and the glfw and OpenGL development headers.
package gl21
