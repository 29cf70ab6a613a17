package main

import (
	_ "embed"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed index.html
var indexHTML string

var indexModTime = time.Now()

// wasmExecCandidates lists where Go releases have shipped wasm_exec.js,
// newest first.
var wasmExecCandidates = []string{
	filepath.Join("lib", "wasm", "wasm_exec.js"),
	filepath.Join("misc", "wasm", "wasm_exec.js"),
}

// findWASMExec returns the wasm_exec.js to serve: one in dir wins over the
// copy shipped under goroot.
func findWASMExec(dir, goroot string) (string, error) {
	paths := []string{filepath.Join(dir, "wasm_exec.js")}
	if goroot != "" {
		for _, rel := range wasmExecCandidates {
			paths = append(paths, filepath.Join(goroot, rel))
		}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.New("wasm_exec.js not found in -dir or GOROOT")
}

type serveFile string

func (sf serveFile) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	http.ServeFile(w, req, string(sf))
}

// newMux serves the embedded index page at /, wasmExec at /wasm_exec.js and
// everything else, main.wasm included, from dir.
func newMux(dir, wasmExec string) *http.ServeMux {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(dir))
	mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/" || req.URL.Path == "/index.html" {
			http.ServeContent(w, req, "index.html", indexModTime, strings.NewReader(indexHTML))
			return
		}
		if strings.HasSuffix(req.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		files.ServeHTTP(w, req)
	})
	mux.Handle("/wasm_exec.js", serveFile(wasmExec))
	return mux
}
