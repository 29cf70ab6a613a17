// Command primserve is a development server for the browser build. It
// serves a page that loads main.wasm, built from cmd/primwasm, and calls
// every exported routine on its own canvas:
//
//	GOOS=js GOARCH=wasm go build -o web/main.wasm ./cmd/primwasm
//	go run ./cmd/primserve -dir web
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"runtime"

	"github.com/paperboard/glprims/internal/cli"
)

func run() error {
	var (
		listenAddr string
		dir        string
		verbose    bool
	)
	flag.StringVar(&listenAddr, "listen", "localhost:8080", "listen address for http server")
	flag.StringVar(&dir, "dir", ".", "directory holding main.wasm")
	flag.BoolVar(&verbose, "v", false, "log debug output")
	flag.Parse()
	cli.SetupLogging(verbose)

	goroot := os.Getenv("GOROOT")
	if goroot == "" {
		goroot = runtime.GOROOT()
	}
	wasmExec, err := findWASMExec(dir, goroot)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("listen %q failed: %w", listenAddr, err)
	}
	slog.Info("listening", "url", fmt.Sprintf("http://%v", ln.Addr()), "dir", dir, "wasm_exec", wasmExec)
	return http.Serve(ln, newMux(dir, wasmExec))
}

func main() {
	if err := run(); err != nil {
		cli.Fatal(err)
	}
}
