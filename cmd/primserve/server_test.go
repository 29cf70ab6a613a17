package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindWASMExec(t *testing.T) {
	dir := t.TempDir()
	goroot := t.TempDir()

	_, err := findWASMExec(dir, goroot)
	assert.Error(t, err)

	misc := filepath.Join(goroot, "misc", "wasm", "wasm_exec.js")
	require.NoError(t, os.MkdirAll(filepath.Dir(misc), 0o755))
	require.NoError(t, os.WriteFile(misc, []byte("// misc"), 0o644))
	got, err := findWASMExec(dir, goroot)
	require.NoError(t, err)
	assert.Equal(t, misc, got)

	local := filepath.Join(dir, "wasm_exec.js")
	require.NoError(t, os.WriteFile(local, []byte("// local"), 0o644))
	got, err = findWASMExec(dir, goroot)
	require.NoError(t, err)
	assert.Equal(t, local, got)
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestMux(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.wasm"), []byte("\x00asm"), 0o644))
	exec := filepath.Join(dir, "exec.js")
	require.NoError(t, os.WriteFile(exec, []byte("class Go {}"), 0o644))

	srv := httptest.NewServer(newMux(dir, exec))
	defer srv.Close()

	resp, body := get(t, srv, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `drawSphere`)
	assert.Contains(t, body, `<canvas id="circle"`)

	resp, body = get(t, srv, "/main.wasm")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/wasm", resp.Header.Get("Content-Type"))
	assert.Equal(t, "\x00asm", body)

	_, body = get(t, srv, "/wasm_exec.js")
	assert.Equal(t, "class Go {}", body)

	resp, _ = get(t, srv, "/missing.js")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
