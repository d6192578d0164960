package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfaronov/headerseg/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunSplitStdin(t *testing.T) {
	cfg := config.Config{OutputFormat: config.FormatText}
	var out bytes.Buffer
	err := runSplit(strings.NewReader("Allow: GET,, HEAD\r\n\r\n"), &out, cfg, nil)
	require.NoError(t, err)
	require.Equal(t, "Allow\n\t\"\" \"GET\"\n\t\",\" -\n\t\", \" \"HEAD\"\n", out.String())
}

func TestRunSplitFiles(t *testing.T) {
	dir := t.TempDir()
	// enough files that several reads run at once
	var files []string
	var want []string
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		files = append(files, writeFile(t, dir, name, "X-Name: "+name+"\n"))
	}
	for i, path := range files {
		if i > 0 {
			want = append(want, "")
		}
		want = append(want, "==> "+path+" <==", "X-Name", "\t\"\" \""+filepath.Base(path)+"\"")
	}

	cfg := config.Config{OutputFormat: config.FormatText}
	var out bytes.Buffer
	require.NoError(t, runSplit(nil, &out, cfg, files))
	require.Equal(t, strings.Join(want, "\n")+"\n", out.String())
}

func TestRunSplitDataOnlyJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "req", "GET / HTTP/1.1\nVary: ,accept\n\n")

	cfg := config.Config{OutputFormat: config.FormatJSON, DataOnly: true}
	var out bytes.Buffer
	require.NoError(t, runSplit(nil, &out, cfg, []string{path}))
	require.Contains(t, out.String(), `"data": "accept"`)
	require.NotContains(t, out.String(), `"data": null`)
}

func TestRunSplitErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good", "Accept: a\n")
	bad := writeFile(t, dir, "bad", "not a header\n")

	cfg := config.Config{OutputFormat: config.FormatText}
	var out bytes.Buffer

	err := runSplit(nil, &out, cfg, []string{good, filepath.Join(dir, "missing")})
	require.Error(t, err)

	err = runSplit(nil, &out, cfg, []string{good, bad})
	require.ErrorContains(t, err, bad)
	require.Empty(t, out.String())
}
