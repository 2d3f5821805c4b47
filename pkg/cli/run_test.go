package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cidrcalc/cidrcalc/pkg/config"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func testContext() *Context {
	return &Context{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: config.Default(),
	}
}

func TestRunCmdPrintsNonUnitResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("let a = 10.0.0.0/8\na - 10.0.0.0/9\n"), 0o644))

	cmd := &RunCmd{File: path}
	out := captureStdout(t, func() {
		require.NoError(t, cmd.Run(testContext()))
	})

	assert.Contains(t, out, "10.128.0.0/9")
}

func TestRunCmdReturnsErrorOnUnboundIdentifier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("missing\n"), 0o644))

	cmd := &RunCmd{File: path}
	err := cmd.Run(testContext())
	assert.Error(t, err)
}

func TestInlineBlocksFormatsCommaSeparated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("0.0.0.0/1 - 0.0.0.0/3\n"), 0o644))

	cmd := &RunCmd{File: path}
	out := captureStdout(t, func() {
		require.NoError(t, cmd.Run(testContext()))
	})

	var buf bytes.Buffer
	buf.WriteString(out)
	assert.Contains(t, buf.String(), "[")
	assert.Contains(t, buf.String(), "]")
	assert.Contains(t, buf.String(), "[32.0.0.0/3, 64.0.0.0/2]")
}
