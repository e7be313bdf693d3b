package reorganizer

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type testOutput struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newTestReorganizer(t *testing.T, fs afero.Fs, base string, verbosity VerbosityLevel) (*reorganizer, *testOutput) {
	t.Helper()
	output := &testOutput{}
	r := makeReorganizer(fs, DefaultLayout(base), CreateConfig{
		Verbosity: verbosity,
		Logger:    zaptest.NewLogger(t),
		Stdout:    &output.stdout,
		Stderr:    &output.stderr,
	})
	return r, output
}

func writeTestFile(t *testing.T, fs afero.Fs, path string, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func readTestFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err, path)
	return string(content)
}

func requireAbsent(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	_, err := fs.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist, path)
}

// snapshot maps every path below root to the content of regular files (directories map to "/").
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		if d.IsDir() {
			tree[rel] = "/"
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree[rel] = string(content)
		return nil
	})
	require.NoError(t, err)
	return tree
}
