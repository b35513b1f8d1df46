package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pkg", "bindings", "oracle", "oracle.gen.go")
	w := NewWriter(nil)

	require.NoError(t, w.Write(path, []byte("package oracle\n")))
	require.NoError(t, w.Write(path, []byte("package oracle // v2\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package oracle // v2\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm()&0o644)
}
