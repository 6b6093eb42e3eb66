// pkg/testutil/workspace.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: In-memory filesystems preloaded with schematic files

package testutil

import (
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/schanno/pkg/filesystem"
)

// Workspace returns an in-memory filesystem holding files, keyed by
// absolute path. Parent directories are created as needed.
func Workspace(t *testing.T, files map[string]string) filesystem.FS {
	t.Helper()

	fsys := filesystem.NewMemory()
	for name, content := range files {
		require.NoError(t, fsys.MkdirAll(path.Dir(name), 0755))
		require.NoError(t, fsys.WriteFile(name, []byte(content), 0644))
	}
	return fsys
}

// ReadFile returns the content of name, failing the test if it is missing
func ReadFile(t *testing.T, fsys filesystem.FS, name string) string {
	t.Helper()

	data, err := fsys.ReadFile(name)
	require.NoError(t, err)
	return string(data)
}
