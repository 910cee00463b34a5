package helpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TempFile describes a file created by TempDirWithFiles. A non-zero Age
// backdates the files modification time, as if it were orphaned by an
// earlier ingest.
type TempFile struct {
	Name    string
	Content []byte
	Age     time.Duration
}

// TempDirWithFiles creates a temporary directory (removed when the test ends)
// containing the files described, returning the directory and the path of
// each file in the order given.
func TempDirWithFiles(t *testing.T, files ...TempFile) (string, []string) {
	dirPath := t.TempDir()
	filePaths := make([]string, 0, len(files))
	for _, file := range files {
		path := filepath.Join(dirPath, file.Name)
		require.NoError(t, os.WriteFile(path, file.Content, 0o644), "failed to create temporary file %s", file.Name)

		if file.Age > 0 {
			modTime := time.Now().Add(-file.Age)
			require.NoError(t, os.Chtimes(path, modTime, modTime))
		}

		filePaths = append(filePaths, path)
	}

	return dirPath, filePaths
}

// RequireDirEmpty fails the test if the directory given contains any entries.
func RequireDirEmpty(t *testing.T, dirPath string, msgAndArgs ...any) {
	entries, err := os.ReadDir(dirPath)
	require.NoError(t, err)
	require.Empty(t, entries, msgAndArgs...)
}
