package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFilesystemSource_Load(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "# Home\n\nWelcome")
	writeFile(t, root, "about.md", "# About Us\n\nSee [[Home]]")
	writeFile(t, root, "guide/index.md", "setup notes without heading")
	writeFile(t, root, "guide/setup.md", "# Setup\n")
	writeFile(t, root, "assets/readme.txt", "not markdown")

	docs, err := NewFilesystemSource(root, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 4)

	// Lexical order of relative paths
	assert.Equal(t, "about.md", docs[0].SourcePath)
	assert.Equal(t, "guide/index.md", docs[1].SourcePath)
	assert.Equal(t, "guide/setup.md", docs[2].SourcePath)
	assert.Equal(t, "index.md", docs[3].SourcePath)

	// Titles from first heading, filename stem as fallback
	assert.Equal(t, "About Us", docs[0].Title)
	assert.Equal(t, "index", docs[1].Title)
	assert.Equal(t, "Home", docs[3].Title)

	// Index detection
	assert.True(t, docs[1].IsIndex)
	assert.False(t, docs[2].IsIndex)
	assert.True(t, docs[3].IsIndex)

	// Pretty URLs
	assert.Equal(t, "/about/", docs[0].URL)
	assert.Equal(t, "/guide/", docs[1].URL)
	assert.Equal(t, "/guide/setup/", docs[2].URL)
	assert.Equal(t, "/", docs[3].URL)

	// Raw content preserved for the parser
	assert.Contains(t, docs[0].Content, "[[Home]]")
}

func TestFilesystemSource_EmptyDir(t *testing.T) {
	docs, err := NewFilesystemSource(t.TempDir(), zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestFilesystemSource_MissingDir(t *testing.T) {
	_, err := NewFilesystemSource(filepath.Join(t.TempDir(), "nope"), zap.NewNop()).Load(context.Background())
	assert.Error(t, err)
}
