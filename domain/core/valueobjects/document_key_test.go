package valueobjects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgraph/domain/config"
	pkgerrors "docgraph/pkg/errors"
)

func TestNewDocumentKey(t *testing.T) {
	tests := []struct {
		name       string
		namespace  string
		sourcePath string
		want       string
		wantErr    bool
	}{
		{
			name:       "plain page",
			namespace:  "TestSite",
			sourcePath: "about.md",
			want:       "TestSite/about",
		},
		{
			name:       "nested page",
			namespace:  "TestSite",
			sourcePath: "guide/setup.md",
			want:       "TestSite/guide/setup",
		},
		{
			name:       "nested index folds to its directory",
			namespace:  "TestSite",
			sourcePath: "guide/index.md",
			want:       "TestSite/guide",
		},
		{
			name:       "deeply nested index folds one level",
			namespace:  "TestSite",
			sourcePath: "a/b/index.md",
			want:       "TestSite/a/b",
		},
		{
			name:       "top-level index keeps its segment",
			namespace:  "TestSite",
			sourcePath: "index.md",
			want:       "TestSite/index",
		},
		{
			name:       "leading slash is tolerated",
			namespace:  "TestSite",
			sourcePath: "/docs/page.md",
			want:       "TestSite/docs/page",
		},
		{
			name:       "extension-free path",
			namespace:  "TestSite",
			sourcePath: "notes/todo",
			want:       "TestSite/notes/todo",
		},
		{
			name:       "empty path",
			namespace:  "TestSite",
			sourcePath: "",
			wantErr:    true,
		},
		{
			name:       "whitespace-only path",
			namespace:  "TestSite",
			sourcePath: "   ",
			wantErr:    true,
		},
		{
			name:       "empty namespace",
			namespace:  "",
			sourcePath: "about.md",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewDocumentKey(tt.namespace, tt.sourcePath)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key.String())
		})
	}
}

func TestNewDocumentKey_EmptyPathIsInvalidPath(t *testing.T) {
	_, err := NewDocumentKey("TestSite", "")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsInvalidPath(err))
}

func TestNewDocumentKey_Deterministic(t *testing.T) {
	a, err := NewDocumentKey("Site", "guide/index.md")
	require.NoError(t, err)
	b, err := NewDocumentKey("Site", "guide/index.md")
	require.NoError(t, err)
	assert.True(t, a.Equals(b))
}

func TestNewDocumentKey_IndexFoldingMatchesDirectory(t *testing.T) {
	// The folding property: an index document and its containing directory
	// produce the same key.
	indexKey, err := NewDocumentKey("Site", "guide/index.md")
	require.NoError(t, err)
	dirKey, err := NewDocumentKey("Site", "guide/")
	require.NoError(t, err)
	assert.Equal(t, dirKey.String(), indexKey.String())
}

func TestNewDocumentKeyWithConfig_FoldRootIndex(t *testing.T) {
	cfg := config.DefaultDomainConfig()
	cfg.FoldRootIndex = true

	key, err := NewDocumentKeyWithConfig("TestSite", "index.md", cfg)
	require.NoError(t, err)
	assert.Equal(t, "TestSite", key.String())
	assert.Equal(t, "TestSite", key.Slug())
}

func TestDocumentKey_Slug(t *testing.T) {
	key, err := NewDocumentKey("Site", "guide/setup.md")
	require.NoError(t, err)
	assert.Equal(t, "setup", key.Slug())

	folded, err := NewDocumentKey("Site", "guide/index.md")
	require.NoError(t, err)
	assert.Equal(t, "guide", folded.Slug())
}

func TestDocumentKey_JSONRoundTrip(t *testing.T) {
	key, err := NewDocumentKey("Site", "about.md")
	require.NoError(t, err)

	data, err := json.Marshal(key)
	require.NoError(t, err)
	assert.Equal(t, `"Site/about"`, string(data))

	var decoded DocumentKey
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, key.Equals(decoded))
}
