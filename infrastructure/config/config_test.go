package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "Site", cfg.Namespace)
	assert.Equal(t, "index", cfg.IndexMarker)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SITE_NAMESPACE", "MyWiki")
	t.Setenv("DOCS_DIR", "/srv/docs")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ENABLE_CORS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "MyWiki", cfg.Namespace)
	assert.Equal(t, "/srv/docs", cfg.DocsDir)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.EnableCORS)
}

func TestLoadConfig_RejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "chaos")

	_, err := LoadConfig()
	assert.Error(t, err)
}
