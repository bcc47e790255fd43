package aggregates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgraph/domain/config"
	"docgraph/domain/core/valueobjects"
)

func buildResolverGraph(t *testing.T) (*Graph, *Resolver) {
	t.Helper()
	g, err := NewGraph("TestSite")
	require.NoError(t, err)
	return g, NewResolver(g)
}

func TestResolver_SlugMatch(t *testing.T) {
	g, r := buildResolverGraph(t)
	register(t, g, "guide/setup.md", "Getting Started")

	node, ok := r.Resolve("setup", valueobjects.DocumentKey{})
	require.True(t, ok)
	assert.Equal(t, "TestSite/guide/setup", node.Key().String())

	// Case-insensitive on the slug
	node, ok = r.Resolve("SETUP", valueobjects.DocumentKey{})
	require.True(t, ok)
	assert.Equal(t, 0, node.ID())
}

func TestResolver_TitleMatch(t *testing.T) {
	g, r := buildResolverGraph(t)
	register(t, g, "guide/setup.md", "Getting Started")

	node, ok := r.Resolve("getting started", valueobjects.DocumentKey{})
	require.True(t, ok)
	assert.Equal(t, 0, node.ID())
}

func TestResolver_SlugWinsOverTitle(t *testing.T) {
	g, r := buildResolverGraph(t)
	// Node 0's title collides with node 1's slug; the slug rule runs first.
	register(t, g, "a.md", "target")
	target := register(t, g, "target.md", "Something Else")

	node, ok := r.Resolve("target", valueobjects.DocumentKey{})
	require.True(t, ok)
	assert.Equal(t, target.ID(), node.ID())
}

func TestResolver_FirstRegisteredWinsOnTies(t *testing.T) {
	g, r := buildResolverGraph(t)
	first := register(t, g, "one/page.md", "Shared Title")
	register(t, g, "two/other.md", "Shared Title")

	node, ok := r.Resolve("Shared Title", valueobjects.DocumentKey{})
	require.True(t, ok)
	assert.Equal(t, first.ID(), node.ID())
}

func TestResolver_TrimsWhitespace(t *testing.T) {
	g, r := buildResolverGraph(t)
	register(t, g, "about.md", "About")

	node, ok := r.Resolve("  about  ", valueobjects.DocumentKey{})
	require.True(t, ok)
	assert.Equal(t, 0, node.ID())
}

func TestResolver_Unresolved(t *testing.T) {
	g, r := buildResolverGraph(t)
	register(t, g, "about.md", "About")

	for _, target := range []string{"missing", "", "   ", "abou"} {
		_, ok := r.Resolve(target, valueobjects.DocumentKey{})
		assert.False(t, ok, "target %q should not resolve", target)
	}
}

func TestResolver_SelfReference(t *testing.T) {
	g, r := buildResolverGraph(t)
	self := register(t, g, "about.md", "About")

	node, ok := r.Resolve("About", self.Key())
	require.True(t, ok)
	assert.Equal(t, self.ID(), node.ID())
}

func TestResolver_Deterministic(t *testing.T) {
	g, r := buildResolverGraph(t)
	register(t, g, "a.md", "A")
	register(t, g, "b.md", "B")

	first, ok1 := r.Resolve("b", valueobjects.DocumentKey{})
	second, ok2 := r.Resolve("b", valueobjects.DocumentKey{})
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first.ID(), second.ID())
}

func TestResolver_CaseSensitiveConfig(t *testing.T) {
	cfg := config.DefaultDomainConfig()
	cfg.CaseSensitiveTitles = true
	g, err := NewGraphWithConfig("TestSite", cfg)
	require.NoError(t, err)
	r := NewResolver(g)

	register(t, g, "about.md", "About")

	_, ok := r.Resolve("ABOUT", valueobjects.DocumentKey{})
	assert.False(t, ok)

	_, ok = r.Resolve("about", valueobjects.DocumentKey{})
	assert.True(t, ok)
}
