package queries

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgraph/domain/core/aggregates"
	"docgraph/domain/core/valueobjects"
)

func buildGraph(t *testing.T) *aggregates.Graph {
	t.Helper()
	g, err := aggregates.NewGraph("TestSite")
	require.NoError(t, err)

	homeKey, err := valueobjects.NewDocumentKey("TestSite", "index.md")
	require.NoError(t, err)
	aboutKey, err := valueobjects.NewDocumentKey("TestSite", "about.md")
	require.NoError(t, err)

	home, err := g.RegisterNode(homeKey, "Home", "/", true)
	require.NoError(t, err)
	about, err := g.RegisterNode(aboutKey, "About", "/about/", false)
	require.NoError(t, err)

	_, err = g.AddLink(home, about)
	require.NoError(t, err)
	g.ComputeSymbolSizes()

	return g
}

func TestNewGraphData(t *testing.T) {
	data := NewGraphData(buildGraph(t))

	require.Len(t, data.Nodes, 2)
	home, ok := data.Nodes["TestSite/index"]
	require.True(t, ok)
	assert.Equal(t, 0, home.ID)
	assert.True(t, home.IsIndex)
	assert.Equal(t, 2, home.SymbolSize)

	about, ok := data.Nodes["TestSite/about"]
	require.True(t, ok)
	assert.Equal(t, 1, about.ID)
	assert.False(t, about.IsIndex)

	require.Len(t, data.Links, 1)
	assert.Equal(t, GraphLink{Source: "0", Target: "1"}, data.Links[0])
}

func TestGraphData_WireFieldNames(t *testing.T) {
	// The consumer schema is a wire contract: camel-cased symbolSize,
	// snake-cased is_index, string link endpoints.
	raw, err := json.Marshal(NewGraphData(buildGraph(t)))
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Contains(t, decoded, "nodes")
	require.Contains(t, decoded, "links")

	var nodes map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(decoded["nodes"], &nodes))
	home := nodes["TestSite/index"]
	assert.Contains(t, home, "id")
	assert.Contains(t, home, "symbolSize")
	assert.Contains(t, home, "is_index")

	var links []map[string]interface{}
	require.NoError(t, json.Unmarshal(decoded["links"], &links))
	require.Len(t, links, 1)
	assert.Equal(t, "0", links[0]["source"])
	assert.Equal(t, "1", links[0]["target"])
}
