package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWikilinks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Wikilink
	}{
		{
			name: "no links",
			text: "plain markdown text",
			want: nil,
		},
		{
			name: "single link",
			text: "Link to [[target]]",
			want: []Wikilink{{Target: "target", Start: 8, End: 18}},
		},
		{
			name: "link with alias",
			text: "[[target|display text]]",
			want: []Wikilink{{Target: "target", Alias: "display text", Start: 0, End: 23}},
		},
		{
			name: "alias keeps later pipes",
			text: "[[target|a|b]]",
			want: []Wikilink{{Target: "target", Alias: "a|b", Start: 0, End: 14}},
		},
		{
			name: "multiple links in order",
			text: "[[one]] then [[two]] then [[one]]",
			want: []Wikilink{
				{Target: "one", Start: 0, End: 7},
				{Target: "two", Start: 13, End: 20},
				{Target: "one", Start: 26, End: 33},
			},
		},
		{
			name: "unterminated token yields nothing",
			text: "broken [[target",
			want: nil,
		},
		{
			name: "unterminated token after a valid one",
			text: "[[ok]] and [[broken",
			want: []Wikilink{{Target: "ok", Start: 0, End: 6}},
		},
		{
			name: "empty interior",
			text: "[[]]",
			want: []Wikilink{{Target: "", Start: 0, End: 4}},
		},
		{
			name: "interior whitespace preserved for resolver",
			text: "[[ spaced ]]",
			want: []Wikilink{{Target: " spaced ", Start: 0, End: 12}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWikilinks(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWikilinks_CountMatchesTokens(t *testing.T) {
	// k well-formed tokens parse to exactly k matches, order preserved.
	text := "[[a]] x [[b]] y [[c]] z [[d]]"
	got := ParseWikilinks(text)
	require.Len(t, got, 4)
	for i, want := range []string{"a", "b", "c", "d"} {
		assert.Equal(t, want, got[i].Target)
	}
}

func TestParseWikilinks_Idempotent(t *testing.T) {
	text := "see [[one|1]] and [[two]]"
	first := ParseWikilinks(text)
	second := ParseWikilinks(text)
	assert.Equal(t, first, second)
}

func TestWikilink_Label(t *testing.T) {
	aliased := Wikilink{Target: "page", Alias: "Nice Name"}
	assert.True(t, aliased.HasAlias())
	assert.Equal(t, "Nice Name", aliased.Label())

	bare := Wikilink{Target: "page"}
	assert.False(t, bare.HasAlias())
	assert.Equal(t, "page", bare.Label())
}
