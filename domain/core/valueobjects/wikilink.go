package valueobjects

import "strings"

const (
	openDelim  = "[["
	closeDelim = "]]"
	aliasSep   = '|'
)

// Wikilink is a value object for one inline reference token, either
// [[target]] or [[target|alias]]. Start and End are byte offsets of the whole
// token within the scanned text.
type Wikilink struct {
	Target string
	Alias  string
	Start  int
	End    int
}

// HasAlias reports whether the token carried a display alias
func (w Wikilink) HasAlias() bool {
	return w.Alias != ""
}

// Label returns the text the reference displays: the alias when present,
// the target otherwise.
func (w Wikilink) Label() string {
	if w.Alias != "" {
		return w.Alias
	}
	return w.Target
}

// ParseWikilinks scans text for wikilink tokens in left-to-right order.
// The scan is a plain delimiter walk rather than a pattern engine so the
// edge cases stay explicit: an unterminated "[[" produces no match, matches
// are never deduplicated, and re-scanning the same text yields the same
// result. Malformed tokens are skipped silently; references are opportunistic
// syntax, not mandatory structure.
func ParseWikilinks(text string) []Wikilink {
	var links []Wikilink

	pos := 0
	for {
		open := strings.Index(text[pos:], openDelim)
		if open < 0 {
			return links
		}
		open += pos

		rel := strings.Index(text[open+len(openDelim):], closeDelim)
		if rel < 0 {
			// No closing delimiter before end of text
			return links
		}
		close := open + len(openDelim) + rel

		interior := text[open+len(openDelim) : close]
		target, alias := splitAlias(interior)

		links = append(links, Wikilink{
			Target: target,
			Alias:  alias,
			Start:  open,
			End:    close + len(closeDelim),
		})

		pos = close + len(closeDelim)
	}
}

// splitAlias splits the token interior at the first pipe. The target segment
// never contains a pipe; everything after the first pipe is the alias.
func splitAlias(interior string) (target, alias string) {
	if i := strings.IndexByte(interior, aliasSep); i >= 0 {
		return interior[:i], interior[i+1:]
	}
	return interior, ""
}
