package aggregates

import (
	"strings"

	"docgraph/domain/core/entities"
	"docgraph/domain/core/valueobjects"
)

// Resolver maps a raw wikilink target to a registered node. It reads a graph
// whose registration phase has finished; resolution is a pure function of the
// registry and the target, so resolving the same reference twice always
// yields the same answer.
//
// Matching policy, first hit wins:
//  1. the target equals a node key's final path segment (case-insensitive)
//  2. the target equals a node title (case-insensitive)
//
// When several nodes share a slug or title the first registered one wins;
// scanning in id order makes the tie-break deterministic. Anything else is
// unresolved, never guessed at.
type Resolver struct {
	graph *Graph
}

// NewResolver creates a resolver over a fully-registered graph
func NewResolver(graph *Graph) *Resolver {
	return &Resolver{graph: graph}
}

// Resolve maps a raw target phrase to a node, or reports non-resolution.
// The current document's key is accepted so self-references resolve through
// the same path as any other reference; they are not special-cased.
func (r *Resolver) Resolve(rawTarget string, current valueobjects.DocumentKey) (*entities.Node, bool) {
	target := strings.TrimSpace(rawTarget)
	if target == "" {
		return nil, false
	}

	fold := strings.ToLower
	if r.graph.cfg.CaseSensitiveTitles {
		fold = func(s string) string { return s }
	}
	want := fold(target)

	// Rule 1: slug match
	for _, node := range r.graph.nodes {
		if fold(node.Key().Slug()) == want {
			return node, true
		}
	}

	// Rule 2: title match
	for _, node := range r.graph.nodes {
		if fold(node.Title()) == want {
			return node, true
		}
	}

	return nil, false
}
