package entities

import (
	"strconv"

	"docgraph/domain/core/valueobjects"
)

// Node is the graph vertex representing one document. Nodes are owned by the
// Graph aggregate: the id is assigned at registration and never changes, and
// size is touched only by the aggregate's metric pass.
type Node struct {
	id      int
	key     valueobjects.DocumentKey
	title   string
	url     string
	isIndex bool
	size    int
}

// NewNode creates a node record. Callers (the Graph aggregate) are
// responsible for id density and key uniqueness.
func NewNode(id int, key valueobjects.DocumentKey, title, url string, isIndex bool, baseSize int) *Node {
	return &Node{
		id:      id,
		key:     key,
		title:   title,
		url:     url,
		isIndex: isIndex,
		size:    baseSize,
	}
}

// ID returns the node's dense integer id, 0-based in registration order
func (n *Node) ID() int {
	return n.id
}

// StringID returns the id in the stringified form the wire contract uses
// for link endpoints.
func (n *Node) StringID() string {
	return strconv.Itoa(n.id)
}

// Key returns the node's identity key
func (n *Node) Key() valueobjects.DocumentKey {
	return n.key
}

// Title returns the document title
func (n *Node) Title() string {
	return n.title
}

// URL returns the rendered destination reference
func (n *Node) URL() string {
	return n.url
}

// IsIndex reports whether the node represents a directory index document
func (n *Node) IsIndex() bool {
	return n.isIndex
}

// Size returns the node's symbol size, the visual-weight hint derived from
// its incident link count.
func (n *Node) Size() int {
	return n.size
}

// ResetSize restores the size to the baseline before a metric pass
func (n *Node) ResetSize(base int) {
	n.size = base
}

// IncrementSize grows the size by one incident link. Monotonic: the metric
// pass only ever adds.
func (n *Node) IncrementSize() {
	n.size++
}
