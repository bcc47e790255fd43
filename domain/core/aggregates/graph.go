package aggregates

import (
	"strconv"

	"docgraph/domain/config"
	"docgraph/domain/core/entities"
	"docgraph/domain/core/valueobjects"
	pkgerrors "docgraph/pkg/errors"
)

// Graph is the aggregate root for one assembly run. It is built fresh per
// run and owned by the caller: there is no process-wide node table. The
// aggregate is the sole source of truth for which documents exist, and it
// enforces the run's two-phase lifecycle: every node registered before the
// first link, links frozen before the metric pass.
type Graph struct {
	namespace string
	cfg       *config.DomainConfig

	nodesByKey map[string]*entities.Node
	nodes      []*entities.Node // id order
	links      []Link
}

// Link is a directed edge between two registered nodes. Endpoint ids are
// carried as stringified integers because that is the shape the
// visualization consumer expects; it is a wire contract, not a convenience.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// NewGraph creates an empty graph for a single run
func NewGraph(namespace string) (*Graph, error) {
	return NewGraphWithConfig(namespace, config.DefaultDomainConfig())
}

// NewGraphWithConfig creates an empty graph with explicit domain rules
func NewGraphWithConfig(namespace string, cfg *config.DomainConfig) (*Graph, error) {
	if namespace == "" {
		return nil, pkgerrors.NewValidationError("namespace cannot be empty")
	}
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	return &Graph{
		namespace:  namespace,
		cfg:        cfg,
		nodesByKey: make(map[string]*entities.Node),
	}, nil
}

// Namespace returns the namespace this run was built under
func (g *Graph) Namespace() string {
	return g.namespace
}

// RegisterNode inserts a new node with the next sequential id. Registration
// is append-only; a duplicate key is a fatal upstream integrity problem, not
// a recoverable condition.
func (g *Graph) RegisterNode(key valueobjects.DocumentKey, title, url string, isIndex bool) (*entities.Node, error) {
	if key.IsZero() {
		return nil, pkgerrors.NewValidationError("document key cannot be empty")
	}
	if len(g.links) > 0 {
		return nil, pkgerrors.NewConflictError("cannot register nodes after linking has started")
	}
	if _, exists := g.nodesByKey[key.String()]; exists {
		return nil, pkgerrors.NewDuplicateKeyError(key.String())
	}
	if len(g.nodes) >= g.cfg.MaxNodesPerGraph {
		return nil, pkgerrors.NewConflictError("maximum nodes reached")
	}

	node := entities.NewNode(len(g.nodes), key, title, url, isIndex, g.cfg.BaseSymbolSize)
	g.nodesByKey[key.String()] = node
	g.nodes = append(g.nodes, node)

	return node, nil
}

// NodeByKey retrieves a node by identity key; read-only
func (g *Graph) NodeByKey(key valueobjects.DocumentKey) (*entities.Node, bool) {
	node, ok := g.nodesByKey[key.String()]
	return node, ok
}

// NodeByID retrieves a node by its dense integer id
func (g *Graph) NodeByID(id int) (*entities.Node, bool) {
	if id < 0 || id >= len(g.nodes) {
		return nil, false
	}
	return g.nodes[id], true
}

// Nodes returns all nodes in id order
func (g *Graph) Nodes() []*entities.Node {
	// Return a copy to maintain encapsulation
	nodes := make([]*entities.Node, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// NodeCount returns the number of registered nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// AddLink appends a directed link between two registered nodes. Links keep
// discovery order and are never deduplicated; a document citing another twice
// is two links, and a self-link is a link like any other.
func (g *Graph) AddLink(source, target *entities.Node) (Link, error) {
	if source == nil || target == nil {
		return Link{}, pkgerrors.NewValidationError("link endpoints cannot be nil")
	}
	if _, ok := g.NodeByID(source.ID()); !ok {
		return Link{}, pkgerrors.NewNotFoundError("source node")
	}
	if _, ok := g.NodeByID(target.ID()); !ok {
		return Link{}, pkgerrors.NewNotFoundError("target node")
	}
	if !g.cfg.AllowSelfLinks && source.ID() == target.ID() {
		return Link{}, pkgerrors.NewValidationError("self-links are disabled")
	}
	if len(g.links) >= g.cfg.MaxLinksPerGraph {
		return Link{}, pkgerrors.NewConflictError("maximum links reached")
	}

	link := Link{
		Source: source.StringID(),
		Target: target.StringID(),
	}

	if g.cfg.DeduplicateLinks {
		for _, existing := range g.links {
			if existing == link {
				return existing, nil
			}
		}
	}

	g.links = append(g.links, link)
	return link, nil
}

// Links returns all links in discovery order
func (g *Graph) Links() []Link {
	links := make([]Link, len(g.links))
	copy(links, g.links)
	return links
}

// LinkCount returns the number of resolved links
func (g *Graph) LinkCount() int {
	return len(g.links)
}

// ComputeSymbolSizes recomputes every node's symbol size from its total
// incident link count: baseline plus one per link end. A self-link touches
// its node twice, once per end. Idempotent across repeated calls.
func (g *Graph) ComputeSymbolSizes() {
	for _, node := range g.nodes {
		node.ResetSize(g.cfg.BaseSymbolSize)
	}

	for _, link := range g.links {
		if source, ok := g.nodeByStringID(link.Source); ok {
			source.IncrementSize()
		}
		if target, ok := g.nodeByStringID(link.Target); ok {
			target.IncrementSize()
		}
	}
}

// Density returns the ratio of links to the maximum possible directed pairs
func (g *Graph) Density() float64 {
	n := len(g.nodes)
	if n < 2 {
		return 0
	}
	return float64(len(g.links)) / float64(n*(n-1))
}

// Clusters identifies groups of mutually reachable nodes, treating links as
// undirected. Used purely for run statistics.
func (g *Graph) Clusters() [][]int {
	adjacency := make(map[int][]int, len(g.nodes))
	for _, link := range g.links {
		s, sok := g.nodeByStringID(link.Source)
		t, tok := g.nodeByStringID(link.Target)
		if !sok || !tok {
			continue
		}
		adjacency[s.ID()] = append(adjacency[s.ID()], t.ID())
		adjacency[t.ID()] = append(adjacency[t.ID()], s.ID())
	}

	visited := make(map[int]bool, len(g.nodes))
	var clusters [][]int

	for _, node := range g.nodes {
		if visited[node.ID()] {
			continue
		}
		cluster := []int{}
		stack := []int{node.ID()}
		visited[node.ID()] = true
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cluster = append(cluster, current)
			for _, next := range adjacency[current] {
				if !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}
		clusters = append(clusters, cluster)
	}

	return clusters
}

// Validate ensures graph invariants: ids dense in registration order and no
// link pointing outside the registry.
func (g *Graph) Validate() error {
	for i, node := range g.nodes {
		if node.ID() != i {
			return pkgerrors.NewInternalError("node ids are not dense in registration order")
		}
	}
	if len(g.nodesByKey) != len(g.nodes) {
		return pkgerrors.NewInternalError("node key index out of sync")
	}
	for _, link := range g.links {
		if _, ok := g.nodeByStringID(link.Source); !ok {
			return pkgerrors.NewInternalError("link references unknown source node")
		}
		if _, ok := g.nodeByStringID(link.Target); !ok {
			return pkgerrors.NewInternalError("link references unknown target node")
		}
	}
	return nil
}

func (g *Graph) nodeByStringID(id string) (*entities.Node, bool) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, false
	}
	return g.NodeByID(n)
}
