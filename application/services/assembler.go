package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docgraph/application/ports"
	"docgraph/domain/config"
	"docgraph/domain/core/aggregates"
	"docgraph/domain/core/entities"
	"docgraph/domain/core/validators"
	"docgraph/domain/core/valueobjects"
	pkgerrors "docgraph/pkg/errors"
)

// AssemblerService orchestrates one full graph-construction run: register
// every document as a node, then parse and resolve every wikilink, then
// derive symbol sizes. The phases are strictly sequential: linking needs
// the registry complete so a reference to a document later in input order
// still resolves.
type AssemblerService struct {
	source    ports.DocumentSource
	validator *validators.DocumentValidator
	namespace string
	cfg       *config.DomainConfig
	logger    *zap.Logger
}

// BuildResult is the outcome of one assembly run
type BuildResult struct {
	RunID      string
	Namespace  string
	Graph      *aggregates.Graph
	Unresolved int
	BuiltAt    time.Time
	Duration   time.Duration
}

// NewAssemblerService creates an assembler
func NewAssemblerService(
	source ports.DocumentSource,
	namespace string,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *AssemblerService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &AssemblerService{
		source:    source,
		validator: validators.NewDocumentValidator(),
		namespace: namespace,
		cfg:       cfg,
		logger:    logger,
	}
}

// Assemble loads documents from the configured source and builds a graph
func (s *AssemblerService) Assemble(ctx context.Context) (*BuildResult, error) {
	docs, err := s.source.Load(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "loading documents")
	}
	return s.AssembleDocuments(ctx, docs)
}

// AssembleDocuments builds a graph from an explicit document set. Fatal
// errors (invalid path, duplicate key) abort the run with no partial graph.
func (s *AssemblerService) AssembleDocuments(ctx context.Context, docs []entities.Document) (*BuildResult, error) {
	runID := uuid.New().String()
	start := time.Now()

	s.logger.Info("Starting graph assembly",
		zap.String("runID", runID),
		zap.String("namespace", s.namespace),
		zap.Int("documents", len(docs)),
	)

	if err := s.validator.ValidateBatch(docs); err != nil {
		return nil, err
	}

	graph, err := aggregates.NewGraphWithConfig(s.namespace, s.cfg)
	if err != nil {
		return nil, err
	}

	// Phase 1: registration. One node per document, in input order.
	keys := make([]valueobjects.DocumentKey, len(docs))
	for i, doc := range docs {
		key, err := valueobjects.NewDocumentKeyWithConfig(s.namespace, doc.SourcePath, s.cfg)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "deriving key for %q", doc.SourcePath)
		}
		if _, err := graph.RegisterNode(key, doc.Title, doc.URL, doc.IsIndex); err != nil {
			return nil, pkgerrors.Wrapf(err, "registering %q", doc.SourcePath)
		}
		keys[i] = key
	}

	// Phase 2: linking against the now-complete registry.
	resolver := aggregates.NewResolver(graph)
	unresolved := 0
	for i, doc := range docs {
		source, ok := graph.NodeByKey(keys[i])
		if !ok {
			return nil, pkgerrors.NewInternalError("registered node vanished during linking")
		}

		for _, link := range valueobjects.ParseWikilinks(doc.Content) {
			target, ok := resolver.Resolve(link.Target, keys[i])
			if !ok {
				// Unresolved is expected, not an error: documents cite
				// pages that may not exist yet.
				unresolved++
				s.logger.Debug("Unresolved wikilink",
					zap.String("runID", runID),
					zap.String("document", doc.SourcePath),
					zap.String("target", link.Target),
				)
				continue
			}

			if _, err := graph.AddLink(source, target); err != nil {
				return nil, pkgerrors.Wrapf(err, "linking %q", doc.SourcePath)
			}
		}
	}

	// Phase 3: metrics.
	graph.ComputeSymbolSizes()

	if err := graph.Validate(); err != nil {
		return nil, err
	}

	result := &BuildResult{
		RunID:      runID,
		Namespace:  s.namespace,
		Graph:      graph,
		Unresolved: unresolved,
		BuiltAt:    start,
		Duration:   time.Since(start),
	}

	s.logger.Info("Graph assembly finished",
		zap.String("runID", runID),
		zap.Int("nodes", graph.NodeCount()),
		zap.Int("links", graph.LinkCount()),
		zap.Int("unresolved", unresolved),
		zap.Duration("duration", result.Duration),
	)

	return result, nil
}
