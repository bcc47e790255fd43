// Command build assembles the wikilink graph once and writes the
// graph document to the configured output path.
package main

import (
	"context"
	"log"
	"os"

	"docgraph/application/queries"
	"docgraph/infrastructure/config"
	"docgraph/infrastructure/di"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	logger := container.Logger
	defer logger.Sync()

	result, err := container.Assembler.Assemble(ctx)
	if err != nil {
		logger.Error("Graph assembly failed", zap.Error(err))
		os.Exit(1)
	}

	doc := queries.NewGraphData(result.Graph)
	if err := container.Sink.Write(ctx, doc); err != nil {
		logger.Error("Failed to write graph document",
			zap.String("outputPath", cfg.OutputPath),
			zap.Error(err),
		)
		os.Exit(1)
	}

	logger.Info("Graph document written",
		zap.String("runID", result.RunID),
		zap.String("outputPath", cfg.OutputPath),
		zap.Int("nodes", result.Graph.NodeCount()),
		zap.Int("links", result.Graph.LinkCount()),
	)
}
