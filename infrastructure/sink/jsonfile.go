package sink

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"docgraph/application/queries"
	pkgerrors "docgraph/pkg/errors"
)

// JSONFileSink writes the wire-contract graph document to a file the
// visualization frontend loads.
type JSONFileSink struct {
	path   string
	logger *zap.Logger
}

// NewJSONFileSink creates a sink writing to the given path
func NewJSONFileSink(path string, logger *zap.Logger) *JSONFileSink {
	return &JSONFileSink{path: path, logger: logger}
}

// Write serializes the graph document
func (s *JSONFileSink) Write(ctx context.Context, data *queries.GraphData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return pkgerrors.Wrap(err, "marshaling graph data")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return pkgerrors.Wrapf(err, "creating output dir %q", dir)
		}
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return pkgerrors.Wrapf(err, "writing %q", s.path)
	}

	s.logger.Info("Graph written",
		zap.String("path", s.path),
		zap.Int("nodes", len(data.Nodes)),
		zap.Int("links", len(data.Links)),
	)

	return nil
}
