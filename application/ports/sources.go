package ports

import (
	"context"

	"docgraph/application/queries"
	"docgraph/domain/core/entities"
)

// DocumentSource supplies the ordered document descriptors for one assembly
// run. Order matters: node ids and link discovery order both follow it.
type DocumentSource interface {
	Load(ctx context.Context) ([]entities.Document, error)
}

// GraphSink persists the emitted wire-contract graph document for the
// downstream visualization consumer.
type GraphSink interface {
	Write(ctx context.Context, data *queries.GraphData) error
}
