package di

import (
	"go.uber.org/zap"

	"docgraph/application/commands"
	commandbus "docgraph/application/commands/bus"
	commandhandlers "docgraph/application/commands/handlers"
	"docgraph/application/ports"
	"docgraph/application/queries"
	querybus "docgraph/application/queries/bus"
	queryhandlers "docgraph/application/queries/handlers"
	"docgraph/application/services"
	domainconfig "docgraph/domain/config"
	"docgraph/infrastructure/config"
	"docgraph/infrastructure/sink"
	"docgraph/infrastructure/source"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDomainConfig derives domain rules from application configuration
func ProvideDomainConfig(cfg *config.Config) *domainconfig.DomainConfig {
	dc := domainconfig.DefaultDomainConfig()
	if cfg.IndexMarker != "" {
		dc.IndexMarker = cfg.IndexMarker
	}
	return dc
}

// ProvideDocumentSource creates the filesystem document source
func ProvideDocumentSource(cfg *config.Config, logger *zap.Logger) ports.DocumentSource {
	return source.NewFilesystemSource(cfg.DocsDir, logger)
}

// ProvideGraphSink creates the JSON file sink
func ProvideGraphSink(cfg *config.Config, logger *zap.Logger) ports.GraphSink {
	return sink.NewJSONFileSink(cfg.OutputPath, logger)
}

// ProvideGraphHolder creates the shared holder for the current build
func ProvideGraphHolder() *services.GraphHolder {
	return services.NewGraphHolder()
}

// ProvideAssemblerService creates the graph assembler
func ProvideAssemblerService(
	docSource ports.DocumentSource,
	cfg *config.Config,
	dc *domainconfig.DomainConfig,
	logger *zap.Logger,
) *services.AssemblerService {
	return services.NewAssemblerService(docSource, cfg.Namespace, dc, logger)
}

// ProvideCommandBus creates the command bus with all handlers registered
func ProvideCommandBus(
	assembler *services.AssemblerService,
	holder *services.GraphHolder,
	logger *zap.Logger,
) (*commandbus.CommandBus, error) {
	b := commandbus.NewCommandBus()

	rebuild := commandhandlers.NewRebuildGraphHandler(assembler, holder, logger)
	if err := b.Register(commands.RebuildGraphCommand{}, rebuild); err != nil {
		return nil, err
	}

	return b, nil
}

// ProvideQueryBus creates the query bus with all handlers registered
func ProvideQueryBus(
	holder *services.GraphHolder,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	b := querybus.NewQueryBus()

	if err := b.Register(queries.GetGraphDataQuery{}, queryhandlers.NewGraphDataHandler(holder, logger)); err != nil {
		return nil, err
	}
	if err := b.Register(queries.GetNodeQuery{}, queryhandlers.NewGetNodeHandler(holder, logger)); err != nil {
		return nil, err
	}
	if err := b.Register(queries.ListNodesQuery{}, queryhandlers.NewListNodesHandler(holder, logger)); err != nil {
		return nil, err
	}
	if err := b.Register(queries.GetStatsQuery{}, queryhandlers.NewStatsHandler(holder, logger)); err != nil {
		return nil, err
	}

	return b, nil
}
