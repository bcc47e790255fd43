package di

import (
	"go.uber.org/zap"

	commandbus "docgraph/application/commands/bus"
	"docgraph/application/ports"
	querybus "docgraph/application/queries/bus"
	"docgraph/application/services"
	domainconfig "docgraph/domain/config"
	"docgraph/infrastructure/config"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	DomainConfig *domainconfig.DomainConfig
	Logger       *zap.Logger
	Source       ports.DocumentSource
	Sink         ports.GraphSink
	Holder       *services.GraphHolder
	Assembler    *services.AssemblerService
	CommandBus   *commandbus.CommandBus
	QueryBus     *querybus.QueryBus
}
