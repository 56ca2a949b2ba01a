package app

import (
	"context"

	"github.com/grindlemire/graft"
	"uniseq/internal/adapters/alphabet"
	"uniseq/internal/adapters/config"
	"uniseq/internal/adapters/logger"
	"uniseq/internal/adapters/uniprot"
	"uniseq/internal/adapters/xmldoc"
	"uniseq/internal/core/domain"
	"uniseq/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			uniprot.NodeID,
			xmldoc.NodeID,
			alphabet.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			fetcher, err := graft.Dep[ports.RecordFetcher](ctx)
			if err != nil {
				return nil, err
			}
			parser, err := graft.Dep[ports.DocumentParser](ctx)
			if err != nil {
				return nil, err
			}
			alpha, err := graft.Dep[domain.Alphabet](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(fetcher, parser, alpha, log, settings), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	if l, ok := log.(*logger.Logger); ok && settings.JSONLogs() {
		l.SetJSON(true)
	}
	return &Components{
		App:      application,
		Logger:   log,
		Settings: settings,
	}, nil
}
