package uniprot

import (
	"context"

	"github.com/grindlemire/graft"
	"uniseq/internal/adapters/config"
	"uniseq/internal/adapters/logger"
	"uniseq/internal/core/domain"
	"uniseq/internal/core/ports"
)

// NodeID is the unique identifier for the record fetcher Graft node.
const NodeID graft.ID = "adapter.record_fetcher"

func init() {
	graft.Register(graft.Node[ports.RecordFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.RecordFetcher, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(settings, log), nil
		},
	})
}
