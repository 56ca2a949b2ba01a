package alphabet

import (
	"context"

	"github.com/grindlemire/graft"
	"uniseq/internal/core/domain"
)

// NodeID is the unique identifier for the alphabet Graft node.
const NodeID graft.ID = "adapter.alphabet"

func init() {
	graft.Register(graft.Node[domain.Alphabet]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Alphabet, error) {
			return AminoAcid(), nil
		},
	})
}
