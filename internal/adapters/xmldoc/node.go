package xmldoc

import (
	"context"

	"github.com/grindlemire/graft"
	"uniseq/internal/core/ports"
)

// NodeID is the unique identifier for the document parser Graft node.
const NodeID graft.ID = "adapter.document_parser"

func init() {
	graft.Register(graft.Node[ports.DocumentParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentParser, error) {
			return NewParser(), nil
		},
	})
}
