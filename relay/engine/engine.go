package engine

import (
	"context"

	"github.com/dreamcanvas/dream-api/relay/strategy"
)

// Engine runs one inference call against the hosted provider. The result is
// opaque at this layer: a binary image stream or a JSON envelope, depending
// on the model's group. Whoever decodes it decides, not the engine.
type Engine interface {
	Run(ctx context.Context, modelKey string, input *strategy.NormalizedInput) ([]byte, error)
}
