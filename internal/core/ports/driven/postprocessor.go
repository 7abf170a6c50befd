package driven

import (
	"context"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// PostProcessor rewrites a normalised node sequence.
// PostProcessors are chained in a pipeline (e.g., transposition, chord spelling).
type PostProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process receives the nodes produced by the previous stage and returns
	// the rewritten sequence. Implementations must not mutate the input.
	Process(ctx context.Context, nodes domain.Nodes) (domain.Nodes, error)
}

// PostProcessorPipeline chains multiple PostProcessors.
type PostProcessorPipeline interface {
	// Process runs the nodes through all processors in order.
	Process(ctx context.Context, nodes domain.Nodes) (domain.Nodes, error)
}
