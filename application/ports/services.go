package ports

import (
	"context"

	"mathsolver-backend/domain/core/entities"
	"mathsolver-backend/domain/core/valueobjects"
)

// ProblemSolver delegates the actual solving to an external multimodal
// model. Implementations send the image with a fixed prompt and shape the
// model output into the answer schema; an unusable response is an
// Upstream error, never a degraded answer.
type ProblemSolver interface {
	Solve(ctx context.Context, upload valueobjects.ImageUpload) (entities.MathAnswer, error)
}
