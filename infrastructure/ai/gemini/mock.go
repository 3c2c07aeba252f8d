package gemini

import (
	"context"
	"fmt"

	"mathsolver-backend/application/ports"
	"mathsolver-backend/domain/core/entities"
	"mathsolver-backend/domain/core/valueobjects"

	"go.uber.org/zap"
)

// MockSolver returns a canned deterministic answer without any network
// calls. Used for local development when no API key is configured and
// in tests that exercise the pipeline around the solver.
type MockSolver struct {
	logger *zap.Logger
}

// NewMockSolver creates a mock solver
func NewMockSolver(logger *zap.Logger) *MockSolver {
	return &MockSolver{logger: logger}
}

var _ ports.ProblemSolver = (*MockSolver)(nil)

// Solve returns a fixed quadratic-equation walkthrough keyed only on the
// upload size so responses are stable across runs.
func (m *MockSolver) Solve(_ context.Context, upload valueobjects.ImageUpload) (entities.MathAnswer, error) {
	m.logger.Debug("Mock solver invoked",
		zap.String("filename", upload.Filename()),
		zap.Int("size", upload.Size()),
	)

	calc1 := "x^2 - 5x + 6 = 0"
	calc2 := "(x - 2)(x - 3) = 0"
	steps := []entities.SolutionStep{
		{
			StepNumber:  1,
			Description: "Identify the quadratic equation from the image",
			Calculation: &calc1,
		},
		{
			StepNumber:  2,
			Description: "Factor the quadratic",
			Calculation: &calc2,
		},
		{
			StepNumber:  3,
			Description: "Set each factor to zero and solve",
			Calculation: nil,
		},
	}

	return entities.NewMathAnswer(
		fmt.Sprintf("Mock problem derived from %s", upload.Filename()),
		nil,
		"x = 2 or x = 3",
		"A quadratic equation can be solved by factoring when its roots are rational.",
		steps,
		0.99,
	)
}
