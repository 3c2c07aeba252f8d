package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mathsolver-backend/domain/core/valueobjects"
)

func TestMockSolver_Solve(t *testing.T) {
	solver := NewMockSolver(zap.NewNop())

	upload, err := valueobjects.NewImageUpload([]byte("fake image"), "image/png", "quadratic.png")
	require.NoError(t, err)

	answer, err := solver.Solve(context.Background(), upload)

	require.NoError(t, err)
	assert.NotEmpty(t, answer.AnswerValue)
	assert.NotEmpty(t, answer.Steps)
	assert.InDelta(t, 0.99, answer.Confidence, 0.001)

	// Same upload yields the same answer
	again, err := solver.Solve(context.Background(), upload)
	require.NoError(t, err)
	assert.Equal(t, answer, again)
}
