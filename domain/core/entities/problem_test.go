package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathsolver-backend/domain/core/valueobjects"
	pkgerrors "mathsolver-backend/pkg/errors"
)

func testAnswer(t *testing.T) MathAnswer {
	t.Helper()
	answer, err := NewMathAnswer("What is 2+2?", nil, "4", "Basic addition", validSteps(), 0.9)
	require.NoError(t, err)
	return answer
}

func TestNewMathProblem_Success(t *testing.T) {
	answer := testAnswer(t)

	problem, err := NewMathProblem("user123", answer, "homework.png", "image/png", "abc123")

	require.NoError(t, err)
	assert.False(t, problem.ID().IsZero())
	assert.Equal(t, "user123", problem.UserID())
	assert.Equal(t, "What is 2+2?", problem.Question())
	assert.Equal(t, answer, problem.Answer())
	assert.Equal(t, "homework.png", problem.FileName())
	assert.Equal(t, "image/png", problem.ContentType())
	assert.Equal(t, "abc123", problem.FileHash())
	assert.WithinDuration(t, time.Now().UTC(), problem.CreatedAt(), 5*time.Second)
}

func TestNewMathProblem_EmptyUserID(t *testing.T) {
	_, err := NewMathProblem("", testAnswer(t), "f.png", "image/png", "h")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNewMathProblem_UnsolvedAnswer(t *testing.T) {
	_, err := NewMathProblem("user123", MathAnswer{}, "f.png", "image/png", "h")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestMathProblem_OwnedBy(t *testing.T) {
	problem, err := NewMathProblem("user123", testAnswer(t), "f.png", "image/png", "h")
	require.NoError(t, err)

	assert.True(t, problem.OwnedBy("user123"))
	assert.False(t, problem.OwnedBy("user456"))
}

func TestReconstructMathProblem_PreservesIdentity(t *testing.T) {
	id := valueobjects.NewProblemID()
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	answer := testAnswer(t)

	problem := ReconstructMathProblem(id, "user123", "q", answer, "f.png", "image/png", "h", createdAt)

	assert.True(t, problem.ID().Equals(id))
	assert.Equal(t, createdAt, problem.CreatedAt())
	assert.Equal(t, "q", problem.Question())
}
