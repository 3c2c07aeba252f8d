package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathsolver-backend/domain/core/entities"
	"mathsolver-backend/domain/core/valueobjects"
	pkgerrors "mathsolver-backend/pkg/errors"
)

func newProblem(t *testing.T, userID string, createdAt time.Time) *entities.MathProblem {
	t.Helper()
	answer, err := entities.NewMathAnswer(
		"What is 2+2?",
		nil,
		"4",
		"Addition",
		[]entities.SolutionStep{{StepNumber: 1, Description: "Add"}},
		0.9,
	)
	require.NoError(t, err)
	return entities.ReconstructMathProblem(
		valueobjects.NewProblemID(),
		userID,
		answer.Question,
		answer,
		"homework.png",
		"image/png",
		"hash",
		createdAt,
	)
}

func TestInMemoryProblemRepository_SaveAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryProblemRepository()
	problem := newProblem(t, "user1", time.Now().UTC())

	require.NoError(t, repo.Save(ctx, problem))

	got, err := repo.GetByID(ctx, "user1", problem.ID().String())
	require.NoError(t, err)
	assert.Equal(t, problem.ID(), got.ID())
	assert.Equal(t, "user1", got.UserID())
}

func TestInMemoryProblemRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryProblemRepository()

	_, err := repo.GetByID(ctx, "user1", valueobjects.NewProblemID().String())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestInMemoryProblemRepository_GetByUserID_RecencyOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryProblemRepository()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	oldest := newProblem(t, "user1", base)
	middle := newProblem(t, "user1", base.Add(time.Minute))
	newest := newProblem(t, "user1", base.Add(2*time.Minute))
	for _, p := range []*entities.MathProblem{middle, oldest, newest} {
		require.NoError(t, repo.Save(ctx, p))
	}

	got, err := repo.GetByUserID(ctx, "user1", 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, newest.ID(), got[0].ID())
	assert.Equal(t, middle.ID(), got[1].ID())
	assert.Equal(t, oldest.ID(), got[2].ID())
}

func TestInMemoryProblemRepository_GetByUserID_Limit(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryProblemRepository()
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, newProblem(t, "user1", base.Add(time.Duration(i)*time.Second))))
	}

	got, err := repo.GetByUserID(ctx, "user1", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestInMemoryProblemRepository_GetByUserID_Isolation(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryProblemRepository()

	require.NoError(t, repo.Save(ctx, newProblem(t, "user1", time.Now().UTC())))
	require.NoError(t, repo.Save(ctx, newProblem(t, "user2", time.Now().UTC())))

	got, err := repo.GetByUserID(ctx, "user1", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "user1", got[0].UserID())

	empty, err := repo.GetByUserID(ctx, "user3", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestInMemoryProblemRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryProblemRepository()
	problem := newProblem(t, "user1", time.Now().UTC())
	require.NoError(t, repo.Save(ctx, problem))

	require.NoError(t, repo.Delete(ctx, "user1", problem.ID().String()))

	_, err := repo.GetByID(ctx, "user1", problem.ID().String())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestInMemoryProblemRepository_Delete_CrossUserLooksAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryProblemRepository()
	problem := newProblem(t, "user1", time.Now().UTC())
	require.NoError(t, repo.Save(ctx, problem))

	// Another user deleting this record gets the same answer as for a
	// record that never existed.
	err := repo.Delete(ctx, "user2", problem.ID().String())
	assert.True(t, pkgerrors.IsNotFound(err))

	// The record is untouched
	_, err = repo.GetByID(ctx, "user1", problem.ID().String())
	assert.NoError(t, err)
}

func TestInMemoryProblemRepository_Delete_Missing(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryProblemRepository()

	err := repo.Delete(ctx, "user1", valueobjects.NewProblemID().String())
	assert.True(t, pkgerrors.IsNotFound(err))
}
