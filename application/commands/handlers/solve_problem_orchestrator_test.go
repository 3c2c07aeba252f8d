package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mathsolver-backend/application/commands"
	"mathsolver-backend/domain/core/entities"
	"mathsolver-backend/domain/core/valueobjects"
	pkgerrors "mathsolver-backend/pkg/errors"
)

type MockProblemSolver struct {
	mock.Mock
}

func (m *MockProblemSolver) Solve(ctx context.Context, upload valueobjects.ImageUpload) (entities.MathAnswer, error) {
	args := m.Called(ctx, upload)
	return args.Get(0).(entities.MathAnswer), args.Error(1)
}

type MockProblemRepository struct {
	mock.Mock
}

func (m *MockProblemRepository) Save(ctx context.Context, problem *entities.MathProblem) error {
	args := m.Called(ctx, problem)
	return args.Error(0)
}

func (m *MockProblemRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]*entities.MathProblem, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MathProblem), args.Error(1)
}

func (m *MockProblemRepository) GetByID(ctx context.Context, userID, problemID string) (*entities.MathProblem, error) {
	args := m.Called(ctx, userID, problemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MathProblem), args.Error(1)
}

func (m *MockProblemRepository) Delete(ctx context.Context, userID, problemID string) error {
	args := m.Called(ctx, userID, problemID)
	return args.Error(0)
}

func testUpload(t *testing.T) valueobjects.ImageUpload {
	t.Helper()
	upload, err := valueobjects.NewImageUpload([]byte("fake image bytes"), "image/png", "my homework.png")
	require.NoError(t, err)
	return upload
}

func solvedAnswer(t *testing.T) entities.MathAnswer {
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
	return answer
}

func TestSolveProblemOrchestrator_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockSolver := new(MockProblemSolver)
	mockRepo := new(MockProblemRepository)
	upload := testUpload(t)
	answer := solvedAnswer(t)

	mockSolver.On("Solve", ctx, upload).Return(answer, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*entities.MathProblem")).Return(nil)

	orchestrator := NewSolveProblemOrchestrator(mockSolver, mockRepo, zap.NewNop())

	// Act
	problem, err := orchestrator.Handle(ctx, commands.SolveProblemCommand{
		UserID: "user123",
		Upload: upload,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "user123", problem.UserID())
	assert.Equal(t, answer, problem.Answer())
	// Filename is sanitized before the record is built
	assert.Equal(t, "myhomework.png", problem.FileName())
	assert.NotEmpty(t, problem.FileHash())
	mockSolver.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestSolveProblemOrchestrator_SolverFailure(t *testing.T) {
	ctx := context.Background()
	mockSolver := new(MockProblemSolver)
	mockRepo := new(MockProblemRepository)
	upload := testUpload(t)

	mockSolver.On("Solve", ctx, upload).
		Return(entities.MathAnswer{}, pkgerrors.NewUpstreamError("gemini", errors.New("timeout")))

	orchestrator := NewSolveProblemOrchestrator(mockSolver, mockRepo, zap.NewNop())

	_, err := orchestrator.Handle(ctx, commands.SolveProblemCommand{
		UserID: "user123",
		Upload: upload,
	})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsUpstream(err))
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSolveProblemOrchestrator_SaveFailureStillReturnsAnswer(t *testing.T) {
	ctx := context.Background()
	mockSolver := new(MockProblemSolver)
	mockRepo := new(MockProblemRepository)
	upload := testUpload(t)
	answer := solvedAnswer(t)

	mockSolver.On("Solve", ctx, upload).Return(answer, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*entities.MathProblem")).
		Return(pkgerrors.NewUpstreamError("dynamodb", errors.New("throttled")))

	orchestrator := NewSolveProblemOrchestrator(mockSolver, mockRepo, zap.NewNop())

	problem, err := orchestrator.Handle(ctx, commands.SolveProblemCommand{
		UserID: "user123",
		Upload: upload,
	})

	require.NoError(t, err)
	assert.Equal(t, answer, problem.Answer())
	mockRepo.AssertExpectations(t)
}

func TestSolveProblemOrchestrator_InvalidCommand(t *testing.T) {
	orchestrator := NewSolveProblemOrchestrator(new(MockProblemSolver), new(MockProblemRepository), zap.NewNop())

	_, err := orchestrator.Handle(context.Background(), commands.SolveProblemCommand{})

	assert.Error(t, err)
}
