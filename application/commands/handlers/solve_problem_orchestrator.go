package handlers

import (
	"context"
	"fmt"

	"mathsolver-backend/application/commands"
	"mathsolver-backend/application/ports"
	"mathsolver-backend/domain/core/entities"
	"mathsolver-backend/pkg/utils"

	"go.uber.org/zap"
)

// SolveProblemOrchestrator runs the solve pipeline: delegate the image to
// the external model, build the record, and persist it to the user's
// history. Persistence is best-effort - a failed write is logged and the
// already-computed answer is still returned to the caller.
type SolveProblemOrchestrator struct {
	solver      ports.ProblemSolver
	problemRepo ports.ProblemRepository
	logger      *zap.Logger
}

// NewSolveProblemOrchestrator creates a new solve orchestrator
func NewSolveProblemOrchestrator(
	solver ports.ProblemSolver,
	problemRepo ports.ProblemRepository,
	logger *zap.Logger,
) *SolveProblemOrchestrator {
	return &SolveProblemOrchestrator{
		solver:      solver,
		problemRepo: problemRepo,
		logger:      logger,
	}
}

// Handle executes the solve command and returns the solved record
func (h *SolveProblemOrchestrator) Handle(ctx context.Context, cmd commands.SolveProblemCommand) (*entities.MathProblem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	h.logger.Info("Processing math problem",
		zap.String("userID", cmd.UserID),
		zap.String("fileName", cmd.Upload.Filename()),
		zap.Int("size", cmd.Upload.Size()),
	)

	answer, err := h.solver.Solve(ctx, cmd.Upload)
	if err != nil {
		return nil, err
	}

	problem, err := entities.NewMathProblem(
		cmd.UserID,
		answer,
		utils.SanitizeFilename(cmd.Upload.Filename()),
		cmd.Upload.ContentType(),
		utils.FileHash(cmd.Upload.Data()),
	)
	if err != nil {
		return nil, err
	}

	if err := h.problemRepo.Save(ctx, problem); err != nil {
		// The answer is already computed; losing the history record
		// must not fail the request.
		h.logger.Warn("Failed to save problem to history",
			zap.String("userID", cmd.UserID),
			zap.String("problemID", problem.ID().String()),
			zap.Error(err),
		)
	} else {
		h.logger.Info("Problem saved to history",
			zap.String("userID", cmd.UserID),
			zap.String("problemID", problem.ID().String()),
		)
	}

	return problem, nil
}
