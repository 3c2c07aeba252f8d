package handlers

import (
	"context"
	"fmt"

	"mathsolver-backend/application/commands"
	"mathsolver-backend/application/ports"

	"go.uber.org/zap"
)

// DeleteProblemHandler handles history record deletion
type DeleteProblemHandler struct {
	problemRepo ports.ProblemRepository
	logger      *zap.Logger
}

// NewDeleteProblemHandler creates a new delete handler
func NewDeleteProblemHandler(problemRepo ports.ProblemRepository, logger *zap.Logger) *DeleteProblemHandler {
	return &DeleteProblemHandler{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

// Handle executes the delete command. The repository enforces ownership
// scoping; a record owned by another user surfaces as NotFound.
func (h *DeleteProblemHandler) Handle(ctx context.Context, cmd commands.DeleteProblemCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	h.logger.Info("Deleting problem from history",
		zap.String("userID", cmd.UserID),
		zap.String("problemID", cmd.ProblemID),
	)

	return h.problemRepo.Delete(ctx, cmd.UserID, cmd.ProblemID)
}
