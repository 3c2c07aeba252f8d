package handlers

import (
	"context"
	"fmt"
	"time"

	"mathsolver-backend/application/ports"
	"mathsolver-backend/application/queries"

	"go.uber.org/zap"
)

// GetHistoryHandler handles history listing queries
type GetHistoryHandler struct {
	problemRepo ports.ProblemRepository
	logger      *zap.Logger
}

// NewGetHistoryHandler creates a new history query handler
func NewGetHistoryHandler(problemRepo ports.ProblemRepository, logger *zap.Logger) *GetHistoryHandler {
	return &GetHistoryHandler{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

// Handle executes the history query
func (h *GetHistoryHandler) Handle(ctx context.Context, query queries.GetHistoryQuery) (*queries.GetHistoryResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	h.logger.Info("Retrieving history",
		zap.String("userID", query.UserID),
		zap.Int("limit", query.Limit),
	)

	problems, err := h.problemRepo.GetByUserID(ctx, query.UserID, query.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]queries.HistoryItem, 0, len(problems))
	for _, p := range problems {
		items = append(items, queries.HistoryItem{
			ID:        p.ID().String(),
			Question:  p.Question(),
			Answer:    p.Answer(),
			FileName:  p.FileName(),
			CreatedAt: p.CreatedAt().Format(time.RFC3339),
		})
	}

	return &queries.GetHistoryResult{
		History:       items,
		UserID:        query.UserID,
		TotalProblems: len(items),
	}, nil
}
