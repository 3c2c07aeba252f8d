package queries

import (
	"errors"

	"mathsolver-backend/domain/core/entities"
)

const (
	// DefaultHistoryLimit applies when the caller omits the limit parameter
	DefaultHistoryLimit = 50
	// MaxHistoryLimit caps a single history page
	MaxHistoryLimit = 100
)

// GetHistoryQuery requests a user's solved-problem history,
// most recent first.
type GetHistoryQuery struct {
	UserID string
	Limit  int
}

// Validate validates the GetHistoryQuery
func (q GetHistoryQuery) Validate() error {
	if q.UserID == "" {
		return errors.New("user ID is required")
	}
	if q.Limit <= 0 {
		return errors.New("limit must be a positive integer")
	}
	if q.Limit > MaxHistoryLimit {
		return errors.New("limit exceeds maximum page size")
	}
	return nil
}

// HistoryItem is a single record in the history listing
type HistoryItem struct {
	ID        string              `json:"id"`
	Question  string              `json:"question"`
	Answer    entities.MathAnswer `json:"answer"`
	FileName  string              `json:"file_name"`
	CreatedAt string              `json:"created_at"`
}

// GetHistoryResult is the result of a history query
type GetHistoryResult struct {
	History       []HistoryItem `json:"history"`
	UserID        string        `json:"user_id"`
	TotalProblems int           `json:"total_problems"`
}
