package ports

import (
	"context"

	"mathsolver-backend/domain/core/entities"
)

// ProblemRepository defines the interface for solved-problem persistence.
// This is a port in hexagonal architecture - the domain doesn't know about
// the implementation. Every operation is scoped to the owning user id.
type ProblemRepository interface {
	// Save persists a solved-problem record
	Save(ctx context.Context, problem *entities.MathProblem) error

	// GetByUserID retrieves a user's records, most recent first,
	// capped at limit
	GetByUserID(ctx context.Context, userID string, limit int) ([]*entities.MathProblem, error)

	// GetByID retrieves a single record owned by the given user.
	// Returns a NotFound error when the record is absent or owned by
	// someone else.
	GetByID(ctx context.Context, userID, problemID string) (*entities.MathProblem, error)

	// Delete removes a record owned by the given user. Returns a
	// NotFound error when the record is absent or owned by someone
	// else, never revealing which.
	Delete(ctx context.Context, userID, problemID string) error
}
