package memory

import (
	"context"
	"sort"
	"sync"

	"mathsolver-backend/application/ports"
	"mathsolver-backend/domain/core/entities"
	pkgerrors "mathsolver-backend/pkg/errors"
)

// InMemoryProblemRepository provides an in-memory implementation of
// ProblemRepository with the same ownership-scoping semantics as the
// DynamoDB one. Used by tests and keyless local development.
type InMemoryProblemRepository struct {
	mu       sync.RWMutex
	problems map[string]map[string]*entities.MathProblem // userID -> problemID -> record
}

// NewInMemoryProblemRepository creates a new in-memory problem repository
func NewInMemoryProblemRepository() *InMemoryProblemRepository {
	return &InMemoryProblemRepository{
		problems: make(map[string]map[string]*entities.MathProblem),
	}
}

var _ ports.ProblemRepository = (*InMemoryProblemRepository)(nil)

// Save persists a solved-problem record
func (r *InMemoryProblemRepository) Save(ctx context.Context, problem *entities.MathProblem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	userProblems, ok := r.problems[problem.UserID()]
	if !ok {
		userProblems = make(map[string]*entities.MathProblem)
		r.problems[problem.UserID()] = userProblems
	}

	userProblems[problem.ID().String()] = problem
	return nil
}

// GetByUserID retrieves a user's records, most recent first
func (r *InMemoryProblemRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]*entities.MathProblem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userProblems := r.problems[userID]
	results := make([]*entities.MathProblem, 0, len(userProblems))
	for _, p := range userProblems {
		results = append(results, p)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt().After(results[j].CreatedAt())
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// GetByID retrieves a single record owned by the given user
func (r *InMemoryProblemRepository) GetByID(ctx context.Context, userID, problemID string) (*entities.MathProblem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	problem, ok := r.problems[userID][problemID]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("problem")
	}
	return problem, nil
}

// Delete removes a record owned by the given user
func (r *InMemoryProblemRepository) Delete(ctx context.Context, userID, problemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.problems[userID][problemID]; !ok {
		return pkgerrors.NewNotFoundError("problem")
	}

	delete(r.problems[userID], problemID)
	return nil
}
