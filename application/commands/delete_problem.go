package commands

import "errors"

// DeleteProblemCommand removes a solved-problem record from the calling
// user's history.
type DeleteProblemCommand struct {
	UserID    string
	ProblemID string
}

// Validate validates the DeleteProblemCommand
func (c DeleteProblemCommand) Validate() error {
	if c.UserID == "" {
		return errors.New("user ID is required")
	}
	if c.ProblemID == "" {
		return errors.New("problem ID is required")
	}
	return nil
}
