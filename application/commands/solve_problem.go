package commands

import (
	"errors"

	"mathsolver-backend/domain/core/valueobjects"
)

// SolveProblemCommand asks the system to solve a photographed math
// problem for an authenticated user.
type SolveProblemCommand struct {
	UserID string
	Upload valueobjects.ImageUpload
}

// Validate validates the SolveProblemCommand
func (c SolveProblemCommand) Validate() error {
	if c.UserID == "" {
		return errors.New("user ID is required")
	}
	if c.Upload.Size() == 0 {
		return errors.New("upload is required")
	}
	return nil
}
