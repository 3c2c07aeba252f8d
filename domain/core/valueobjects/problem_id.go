package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// ProblemID is a value object identifying a solved-problem record
type ProblemID struct {
	value string
}

// NewProblemID creates a new random ProblemID
func NewProblemID() ProblemID {
	return ProblemID{value: uuid.New().String()}
}

// NewProblemIDFromString creates a ProblemID from an existing string
func NewProblemIDFromString(id string) (ProblemID, error) {
	if id == "" {
		return ProblemID{}, errors.New("problem ID cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return ProblemID{}, errors.New("problem ID must be a valid UUID")
	}
	return ProblemID{value: id}, nil
}

// String returns the string representation of the ProblemID
func (id ProblemID) String() string {
	return id.value
}

// Equals checks if two ProblemIDs are equal
func (id ProblemID) Equals(other ProblemID) bool {
	return id.value == other.value
}

// IsZero checks if the ProblemID is the zero value
func (id ProblemID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id ProblemID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ProblemID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("ProblemID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
