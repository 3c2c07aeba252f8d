package entities

import (
	"time"

	"mathsolver-backend/domain/core/valueobjects"
	pkgerrors "mathsolver-backend/pkg/errors"
)

// MathProblem is a solved-problem record owned by exactly one user.
// Records are immutable after creation; the only lifecycle operation is
// deletion by the owning user.
type MathProblem struct {
	id          valueobjects.ProblemID
	userID      string
	question    string
	answer      MathAnswer
	fileName    string
	contentType string
	fileHash    string
	createdAt   time.Time
}

// NewMathProblem creates a new solved-problem record for a user
func NewMathProblem(
	userID string,
	answer MathAnswer,
	fileName string,
	contentType string,
	fileHash string,
) (*MathProblem, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}
	if answer.AnswerValue == "" {
		return nil, pkgerrors.NewValidationError("problem must carry a solved answer")
	}

	return &MathProblem{
		id:          valueobjects.NewProblemID(),
		userID:      userID,
		question:    answer.Question,
		answer:      answer,
		fileName:    fileName,
		contentType: contentType,
		fileHash:    fileHash,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructMathProblem rehydrates a record from repository data with
// preserved identity and timestamps.
func ReconstructMathProblem(
	id valueobjects.ProblemID,
	userID string,
	question string,
	answer MathAnswer,
	fileName string,
	contentType string,
	fileHash string,
	createdAt time.Time,
) *MathProblem {
	return &MathProblem{
		id:          id,
		userID:      userID,
		question:    question,
		answer:      answer,
		fileName:    fileName,
		contentType: contentType,
		fileHash:    fileHash,
		createdAt:   createdAt,
	}
}

// ID returns the record identifier
func (p *MathProblem) ID() valueobjects.ProblemID { return p.id }

// UserID returns the owning user's identifier
func (p *MathProblem) UserID() string { return p.userID }

// Question returns the problem text as understood by the solver
func (p *MathProblem) Question() string { return p.question }

// Answer returns the structured solving result
func (p *MathProblem) Answer() MathAnswer { return p.answer }

// FileName returns the sanitized upload filename
func (p *MathProblem) FileName() string { return p.fileName }

// ContentType returns the upload's declared MIME type
func (p *MathProblem) ContentType() string { return p.contentType }

// FileHash returns the SHA-256 digest of the uploaded image
func (p *MathProblem) FileHash() string { return p.fileHash }

// CreatedAt returns the record creation time
func (p *MathProblem) CreatedAt() time.Time { return p.createdAt }

// OwnedBy reports whether the record belongs to the given user
func (p *MathProblem) OwnedBy(userID string) bool {
	return p.userID == userID
}
