package entities

import (
	pkgerrors "mathsolver-backend/pkg/errors"
)

// SolutionStep is a single ordered step of a worked solution. Steps are
// owned by a MathAnswer and carry no lifecycle of their own.
type SolutionStep struct {
	StepNumber  int     `json:"step_number"`
	Description string  `json:"description"`
	Calculation *string `json:"calculation"`
}

// MathAnswer is the structured solving result produced once per problem
// by the external model. It is never mutated after creation.
type MathAnswer struct {
	Question    string         `json:"question"`
	AnswerLabel *string        `json:"answer_label"`
	AnswerValue string         `json:"answer_value"`
	Explanation string         `json:"explanation"`
	Steps       []SolutionStep `json:"steps"`
	Confidence  float64        `json:"confidence"`
}

// NewMathAnswer validates and constructs an answer. AnswerValue and at
// least one step are required; confidence must lie in [0,1]. Step order
// is taken as given.
func NewMathAnswer(
	question string,
	answerLabel *string,
	answerValue string,
	explanation string,
	steps []SolutionStep,
	confidence float64,
) (MathAnswer, error) {
	if answerValue == "" {
		return MathAnswer{}, pkgerrors.NewValidationError("answer value cannot be empty")
	}
	if len(steps) == 0 {
		return MathAnswer{}, pkgerrors.NewValidationError("answer must contain at least one solution step")
	}
	if confidence < 0.0 || confidence > 1.0 {
		return MathAnswer{}, pkgerrors.NewValidationError("confidence must be between 0.0 and 1.0")
	}
	return MathAnswer{
		Question:    question,
		AnswerLabel: answerLabel,
		AnswerValue: answerValue,
		Explanation: explanation,
		Steps:       steps,
		Confidence:  confidence,
	}, nil
}
