package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"mathsolver-backend/domain/core/entities"
	pkgerrors "mathsolver-backend/pkg/errors"
)

// rawAnswer mirrors the JSON schema the model is told to emit.
// Optional fields stay pointers so absence survives decoding.
type rawAnswer struct {
	Question    string    `json:"question"`
	AnswerLabel *string   `json:"answer_label"`
	AnswerValue string    `json:"answer_value"`
	Explanation string    `json:"explanation"`
	Steps       []rawStep `json:"steps"`
	Confidence  *float64  `json:"confidence"`
}

type rawStep struct {
	StepNumber  int     `json:"step_number"`
	Description string  `json:"description"`
	Calculation *string `json:"calculation"`
}

// ShapeAnswer decodes a model payload into a validated MathAnswer.
// Missing answer_value or steps make the payload unusable; a missing
// confidence defaults to 0.0 rather than failing the whole solve.
func ShapeAnswer(payload []byte) (entities.MathAnswer, error) {
	var raw rawAnswer
	if err := json.Unmarshal(payload, &raw); err != nil {
		return entities.MathAnswer{}, pkgerrors.NewUpstreamError("gemini", fmt.Errorf("decode response: %w", err))
	}

	if strings.TrimSpace(raw.AnswerValue) == "" {
		return entities.MathAnswer{}, pkgerrors.NewUpstreamError("gemini", fmt.Errorf("response missing answer_value"))
	}
	if len(raw.Steps) == 0 {
		return entities.MathAnswer{}, pkgerrors.NewUpstreamError("gemini", fmt.Errorf("response missing steps"))
	}

	steps := make([]entities.SolutionStep, 0, len(raw.Steps))
	for i, rs := range raw.Steps {
		step := entities.SolutionStep{
			StepNumber:  rs.StepNumber,
			Description: strings.TrimSpace(rs.Description),
			Calculation: trimmedOrNil(rs.Calculation),
		}
		if step.StepNumber == 0 {
			step.StepNumber = i + 1
		}
		steps = append(steps, step)
	}

	confidence := 0.0
	if raw.Confidence != nil {
		confidence = *raw.Confidence
	}

	answer, err := entities.NewMathAnswer(
		strings.TrimSpace(raw.Question),
		trimmedOrNil(raw.AnswerLabel),
		strings.TrimSpace(raw.AnswerValue),
		strings.TrimSpace(raw.Explanation),
		steps,
		confidence,
	)
	if err != nil {
		return entities.MathAnswer{}, pkgerrors.NewUpstreamError("gemini", fmt.Errorf("invalid response: %w", err))
	}
	return answer, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
