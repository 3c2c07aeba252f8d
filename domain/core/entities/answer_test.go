package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "mathsolver-backend/pkg/errors"
)

func validSteps() []SolutionStep {
	calc := "2 + 2 = 4"
	return []SolutionStep{
		{StepNumber: 1, Description: "Add the numbers", Calculation: &calc},
		{StepNumber: 2, Description: "State the result", Calculation: nil},
	}
}

func TestNewMathAnswer_Success(t *testing.T) {
	label := "B"
	answer, err := NewMathAnswer("What is 2+2?", &label, "4", "Basic addition", validSteps(), 0.95)

	require.NoError(t, err)
	assert.Equal(t, "What is 2+2?", answer.Question)
	assert.Equal(t, "B", *answer.AnswerLabel)
	assert.Equal(t, "4", answer.AnswerValue)
	assert.Len(t, answer.Steps, 2)
	assert.Equal(t, 0.95, answer.Confidence)
}

func TestNewMathAnswer_OptionalFieldsAbsent(t *testing.T) {
	answer, err := NewMathAnswer("", nil, "x = 3", "", validSteps(), 0)

	require.NoError(t, err)
	assert.Nil(t, answer.AnswerLabel)
	assert.Nil(t, answer.Steps[1].Calculation)
	assert.Zero(t, answer.Confidence)
}

func TestNewMathAnswer_EmptyAnswerValue(t *testing.T) {
	_, err := NewMathAnswer("q", nil, "", "e", validSteps(), 0.5)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNewMathAnswer_NoSteps(t *testing.T) {
	_, err := NewMathAnswer("q", nil, "4", "e", nil, 0.5)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNewMathAnswer_ConfidenceBounds(t *testing.T) {
	for _, confidence := range []float64{-0.01, 1.01, 2} {
		_, err := NewMathAnswer("q", nil, "4", "e", validSteps(), confidence)
		assert.Error(t, err, "confidence %v should be rejected", confidence)
	}

	for _, confidence := range []float64{0, 0.5, 1} {
		_, err := NewMathAnswer("q", nil, "4", "e", validSteps(), confidence)
		assert.NoError(t, err, "confidence %v should be accepted", confidence)
	}
}

func TestNewMathAnswer_PreservesStepOrder(t *testing.T) {
	steps := []SolutionStep{
		{StepNumber: 3, Description: "third"},
		{StepNumber: 1, Description: "first"},
		{StepNumber: 2, Description: "second"},
	}

	answer, err := NewMathAnswer("q", nil, "4", "e", steps, 0.5)

	require.NoError(t, err)
	assert.Equal(t, 3, answer.Steps[0].StepNumber)
	assert.Equal(t, 1, answer.Steps[1].StepNumber)
	assert.Equal(t, 2, answer.Steps[2].StepNumber)
}
