// Package gemini delegates math problem solving to Google's multimodal
// Gemini models and shapes the model output into the answer schema.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"mathsolver-backend/application/ports"
	"mathsolver-backend/domain/core/entities"
	"mathsolver-backend/domain/core/valueobjects"
	pkgerrors "mathsolver-backend/pkg/errors"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const systemPrompt = `You are a mathematics tutor helping students solve homework problems.
Given a photographed math problem, provide:
1. The final answer
2. Step-by-step solution
3. Clear explanation of concepts used

Be thorough but concise. Show all work clearly.

Respond with a single JSON object and nothing else, using this schema:
{
  "question": "the problem text as you read it from the image",
  "answer_label": "the choice label (A, B, 1, 2, ...) for multiple-choice problems, or null",
  "answer_value": "the final answer",
  "explanation": "explanation of the concepts used",
  "steps": [
    {"step_number": 1, "description": "what this step does", "calculation": "the calculation performed, or null"}
  ],
  "confidence": 0.0
}
"confidence" is your confidence in the answer between 0.0 and 1.0.`

const userPrompt = "Solve this math problem. Respond with JSON only."

// Solver implements ports.ProblemSolver on the Gemini API. A single call
// per problem, no retries: any model failure or unusable payload is an
// upstream error for the caller to surface.
type Solver struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewSolver creates a Gemini-backed solver
func NewSolver(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Solver, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: API key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(strings.TrimSpace(apiKey)))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Solver{
		client: client,
		model:  strings.TrimSpace(model),
		logger: logger,
	}, nil
}

var _ ports.ProblemSolver = (*Solver)(nil)

// Close releases the underlying API client
func (s *Solver) Close() error {
	return s.client.Close()
}

// Solve sends the image with the fixed tutor prompt and shapes the reply
func (s *Solver) Solve(ctx context.Context, upload valueobjects.ImageUpload) (entities.MathAnswer, error) {
	m := s.client.GenerativeModel(s.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0.2),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	parts := []genai.Part{
		genai.Text(userPrompt),
		&genai.Blob{MIMEType: upload.ContentType(), Data: upload.Data()},
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		s.logger.Error("Gemini call failed",
			zap.String("model", s.model),
			zap.Error(err),
		)
		return entities.MathAnswer{}, pkgerrors.NewUpstreamError("gemini", err)
	}

	txt := firstText(resp)
	if txt == "" {
		return entities.MathAnswer{}, pkgerrors.NewUpstreamError("gemini", fmt.Errorf("empty response"))
	}

	answer, err := ShapeAnswer([]byte(stripCodeFences(txt)))
	if err != nil {
		return entities.MathAnswer{}, err
	}

	s.logger.Info("Problem solved",
		zap.String("model", s.model),
		zap.Float64("confidence", answer.Confidence),
		zap.Int("steps", len(answer.Steps)),
	)

	return answer, nil
}

// firstText returns the first text part of the first usable candidate
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func ptrFloat32(v float32) *float32 { return &v }
