// File: services/intelligence/interface.go
package ai

import (
	"context"

	"sessionplanner/models"
)

// TextGenerator is the LLM surface the reorderer needs. GeminiClient implements it.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Reorderer reorders an already-arranged recommendation list.
type Reorderer interface {
	Reorder(ctx context.Context, sessions []models.ScoredSession, profile models.UserProfile) ([]models.ScoredSession, error)
}
