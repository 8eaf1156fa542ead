package ports

import (
	"context"

	"leetcode-digest/internal/domain/model"
)

// HintGenerator produces a solution hint block for a single question.
type HintGenerator interface {
	Generate(ctx context.Context, q model.Question) (string, error)
}
