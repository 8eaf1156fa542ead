package ports

import (
	"context"

	"leetcode-digest/internal/domain/model"
)

// QuestionSource loads the full question catalogue.
type QuestionSource interface {
	LoadQuestions(ctx context.Context) ([]model.Question, error)
}
