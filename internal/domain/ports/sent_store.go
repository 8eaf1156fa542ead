package ports

import (
	"context"

	"leetcode-digest/internal/domain/model"
)

// SentStore persists the titles of questions that were already emailed.
type SentStore interface {
	Load(ctx context.Context) (model.SentTitles, error)
	Append(ctx context.Context, titles []string) error
}
