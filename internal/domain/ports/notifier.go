package ports

import (
	"context"

	"leetcode-digest/internal/domain/model"
)

// Notifier delivers a rendered digest (e.g. over SMTP).
type Notifier interface {
	Send(ctx context.Context, email model.Email) error
}
