package ports

import "leetcode-digest/internal/domain/model"

// Renderer turns digest items into an email body.
type Renderer interface {
	Render(items []model.DigestItem) (string, error)
}
