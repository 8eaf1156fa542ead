package usecase

import (
	"math/rand"
	"time"

	"leetcode-digest/internal/domain/model"
)

// Categorize groups unsent questions by difficulty. Questions without a title,
// already sent, or with an unknown difficulty are dropped.
func Categorize(questions []model.Question, sent model.SentTitles) model.Buckets {
	buckets := make(model.Buckets, len(model.Difficulties))
	for _, d := range model.Difficulties {
		buckets[d] = nil
	}

	for _, q := range questions {
		if q.Title == "" || sent.Has(q.Title) {
			continue
		}
		difficulty, ok := model.ParseDifficulty(string(q.Difficulty))
		if !ok {
			continue
		}
		q.Difficulty = difficulty
		buckets[difficulty] = append(buckets[difficulty], q)
	}

	return buckets
}

// Selector samples questions from difficulty buckets.
type Selector struct {
	rnd *rand.Rand
}

// NewSelector creates a Selector seeded from the clock.
func NewSelector() *Selector {
	return NewSelectorWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSelectorWithRand creates a Selector using the supplied random source.
func NewSelectorWithRand(rnd *rand.Rand) *Selector {
	return &Selector{rnd: rnd}
}

// Select shuffles each bucket with a positive count and takes up to count
// questions from it. Shortfalls are not backfilled from other difficulties.
func (s *Selector) Select(buckets model.Buckets, counts model.SelectionCounts) []model.Question {
	var selected []model.Question

	for _, d := range model.Difficulties {
		count := counts[d]
		bucket := buckets[d]
		if count <= 0 || len(bucket) == 0 {
			continue
		}

		candidates := make([]model.Question, len(bucket))
		copy(candidates, bucket)
		s.rnd.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		if count > len(candidates) {
			count = len(candidates)
		}
		selected = append(selected, candidates[:count]...)
	}

	return selected
}
