package model

import "strings"

// Difficulty is the challenge level of a practice question.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists the known labels in selection order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty title-cases raw and reports whether it is a known label.
func ParseDifficulty(raw string) (Difficulty, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	normalized := Difficulty(strings.ToUpper(raw[:1]) + strings.ToLower(raw[1:]))
	for _, d := range Difficulties {
		if d == normalized {
			return d, true
		}
	}
	return normalized, false
}

// Question is one row of the question sheet.
type Question struct {
	Title      string
	Link       string
	Topics     string
	Difficulty Difficulty
}

// Buckets groups unsent questions by difficulty.
type Buckets map[Difficulty][]Question

// Total returns the number of questions across all buckets.
func (b Buckets) Total() int {
	n := 0
	for _, qs := range b {
		n += len(qs)
	}
	return n
}

// SelectionCounts is the number of questions to pick per difficulty.
type SelectionCounts map[Difficulty]int
