package usecase

import (
	"math/rand"
	"sort"
	"testing"

	"leetcode-digest/internal/domain/model"
)

func q(title string, d model.Difficulty) model.Question {
	return model.Question{Title: title, Link: "https://leetcode.com/problems/" + title, Topics: "Array", Difficulty: d}
}

func titles(qs []model.Question) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.Title)
	}
	sort.Strings(out)
	return out
}

func TestCategorizeSkipsSentTitles(t *testing.T) {
	questions := []model.Question{q("two-sum", model.Easy), q("3sum", model.Medium), q("lru-cache", model.Medium)}
	sent := model.NewSentTitles("3sum")

	buckets := Categorize(questions, sent)

	for _, bucket := range buckets {
		for _, got := range bucket {
			if got.Title == "3sum" {
				t.Fatalf("sent title %q was categorized", got.Title)
			}
		}
	}
	if len(buckets[model.Medium]) != 1 || buckets[model.Medium][0].Title != "lru-cache" {
		t.Errorf("medium bucket = %v", buckets[model.Medium])
	}
}

func TestCategorizeDropsUnknownDifficultyAndEmptyTitle(t *testing.T) {
	questions := []model.Question{
		q("a", "Expert"),
		q("b", ""),
		q("", model.Easy),
		q("c", "easy"),
		q("d", "HARD"),
	}

	buckets := Categorize(questions, model.SentTitles{})

	if got := buckets.Total(); got != 2 {
		t.Fatalf("Total() = %d, want 2: %v", got, buckets)
	}
	if len(buckets[model.Easy]) != 1 || buckets[model.Easy][0].Title != "c" {
		t.Errorf("easy bucket = %v", buckets[model.Easy])
	}
	if buckets[model.Easy][0].Difficulty != model.Easy {
		t.Errorf("difficulty not normalized: %q", buckets[model.Easy][0].Difficulty)
	}
	if len(buckets[model.Hard]) != 1 || buckets[model.Hard][0].Title != "d" {
		t.Errorf("hard bucket = %v", buckets[model.Hard])
	}
	if _, ok := buckets["Expert"]; ok {
		t.Error("unknown difficulty produced a bucket")
	}
}

func TestSelectReturnsShortBucketWithoutBackfill(t *testing.T) {
	buckets := model.Buckets{
		model.Easy:   {q("a", model.Easy), q("b", model.Easy), q("c", model.Easy)},
		model.Medium: {q("m1", model.Medium), q("m2", model.Medium)},
		model.Hard:   {q("h1", model.Hard)},
	}
	counts := model.SelectionCounts{model.Easy: 5, model.Medium: 0, model.Hard: 0}

	selected := NewSelectorWithRand(rand.New(rand.NewSource(1))).Select(buckets, counts)

	got := titles(selected)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("selected = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selected = %v, want %v", got, want)
		}
	}
}

func TestSelectTakesCountPerDifficulty(t *testing.T) {
	buckets := model.Buckets{
		model.Easy:   {q("e1", model.Easy), q("e2", model.Easy), q("e3", model.Easy), q("e4", model.Easy)},
		model.Medium: {q("m1", model.Medium), q("m2", model.Medium)},
		model.Hard:   {q("h1", model.Hard), q("h2", model.Hard)},
	}
	counts := model.SelectionCounts{model.Easy: 2, model.Medium: 1, model.Hard: 3}

	selected := NewSelectorWithRand(rand.New(rand.NewSource(42))).Select(buckets, counts)

	perDifficulty := map[model.Difficulty]int{}
	seen := map[string]bool{}
	for _, s := range selected {
		perDifficulty[s.Difficulty]++
		if seen[s.Title] {
			t.Errorf("duplicate selection %q", s.Title)
		}
		seen[s.Title] = true
	}
	if perDifficulty[model.Easy] != 2 || perDifficulty[model.Medium] != 1 || perDifficulty[model.Hard] != 2 {
		t.Errorf("per difficulty = %v", perDifficulty)
	}

	// Fixed order: Easy first, then Medium, then Hard.
	if selected[0].Difficulty != model.Easy || selected[2].Difficulty != model.Medium || selected[4].Difficulty != model.Hard {
		t.Errorf("selection order = %v", selected)
	}
}

func TestSelectDoesNotMutateBuckets(t *testing.T) {
	bucket := []model.Question{q("a", model.Easy), q("b", model.Easy), q("c", model.Easy), q("d", model.Easy)}
	buckets := model.Buckets{model.Easy: bucket}

	NewSelectorWithRand(rand.New(rand.NewSource(7))).Select(buckets, model.SelectionCounts{model.Easy: 2})

	for i, want := range []string{"a", "b", "c", "d"} {
		if bucket[i].Title != want {
			t.Fatalf("bucket reordered: %v", bucket)
		}
	}
}

func TestSelectEmpty(t *testing.T) {
	counts := model.SelectionCounts{model.Easy: 5}
	selected := NewSelector().Select(Categorize(nil, model.SentTitles{}), counts)
	if len(selected) != 0 {
		t.Errorf("selected = %v, want empty", selected)
	}
}

func TestSelectNeverReturnsSentTitles(t *testing.T) {
	var questions []model.Question
	for _, title := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		questions = append(questions, q(title, model.Easy))
	}
	sent := model.NewSentTitles("b", "d", "f", "h")
	selector := NewSelectorWithRand(rand.New(rand.NewSource(3)))

	for i := 0; i < 20; i++ {
		for _, s := range selector.Select(Categorize(questions, sent), model.SelectionCounts{model.Easy: 5}) {
			if sent.Has(s.Title) {
				t.Fatalf("selected already sent title %q", s.Title)
			}
		}
	}
}
