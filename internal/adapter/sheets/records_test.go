package sheets

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/api/googleapi"

	"leetcode-digest/internal/domain/model"
)

func TestRecordsFromValues(t *testing.T) {
	values := [][]interface{}{
		{"Title", "Difficulty", "Link", "Topics"},
		{" Two Sum ", "Easy", "https://leetcode.com/problems/two-sum/", "Array, Hash Table"},
		{"LRU Cache", "medium", "https://leetcode.com/problems/lru-cache/"},
		{},
		{"", "", "", ""},
		{float64(1234), "Hard", "", "Math"},
		{"Best Time to Buy\nand Sell Stock", "Easy"},
	}

	got := RecordsFromValues(values)

	want := []model.Question{
		{Title: "Two Sum", Difficulty: "Easy", Link: "https://leetcode.com/problems/two-sum/", Topics: "Array, Hash Table"},
		{Title: "LRU Cache", Difficulty: "medium", Link: "https://leetcode.com/problems/lru-cache/"},
		{Title: "1234", Difficulty: "Hard", Topics: "Math"},
		{Title: "Best Time to Buy and Sell Stock", Difficulty: "Easy"},
	}
	if len(got) != len(want) {
		t.Fatalf("RecordsFromValues() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRecordsFromValuesMissingColumns(t *testing.T) {
	values := [][]interface{}{
		{"Title"},
		{"Two Sum"},
	}

	got := RecordsFromValues(values)
	if len(got) != 1 || got[0].Title != "Two Sum" || got[0].Difficulty != "" {
		t.Errorf("RecordsFromValues() = %+v", got)
	}
}

func TestRecordsFromValuesHeaderOnly(t *testing.T) {
	if got := RecordsFromValues([][]interface{}{{"Title", "Difficulty"}}); len(got) != 0 {
		t.Errorf("RecordsFromValues() = %+v, want empty", got)
	}
	if got := RecordsFromValues(nil); len(got) != 0 {
		t.Errorf("RecordsFromValues(nil) = %+v, want empty", got)
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"  x ", "x"},
		{"Two\nSum \t II", "Two Sum II"},
		{float64(3), "3"},
		{1.5, "1.5"},
		{true, "true"},
	}
	for _, tt := range tests {
		if got := cellString(tt.in); got != tt.want {
			t.Errorf("cellString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	notFound := &googleapi.Error{Code: http.StatusNotFound, Message: "Requested entity was not found."}
	if err := classify(notFound, "LeetCode"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("classify(404) = %v, want ErrSheetNotFound", err)
	}

	forbidden := fmt.Errorf("wrapped: %w", &googleapi.Error{Code: http.StatusForbidden})
	err := classify(forbidden, "LeetCode")
	if errors.Is(err, ErrSheetNotFound) {
		t.Errorf("classify(403) = %v, should not be ErrSheetNotFound", err)
	}
}

func TestQuoteSheetTitle(t *testing.T) {
	if got := quoteSheetTitle("Bob's Sheet"); got != "'Bob''s Sheet'" {
		t.Errorf("quoteSheetTitle() = %q", got)
	}
}
