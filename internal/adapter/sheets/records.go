package sheets

import (
	"fmt"
	"strings"

	"leetcode-digest/internal/domain/model"
)

const (
	colTitle      = "Title"
	colLink       = "Link"
	colTopics     = "Topics"
	colDifficulty = "Difficulty"
)

// RecordsFromValues maps a worksheet grid to questions. The first row is the
// header; rows shorter than the header get empty values and fully blank rows
// are skipped.
func RecordsFromValues(values [][]interface{}) []model.Question {
	if len(values) < 2 {
		return nil
	}

	header := make(map[string]int, len(values[0]))
	for i, cell := range values[0] {
		name := cellString(cell)
		if _, dup := header[name]; name != "" && !dup {
			header[name] = i
		}
	}

	get := func(row []interface{}, column string) string {
		idx, ok := header[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return cellString(row[idx])
	}

	questions := make([]model.Question, 0, len(values)-1)
	for _, row := range values[1:] {
		q := model.Question{
			Title:      get(row, colTitle),
			Link:       get(row, colLink),
			Topics:     get(row, colTopics),
			Difficulty: model.Difficulty(get(row, colDifficulty)),
		}
		if q == (model.Question{}) {
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return collapseSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	default:
		return collapseSpace(fmt.Sprint(v))
	}
}

// collapseSpace folds whitespace runs, including newlines, into single spaces
// so a title is stored on one line of the sent log.
func collapseSpace(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
