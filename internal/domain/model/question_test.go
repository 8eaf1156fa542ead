package model

import "testing"

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		raw   string
		want  Difficulty
		known bool
	}{
		{"Easy", Easy, true},
		{"easy", Easy, true},
		{"MEDIUM", Medium, true},
		{" hard ", Hard, true},
		{"Expert", "Expert", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseDifficulty(tt.raw)
		if got != tt.want || ok != tt.known {
			t.Errorf("ParseDifficulty(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.known)
		}
	}
}

func TestBucketsTotal(t *testing.T) {
	b := Buckets{
		Easy: {{Title: "a"}, {Title: "b"}},
		Hard: {{Title: "c"}},
	}
	if got := b.Total(); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}
	if got := (Buckets{}).Total(); got != 0 {
		t.Errorf("empty Total() = %d, want 0", got)
	}
}
