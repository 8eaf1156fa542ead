package model

// SentTitles is the set of question titles already delivered.
type SentTitles map[string]struct{}

// NewSentTitles builds a set from titles.
func NewSentTitles(titles ...string) SentTitles {
	set := make(SentTitles, len(titles))
	for _, t := range titles {
		set[t] = struct{}{}
	}
	return set
}

// Has reports whether title was already sent.
func (s SentTitles) Has(title string) bool {
	_, ok := s[title]
	return ok
}
