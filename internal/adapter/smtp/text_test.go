package smtp

import (
	"strings"
	"testing"
)

func TestHTMLToText(t *testing.T) {
	input := `<html><head><style>p{}</style></head><body>
<h1>Your Daily LeetCode Questions</h1>
<div><h3>Two Sum <span>(Easy)</span></h3>
<p><strong>Link:</strong> <a href="https://leetcode.com/problems/two-sum/">https://leetcode.com/problems/two-sum/</a></p>
<div><p>Brute: loops<br>Optimal: hash</p></div></div>
</body></html>`

	got := htmlToText(input)

	for _, want := range []string{"Your Daily LeetCode Questions", "Two Sum (Easy)", "Link: https://leetcode.com/problems/two-sum/", "Brute: loops\nOptimal: hash"} {
		if !strings.Contains(got, want) {
			t.Errorf("text missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "p{}") {
		t.Error("style content leaked into text")
	}
	if strings.Contains(got, "\n\n\n") {
		t.Error("blank lines not collapsed")
	}
}

func TestHTMLToTextEmpty(t *testing.T) {
	if got := htmlToText(""); got != "" {
		t.Errorf("htmlToText(\"\") = %q", got)
	}
}
