package render

import (
	"bytes"
	"fmt"
	"html/template"

	"leetcode-digest/internal/domain/model"
	"leetcode-digest/internal/domain/ports"
)

const unknownColor = "#6c757d"

var difficultyColors = map[model.Difficulty]string{
	model.Easy:   "#28a745",
	model.Medium: "#ffc107",
	model.Hard:   "#dc3545",
}

// ColorFor returns the accent color of a difficulty label.
func ColorFor(d model.Difficulty) string {
	if c, ok := difficultyColors[d]; ok {
		return c
	}
	return unknownColor
}

const digestTemplate = `
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<h1 style="color: #4a90e2;">🧠 Your Daily {{len .}} LeetCode Questions</h1>
{{range .}}
<div style="margin-bottom: 15px; padding: 15px; border-left: 4px solid {{.Color}}; background-color: #f8f9fa;">
  <h3 style="margin-top: 0; color: #2c3e50;">🔹 {{.Title}}
  <span style="color: {{.Color}}; font-weight: bold;">({{.Difficulty}})</span>
  </h3>

  <p><strong>🔗 Link:</strong> <a href="{{.Link}}" style="color: #4a90e2; text-decoration: none;">{{.Link}}</a></p>

  <p><strong>🧩 Topics:</strong> <span style="background-color: #e9ecef; border-radius: 3px;">{{.Topics}}</span></p>

  <div style="margin-top: 5px;">
  <strong>💡 Hints:</strong>
  <div style="background-color: #fff; padding: 10px; margin-top: 1px; border-radius: 5px; white-space: pre-line;">
{{.Hint}}
  </div>
  </div>
</div>
{{end}}
</body></html>`

type block struct {
	Title      string
	Link       string
	Topics     string
	Difficulty string
	Color      template.CSS
	Hint       string
}

// HTMLRenderer renders the digest email. Record fields and hint text are
// escaped; line breaks in hints are kept by the pre-line block.
type HTMLRenderer struct {
	tmpl *template.Template
}

var _ ports.Renderer = (*HTMLRenderer)(nil)

// NewHTMLRenderer parses the digest template.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tmpl: template.Must(template.New("digest").Parse(digestTemplate)),
	}
}

// Render builds one block per item in input order.
func (r *HTMLRenderer) Render(items []model.DigestItem) (string, error) {
	blocks := make([]block, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, newBlock(item.Question, item.Hint))
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, blocks); err != nil {
		return "", fmt.Errorf("execute digest template: %w", err)
	}
	return buf.String(), nil
}

func newBlock(q model.Question, hint string) block {
	b := block{
		Title:      q.Title,
		Link:       q.Link,
		Topics:     q.Topics,
		Difficulty: string(q.Difficulty),
		Color:      template.CSS(ColorFor(q.Difficulty)),
		Hint:       hint,
	}
	if b.Title == "" {
		b.Title = "Unknown"
	}
	if b.Link == "" {
		b.Link = "#"
	}
	if b.Topics == "" {
		b.Topics = "N/A"
	}
	if b.Difficulty == "" {
		b.Difficulty = "Unknown"
	}
	return b
}
