package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leetcode-digest/internal/domain/model"
	"leetcode-digest/internal/domain/ports"
)

// DigestSubject is the fixed subject line of the daily email.
const DigestSubject = "📬 Your Daily LeetCode Set"

// DailyDigest orchestrates loading, selecting, hinting, rendering, mailing and logging.
type DailyDigest struct {
	source   ports.QuestionSource
	sent     ports.SentStore
	selector *Selector
	hints    ports.HintGenerator
	renderer ports.Renderer
	notifier ports.Notifier
	logger   ports.Logger
	counts   model.SelectionCounts
}

// DailyDigestConfig controls how many questions of each difficulty are sent.
type DailyDigestConfig struct {
	Counts model.SelectionCounts
}

// Result summarizes one run.
type Result struct {
	RunID    string
	Loaded   int
	Eligible int
	Sent     []string
}

// NewDailyDigest constructs a DailyDigest use case.
func NewDailyDigest(
	source ports.QuestionSource,
	sent ports.SentStore,
	selector *Selector,
	hints ports.HintGenerator,
	renderer ports.Renderer,
	notifier ports.Notifier,
	logger ports.Logger,
	cfg DailyDigestConfig,
) *DailyDigest {
	return &DailyDigest{
		source:   source,
		sent:     sent,
		selector: selector,
		hints:    hints,
		renderer: renderer,
		notifier: notifier,
		logger:   logger,
		counts:   cfg.Counts,
	}
}

// Run executes the daily digest workflow. A run with nothing left to send
// returns a Result with no titles and a nil error.
func (d *DailyDigest) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	result := Result{RunID: uuid.NewString()}
	logger := d.logger.With("run_id", result.RunID)
	logger.Info(ctx, "starting daily digest")

	questions, err := d.source.LoadQuestions(ctx)
	if err != nil {
		logger.Error(ctx, "failed to load questions", "error", err)
		return result, fmt.Errorf("load questions: %w", err)
	}
	result.Loaded = len(questions)
	logger.Info(ctx, "loaded questions", "count", len(questions))

	sent, err := d.sent.Load(ctx)
	if err != nil {
		logger.Error(ctx, "failed to load sent log", "error", err)
		return result, fmt.Errorf("load sent titles: %w", err)
	}

	buckets := Categorize(questions, sent)
	result.Eligible = buckets.Total()
	selected := d.selector.Select(buckets, d.counts)
	if len(selected) == 0 {
		logger.Info(ctx, "no new questions available to send", "previously_sent", len(sent))
		return result, nil
	}

	items := d.buildItems(ctx, logger, selected)

	body, err := d.renderer.Render(items)
	if err != nil {
		logger.Error(ctx, "failed to render email", "error", err)
		return result, fmt.Errorf("render email: %w", err)
	}

	if err := d.notifier.Send(ctx, model.Email{Subject: DigestSubject, HTML: body}); err != nil {
		logger.Error(ctx, "failed to send email", "error", err)
		return result, fmt.Errorf("send email: %w", err)
	}

	titles := make([]string, 0, len(selected))
	for _, q := range selected {
		titles = append(titles, q.Title)
	}
	if err := d.sent.Append(ctx, titles); err != nil {
		// The email already went out; these titles may be resent next run.
		logger.Error(ctx, "failed to record sent questions", "error", err, "titles", titles)
		return result, fmt.Errorf("record sent titles: %w", err)
	}
	result.Sent = titles

	logger.Info(ctx, "daily digest completed", "questions", len(titles), "duration", time.Since(start))
	return result, nil
}

// buildItems requests one hint per question. A failed hint is replaced by its
// error text so the remaining questions and the email are unaffected.
func (d *DailyDigest) buildItems(ctx context.Context, logger ports.Logger, selected []model.Question) []model.DigestItem {
	items := make([]model.DigestItem, 0, len(selected))
	for _, q := range selected {
		hint, err := d.hints.Generate(ctx, q)
		if err != nil {
			logger.Error(ctx, "failed to generate hints", "title", q.Title, "error", err)
			hint = fmt.Sprintf("Error getting AI hints: %v", err)
		}
		items = append(items, model.DigestItem{Question: q, Hint: hint})
	}
	return items
}
