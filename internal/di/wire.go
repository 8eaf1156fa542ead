//go:build wireinject

package di

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/wire"

	"leetcode-digest/internal/adapter/hints"
	"leetcode-digest/internal/adapter/logging"
	"leetcode-digest/internal/adapter/render"
	"leetcode-digest/internal/adapter/sentlog"
	"leetcode-digest/internal/adapter/sheets"
	"leetcode-digest/internal/adapter/smtp"
	"leetcode-digest/internal/app"
	"leetcode-digest/internal/config"
	"leetcode-digest/internal/domain/model"
	"leetcode-digest/internal/domain/ports"
	"leetcode-digest/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(ctx context.Context, path config.FilePath) (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideQuestionSource,
		provideSentStore,
		usecase.NewSelector,
		provideHintGenerator,
		provideRenderer,
		provideNotifier,
		provideDigestConfig,
		usecase.NewDailyDigest,
		provideSchedule,
		app.New,
	)
	return nil, nil
}

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logging.ParseLevel(cfg.LogLevel)}
	if strings.EqualFold(cfg.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func provideQuestionSource(ctx context.Context, cfg *config.Config, logger ports.Logger) (ports.QuestionSource, error) {
	return sheets.New(ctx, sheets.Settings{
		CredentialsFile: cfg.CredentialsFile,
		SheetName:       cfg.SheetName,
		SheetID:         cfg.SheetID,
		Timeout:         cfg.RequestTimeout,
	}, logger)
}

func provideSentStore(cfg *config.Config) ports.SentStore {
	return sentlog.NewFileStore(cfg.SentLogPath)
}

func provideHintGenerator(cfg *config.Config, logger ports.Logger) (ports.HintGenerator, error) {
	return hints.NewOpenAIGenerator(hints.Settings{
		APIKey:     cfg.GitHubToken,
		BaseURL:    cfg.HintBaseURL,
		Model:      cfg.HintModel,
		Language:   cfg.HintLanguage,
		Timeout:    cfg.RequestTimeout,
		MaxRetries: cfg.HintMaxRetries,
	}, logger)
}

func provideRenderer() ports.Renderer {
	return render.NewHTMLRenderer()
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	return smtp.NewMailer(smtp.Settings{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Sender:   cfg.SenderEmail,
		Receiver: cfg.ReceiverEmail,
		Password: cfg.EmailPassword,
		Timeout:  cfg.RequestTimeout,
	}, logger)
}

func provideDigestConfig(cfg *config.Config) usecase.DailyDigestConfig {
	return usecase.DailyDigestConfig{
		Counts: model.SelectionCounts{
			model.Easy:   cfg.EasyCount,
			model.Medium: cfg.MediumCount,
			model.Hard:   cfg.HardCount,
		},
	}
}

func provideSchedule(cfg *config.Config) app.Schedule {
	return app.Schedule(cfg.ScheduleCron)
}
