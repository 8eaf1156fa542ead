package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingConfig is returned when required settings are absent.
var ErrMissingConfig = errors.New("missing required configuration")

// FilePath is an optional config file (yaml/json/toml) layered under the environment.
type FilePath string

// Config contains runtime configuration values.
type Config struct {
	GitHubToken     string
	SheetName       string
	SheetID         string
	CredentialsFile string

	SenderEmail   string
	ReceiverEmail string
	EmailPassword string
	SMTPHost      string
	SMTPPort      int

	SentLogPath string
	EasyCount   int
	MediumCount int
	HardCount   int

	HintModel      string
	HintBaseURL    string
	HintLanguage   string
	HintMaxRetries int
	RequestTimeout time.Duration

	ScheduleCron string
	LogLevel     string
	LogFormat    string
}

const (
	defaultCredentialsFile = "credentials.json"
	defaultSMTPHost        = "smtp.gmail.com"
	defaultSMTPPort        = 465
	defaultSentLog         = "sent_questions.txt"
	defaultEasyCount       = 5
	defaultHintModel       = "openai/gpt-4.1"
	defaultHintBaseURL     = "https://models.github.ai/inference"
	defaultHintLanguage    = "cpp"
	defaultTimeout         = 60 * time.Second
	defaultCron            = "0 9 * * *" // 09:00 every day
)

// Load builds a Config from .env, an optional config file and environment variables.
func Load(path FilePath) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(string(path))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		GitHubToken:     v.GetString("github_token"),
		SheetName:       v.GetString("sheet_name"),
		SheetID:         v.GetString("sheet_id"),
		CredentialsFile: v.GetString("google_credentials_file"),
		SenderEmail:     v.GetString("sender_email"),
		ReceiverEmail:   v.GetString("receiver_email"),
		EmailPassword:   v.GetString("email_password"),
		SMTPHost:        v.GetString("smtp_host"),
		SMTPPort:        v.GetInt("smtp_port"),
		SentLogPath:     v.GetString("sent_log_path"),
		EasyCount:       v.GetInt("easy_count"),
		MediumCount:     v.GetInt("medium_count"),
		HardCount:       v.GetInt("hard_count"),
		HintModel:       v.GetString("hint_model"),
		HintBaseURL:     v.GetString("hint_base_url"),
		HintLanguage:    v.GetString("hint_language"),
		HintMaxRetries:  v.GetInt("hint_max_retries"),
		RequestTimeout:  v.GetDuration("request_timeout"),
		ScheduleCron:    v.GetString("schedule_cron"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.HintMaxRetries < 0 {
		cfg.HintMaxRetries = 0
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("google_credentials_file", defaultCredentialsFile)
	v.SetDefault("smtp_host", defaultSMTPHost)
	v.SetDefault("smtp_port", defaultSMTPPort)
	v.SetDefault("sent_log_path", defaultSentLog)
	v.SetDefault("easy_count", defaultEasyCount)
	v.SetDefault("medium_count", 0)
	v.SetDefault("hard_count", 0)
	v.SetDefault("hint_model", defaultHintModel)
	v.SetDefault("hint_base_url", defaultHintBaseURL)
	v.SetDefault("hint_language", defaultHintLanguage)
	v.SetDefault("hint_max_retries", 0)
	v.SetDefault("request_timeout", defaultTimeout)
	v.SetDefault("schedule_cron", defaultCron)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

func (c *Config) validate() error {
	var missing []string
	if c.GitHubToken == "" {
		missing = append(missing, "GITHUB_TOKEN")
	}
	if c.SheetName == "" && c.SheetID == "" {
		missing = append(missing, "SHEET_NAME")
	}
	if c.SenderEmail == "" {
		missing = append(missing, "SENDER_EMAIL")
	}
	if c.ReceiverEmail == "" {
		missing = append(missing, "RECEIVER_EMAIL")
	}
	if c.EmailPassword == "" {
		missing = append(missing, "EMAIL_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	if c.EasyCount < 0 || c.MediumCount < 0 || c.HardCount < 0 {
		return fmt.Errorf("question counts must not be negative (easy=%d medium=%d hard=%d)", c.EasyCount, c.MediumCount, c.HardCount)
	}
	return nil
}
