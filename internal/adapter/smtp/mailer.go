package smtp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"leetcode-digest/internal/domain/model"
	"leetcode-digest/internal/domain/ports"
)

// ErrMissingCredentials is returned when sender, receiver or password is empty.
var ErrMissingCredentials = errors.New("email credentials not properly configured")

const implicitTLSPort = 465

// Settings configures the SMTP transport and the envelope.
type Settings struct {
	Host     string
	Port     int
	Sender   string
	Receiver string
	Password string
	Timeout  time.Duration
}

type dialer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer delivers digests over SMTP with PLAIN auth.
type Mailer struct {
	settings Settings
	logger   ports.Logger
	dial     func(Settings) (dialer, error)
}

var _ ports.Notifier = (*Mailer)(nil)

// NewMailer creates a Mailer. Credentials are checked on Send.
func NewMailer(settings Settings, logger ports.Logger) *Mailer {
	return &Mailer{settings: settings, logger: logger, dial: newClient}
}

// Send delivers email to the configured receiver. There is no retry.
func (m *Mailer) Send(ctx context.Context, email model.Email) error {
	msg, err := m.buildMessage(email)
	if err != nil {
		return err
	}

	client, err := m.dial(m.settings)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("deliver email: %w", err)
	}

	if m.logger != nil {
		m.logger.Info(ctx, "email sent", "to", m.settings.Receiver, "host", m.settings.Host)
	}
	return nil
}

func (m *Mailer) buildMessage(email model.Email) (*mail.Msg, error) {
	s := m.settings
	if s.Sender == "" || s.Receiver == "" || s.Password == "" {
		return nil, ErrMissingCredentials
	}

	msg := mail.NewMsg()
	if err := msg.From(s.Sender); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(s.Receiver); err != nil {
		return nil, fmt.Errorf("set receiver: %w", err)
	}
	msg.Subject(email.Subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, htmlToText(email.HTML))
	msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	return msg, nil
}

func newClient(s Settings) (dialer, error) {
	opts := []mail.Option{
		mail.WithPort(s.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.Sender),
		mail.WithPassword(s.Password),
	}
	if s.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if s.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.Timeout))
	}
	return mail.NewClient(s.Host, opts...)
}
