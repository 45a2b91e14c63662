package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/config"
	"github.com/Dan9191/finance-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// DigestSubject is the subject line of the monthly digest for asOf.
func DigestSubject(d *models.Digest) string {
	return fmt.Sprintf("Финансовая сводка на %s", d.AsOf)
}

// DigestBody renders the plain text body of the monthly digest
func DigestBody(d *models.Digest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Здравствуйте, %s!\n\n", d.Username)

	f := d.Forecast
	if f.PeriodsAnalyzed == 0 {
		fmt.Fprintf(&b, "Прогноз расходов: %s\n", f.Message)
	} else {
		fmt.Fprintf(&b, "Прогноз расходов на следующий месяц: %.2f RUB (достоверность: %s).\n", f.ForecastAmount, f.Confidence)
		fmt.Fprintf(&b, "%s\n", f.Message)
	}

	if d.Anomaly.Status && d.Anomaly.Data != nil {
		tx := d.Anomaly.Data
		fmt.Fprintf(&b, "\nНетипичная операция: %.2f RUB, категория %q", -tx.CurrencyAmount, tx.Category)
		if tx.OperationDate.Valid() {
			fmt.Fprintf(&b, ", %s", tx.OperationDate)
		}
		if tx.Description != "" {
			fmt.Fprintf(&b, " (%s)", tx.Description)
		}
		b.WriteString(".\n")
	} else {
		b.WriteString("\nНетипичных операций не найдено.\n")
	}

	b.WriteString("\nС уважением,\nFinance Service")
	return b.String()
}

// SendMonthlyDigest mails a digest to its user
func (s *Sender) SendMonthlyDigest(d *models.Digest) error {
	if d.Email == "" {
		return fmt.Errorf("user %s has no email address", d.Username)
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{d.Email}
	e.Subject = DigestSubject(d)
	e.Text = []byte(DigestBody(d))

	// Send email
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := s.send(e, addr, auth); err != nil {
		s.logger.Errorf("Failed to send digest to %s: %v", d.Email, err)
		return fmt.Errorf("failed to send digest: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", d.Email, e.Subject)
	return nil
}
