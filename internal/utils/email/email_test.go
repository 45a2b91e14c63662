package email

import (
	"errors"
	"io"
	"net/smtp"
	"testing"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/finance-service/internal/config"
	"github.com/Dan9191/finance-service/internal/models"
)

func testDigest() *models.Digest {
	return &models.Digest{
		Username: "anna",
		Email:    "anna@example.com",
		AsOf:     models.NewDate(2025, time.June, 1),
		Forecast: models.ExpenseForecast{
			ForecastAmount:  5000,
			Confidence:      "средняя",
			PeriodsAnalyzed: 3,
			Message:         "Прогноз построен по 3 месяцам",
		},
		Anomaly: models.Anomaly{
			Status: true,
			Data: &models.Transaction{
				OperationDate:  models.NewDate(2025, time.May, 20),
				Category:       "Техника",
				Description:    "M.VIDEO",
				CurrencyAmount: -90000,
			},
		},
	}
}

func TestDigestBody(t *testing.T) {
	body := DigestBody(testDigest())

	assert.Contains(t, body, "Здравствуйте, anna!")
	assert.Contains(t, body, "5000.00 RUB (достоверность: средняя)")
	assert.Contains(t, body, `90000.00 RUB, категория "Техника", 2025-05-20 (M.VIDEO)`)
	assert.Equal(t, "Финансовая сводка на 2025-06-01", DigestSubject(testDigest()))
}

func TestDigestBody_NoData(t *testing.T) {
	d := &models.Digest{
		Username: "boris",
		Forecast: models.ExpenseForecast{Confidence: "низкая", Message: "Недостаточно данных для прогноза"},
	}
	body := DigestBody(d)

	assert.Contains(t, body, "Прогноз расходов: Недостаточно данных для прогноза")
	assert.Contains(t, body, "Нетипичных операций не найдено.")
}

func newTestSender() *Sender {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewSender(&config.Config{
		SMTPHost:    "smtp.local",
		SMTPPort:    "2525",
		SenderEmail: "noreply@finance.local",
	}, log)
}

func TestSendMonthlyDigest(t *testing.T) {
	s := newTestSender()
	var sent *email.Email
	var gotAddr string
	s.send = func(e *email.Email, addr string, auth smtp.Auth) error {
		sent, gotAddr = e, addr
		assert.Nil(t, auth)
		return nil
	}

	require.NoError(t, s.SendMonthlyDigest(testDigest()))
	assert.Equal(t, "smtp.local:2525", gotAddr)
	assert.Equal(t, []string{"anna@example.com"}, sent.To)
	assert.Equal(t, "noreply@finance.local", sent.From)
	assert.Contains(t, string(sent.Text), "M.VIDEO")
}

func TestSendMonthlyDigest_Errors(t *testing.T) {
	s := newTestSender()
	s.send = func(*email.Email, string, smtp.Auth) error { return errors.New("connection refused") }

	err := s.SendMonthlyDigest(testDigest())
	assert.ErrorContains(t, err, "connection refused")

	d := testDigest()
	d.Email = ""
	assert.Error(t, s.SendMonthlyDigest(d))
}
