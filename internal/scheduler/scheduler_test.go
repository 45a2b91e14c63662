package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/finance-service/internal/models"
)

type fakeSource struct {
	users    []models.User
	listErr  error
	failUser int64
	asOf     time.Time
}

func (f *fakeSource) DigestRecipients(context.Context) ([]models.User, error) {
	return f.users, f.listErr
}

func (f *fakeSource) Digest(_ context.Context, u models.User, asOf time.Time) (*models.Digest, error) {
	f.asOf = asOf
	if u.ID == f.failUser {
		return nil, errors.New("db down")
	}
	return &models.Digest{Username: u.Username, Email: u.Email, AsOf: models.DateOf(asOf)}, nil
}

type fakeSender struct {
	sent    []string
	failFor string
}

func (f *fakeSender) SendMonthlyDigest(d *models.Digest) error {
	if d.Username == f.failFor {
		return errors.New("smtp refused")
	}
	f.sent = append(f.sent, d.Username)
	return nil
}

func newTestScheduler(t *testing.T, src DigestSource, snd DigestSender) (*Scheduler, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	s, err := NewScheduler("0 9 1 * *", src, snd, log)
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC) }
	return s, hook
}

func TestRunDigest_ContinuesPastFailures(t *testing.T) {
	src := &fakeSource{
		users: []models.User{
			{ID: 1, Username: "anna", Email: "a@x"},
			{ID: 2, Username: "boris", Email: "b@x"},
			{ID: 3, Username: "vera", Email: "v@x"},
			{ID: 4, Username: "gleb", Email: "g@x"},
		},
		failUser: 2,
	}
	snd := &fakeSender{failFor: "vera"}
	s, hook := newTestScheduler(t, src, snd)

	sent, err := s.RunDigest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sent)
	assert.Equal(t, []string{"anna", "gleb"}, snd.sent)
	assert.Equal(t, time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC), src.asOf)

	var errorsLogged int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			errorsLogged++
		}
	}
	assert.Equal(t, 2, errorsLogged)
	assert.Equal(t, 2, hook.LastEntry().Data["sent"])
}

func TestRunDigest_RecipientsError(t *testing.T) {
	s, _ := newTestScheduler(t, &fakeSource{listErr: errors.New("db down")}, &fakeSender{})
	_, err := s.RunDigest(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestRunDigest_Cancelled(t *testing.T) {
	src := &fakeSource{users: []models.User{{ID: 1, Username: "anna"}}}
	snd := &fakeSender{}
	s, _ := newTestScheduler(t, src, snd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.RunDigest(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, snd.sent)
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := NewScheduler("every tuesday", &fakeSource{}, &fakeSender{}, log)
	assert.Error(t, err)
}
