package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/hrms/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to   string
	data email.WelcomeData
	err  error
}

func (m *fakeMailer) SendWelcomeEmail(_ context.Context, to string, data email.WelcomeData) error {
	m.to = to
	m.data = data
	return m.err
}

func newTestService(m welcomeMailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: m, logger: &logger}
}

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask(WelcomeEmailPayload{
		To:         "ada@example.com",
		Name:       "Ada",
		EmpID:      "E1",
		Department: "Eng",
	})
	require.NoError(t, err)
	assert.Equal(t, TaskWelcome, task.Type())

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, "E1", decoded["emp_id"])
	assert.Equal(t, "ada@example.com", decoded["to"])
}

func TestHandleWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask(WelcomeEmailPayload{
		To:         "ada@example.com",
		Name:       "Ada",
		EmpID:      "E1",
		Department: "Eng",
	})
	require.NoError(t, err)

	t.Run("sends", func(t *testing.T) {
		mailer := &fakeMailer{}
		require.NoError(t, newTestService(mailer).handleWelcomeEmailTask(context.Background(), task))

		assert.Equal(t, "ada@example.com", mailer.to)
		assert.Equal(t, email.WelcomeData{Name: "Ada", EmpID: "E1", Department: "Eng"}, mailer.data)
	})

	t.Run("provider failure is retried", func(t *testing.T) {
		mailer := &fakeMailer{err: errors.New("rate limited")}
		err := newTestService(mailer).handleWelcomeEmailTask(context.Background(), task)

		require.Error(t, err)
		assert.False(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("bad payload is not retried", func(t *testing.T) {
		bad := asynq.NewTask(TaskWelcome, []byte("{"))
		err := newTestService(&fakeMailer{}).handleWelcomeEmailTask(context.Background(), bad)

		require.Error(t, err)
		assert.True(t, errors.Is(err, asynq.SkipRetry))
	})
}
