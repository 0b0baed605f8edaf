package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/hrms/internal/lib/email"
	"github.com/hibiken/asynq"
)

// welcomeMailer sends the welcome email. *email.Client satisfies it.
type welcomeMailer interface {
	SendWelcomeEmail(ctx context.Context, to string, data email.WelcomeData) error
}

// handleWelcomeEmailTask decodes the payload and sends the email. A returned
// error makes Asynq mark the task failed and schedule a retry.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("emp_id", p.EmpID).
		Msg("Processing welcome email task")

	err := j.mailer.SendWelcomeEmail(ctx, p.To, email.WelcomeData{
		Name:       p.Name,
		EmpID:      p.EmpID,
		Department: p.Department,
	})
	if err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("emp_id", p.EmpID).
			Err(err).
			Msg("Failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("emp_id", p.EmpID).
		Msg("Successfully sent welcome email")

	return nil
}
