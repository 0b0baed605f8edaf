package email

import "context"

// WelcomeData is the data the welcome template renders.
type WelcomeData struct {
	Name       string
	EmpID      string
	Department string
}

// SendWelcomeEmail greets a newly created employee.
func (c *Client) SendWelcomeEmail(ctx context.Context, to string, data WelcomeData) error {
	return c.SendEmail(ctx, to, "Welcome to HRMS, "+data.Name, TemplateWelcome, data)
}
