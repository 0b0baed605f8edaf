package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	body, err := Render(TemplateWelcome, WelcomeData{
		Name:       "Ada <Lovelace>",
		EmpID:      "E1",
		Department: "Engineering",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Welcome, Ada &lt;Lovelace&gt;!")
	assert.Contains(t, body, "<strong>E1</strong>")
	assert.Contains(t, body, "Engineering department")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}
