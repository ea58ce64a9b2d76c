package prompt_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herd/internal/adapters/prompt"
	"go.trai.ch/herd/internal/core/domain"
)

func newTerminal(t *testing.T, input string) (*prompt.Terminal, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	return prompt.NewTerminal(strings.NewReader(input), &out), &out
}

func TestTerminal_Prompt(t *testing.T) {
	term, out := newTerminal(t, "  123456  \n")

	got, err := term.Prompt("Rackspace Tenant ID (account #) for alice")
	require.NoError(t, err)
	assert.Equal(t, "123456", got)
	assert.Equal(t, "Rackspace Tenant ID (account #) for alice: ", out.String())
}

func TestTerminal_PasswordWithoutTerminal(t *testing.T) {
	term, _ := newTerminal(t, "s3cret")

	got, err := term.Password("Rackspace API key for alice")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got, "a final line without newline still counts")
}

func TestTerminal_NoAnswer(t *testing.T) {
	term, _ := newTerminal(t, "")

	_, err := term.Prompt("anything")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPromptFailed))
}

func TestTerminal_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"yes", "y\n", false, true},
		{"long no", "No\n", true, false},
		{"empty takes default", "\n", false, false},
		{"empty takes default true", "\n", true, true},
		{"asks again", "maybe\nyes\n", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, _ := newTerminal(t, tt.input)
			got, err := term.Confirm("Really delete server web:42???", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTerminal_ConfirmRepeatsQuestion(t *testing.T) {
	term, out := newTerminal(t, "maybe\nn\n")

	_, err := term.Confirm("Delete?", false)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "Delete? [y/N] "))
	assert.Contains(t, out.String(), "Please specify '(y)es' or '(n)o'")
}
