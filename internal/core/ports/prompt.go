package ports

//go:generate mockgen -source=prompt.go -destination=mocks/mock_prompt.go -package=mocks

// Prompter asks the operator for input.
type Prompter interface {
	// Password reads a secret without echoing it.
	Password(label string) (string, error)
	// Prompt reads a line of text.
	Prompt(label string) (string, error)
	// Confirm asks a yes/no question, returning def on an empty answer.
	Confirm(label string, def bool) (bool, error)
}
