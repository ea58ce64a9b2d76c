package domain

import "strings"

// ParamKind is the type a task parameter decodes to.
type ParamKind string

// Supported parameter kinds.
const (
	KindString ParamKind = "string"
	KindBool   ParamKind = "bool"
	KindInt    ParamKind = "int"
	KindList   ParamKind = "list"
)

// Param describes one task parameter, in positional order.
type Param struct {
	Name     string
	Kind     ParamKind
	Required bool
}

// TaskSpec describes a registered task.
type TaskSpec struct {
	Name    string
	Summary string
	Params  []Param
}

// Signature renders the task name and its parameters, optional ones in brackets.
func (t TaskSpec) Signature() string {
	if len(t.Params) == 0 {
		return t.Name
	}

	parts := make([]string, 0, len(t.Params))
	for _, p := range t.Params {
		s := p.Name + " " + string(p.Kind)
		if !p.Required {
			s = "[" + s + "]"
		}
		parts = append(parts, s)
	}
	return t.Name + "(" + strings.Join(parts, ", ") + ")"
}

// ActionError reports that a task's action failed. It matches ErrActionFailed
// and unwraps to the underlying failure.
type ActionError struct {
	Task string
	Err  error
}

func (e *ActionError) Error() string {
	return e.Message() + ": " + e.Err.Error()
}

// Message returns the failure without its cause.
func (e *ActionError) Message() string {
	return "task " + e.Task + " failed"
}

// Metadata satisfies the same contract as zerr errors.
func (e *ActionError) Metadata() map[string]any {
	return map[string]any{}
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrActionFailed.
func (e *ActionError) Is(target error) bool {
	return target == ErrActionFailed
}
