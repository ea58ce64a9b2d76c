package domain

import "strings"

// Command is a program to run on the operator's machine.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command line for logs.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}
