package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Invocation is one parsed task token from the command line:
// name[:arg,key=value,...]. A backslash escapes the next character,
// so "\," and "\=" are literal.
type Invocation struct {
	Task       string
	Positional []string
	Named      map[string]string
}

// ParseInvocation parses a single task token.
func ParseInvocation(token string) (Invocation, error) {
	name, rest, hasArgs := strings.Cut(token, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Invocation{}, invalidInvocation(token, "missing task name")
	}

	inv := Invocation{Task: name, Named: map[string]string{}}
	if !hasArgs || rest == "" {
		return inv, nil
	}

	for _, arg := range splitEscaped(rest) {
		key, value, named := cutUnescaped(arg, '=')
		if !named {
			inv.Positional = append(inv.Positional, unescape(arg))
			continue
		}
		key = strings.TrimSpace(unescape(key))
		if key == "" {
			return Invocation{}, invalidInvocation(token, "empty argument name")
		}
		if _, dup := inv.Named[key]; dup {
			return Invocation{}, invalidInvocation(token, "argument "+key+" given twice")
		}
		inv.Named[key] = unescape(value)
	}
	return inv, nil
}

// String renders the invocation back into token form.
func (i Invocation) String() string {
	if len(i.Positional) == 0 && len(i.Named) == 0 {
		return i.Task
	}
	args := make([]string, 0, len(i.Positional)+len(i.Named))
	for _, p := range i.Positional {
		args = append(args, escape(p))
	}
	for _, k := range sortedKeys(i.Named) {
		args = append(args, escape(k)+"="+escape(i.Named[k]))
	}
	return i.Task + ":" + strings.Join(args, ",")
}

func invalidInvocation(token, reason string) error {
	return zerr.With(zerr.Wrap(ErrInvalidInvocation, reason), "token", token)
}

// splitEscaped splits s on commas that are not preceded by a backslash.
// Escapes are kept so that later passes can still see them.
func splitEscaped(s string) []string {
	var parts []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			cur.WriteByte(s[i])
			cur.WriteByte(s[i+1])
			i++
		case s[i] == ',':
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(s[i])
		}
	}
	return append(parts, cur.String())
}

func cutUnescaped(s string, sep byte) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

var escaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, "=", `\=`)

func escape(s string) string {
	return escaper.Replace(s)
}
