package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// chainLink is what zerr errors expose: their own message and metadata,
// without the cause chain.
type chainLink interface {
	Message() string
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks err's chain. zerr levels contribute their own
// message; the first foreign error ends the walk with its full text.
// zerr levels without a message only carry metadata, which is folded into
// the next level that has one.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; {
		link, ok := current.(chainLink)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		if link.Message() == "" {
			if pending == nil {
				pending = map[string]any{}
			}
			maps.Copy(pending, link.Metadata())
		} else {
			meta := link.Metadata()
			maps.Copy(meta, pending)
			pending = nil
			entries = append(entries, ErrorEntry{Message: link.Message(), Metadata: meta})
		}
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as
//
//	Error: outer
//	       key: value
//
//	  Caused by:
//	    → inner
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		prefix, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			prefix, indent = "    → ", "      "
		}

		lines = append(lines, prefix+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
