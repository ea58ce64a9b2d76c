package linelog_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herd/internal/adapters/linelog"
)

func TestWriter(t *testing.T) {
	var lines []string
	w := linelog.New(func(s string) { lines = append(lines, s) })

	_, err := io.WriteString(w, "first\r\nsec")
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, lines)

	_, err = io.WriteString(w, "ond\n\nthi")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", ""}, lines)

	require.NoError(t, w.Close())
	assert.Equal(t, []string{"first", "second", "", "thi"}, lines)

	require.NoError(t, w.Close())
	assert.Len(t, lines, 4)
}
