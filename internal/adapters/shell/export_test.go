package shell

import (
	"io"
	"os/exec"
)

// AttachPTY exposes attachPTY without terminal resizing.
func AttachPTY(c *exec.Cmd, in io.Reader, out io.Writer) error {
	return attachPTY(c, in, out, nil)
}
