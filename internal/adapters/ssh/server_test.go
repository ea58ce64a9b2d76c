package ssh_test

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"io"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

const testPassword = "hunter2"

// fakeHost is an in-process SSH server that understands a handful of shell commands.
type fakeHost struct {
	addr   string
	signer ssh.Signer

	mu    sync.Mutex
	files map[string][]byte
	ran   []string
}

func startFakeHost(t *testing.T) *fakeHost {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := ssh.NewSignerFromKey(priv)
	require.NoError(t, err)

	config := &ssh.ServerConfig{
		PasswordCallback: func(_ ssh.ConnMetadata, password []byte) (*ssh.Permissions, error) {
			if string(password) != testPassword {
				return nil, io.EOF
			}
			return &ssh.Permissions{}, nil
		},
	}
	config.AddHostKey(signer)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	h := &fakeHost{addr: ln.Addr().String(), signer: signer, files: make(map[string][]byte)}
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go h.serve(conn, config)
		}
	}()
	return h
}

func (h *fakeHost) serve(conn net.Conn, config *ssh.ServerConfig) {
	_, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		_ = conn.Close()
		return
	}
	go ssh.DiscardRequests(reqs)

	for nc := range chans {
		if nc.ChannelType() != "session" {
			_ = nc.Reject(ssh.UnknownChannelType, "unsupported")
			continue
		}
		ch, creqs, err := nc.Accept()
		if err != nil {
			continue
		}
		go h.session(ch, creqs)
	}
}

func (h *fakeHost) session(ch ssh.Channel, reqs <-chan *ssh.Request) {
	defer func() { _ = ch.Close() }()
	for req := range reqs {
		if req.Type != "exec" {
			_ = req.Reply(false, nil)
			continue
		}
		var payload struct{ Command string }
		if err := ssh.Unmarshal(req.Payload, &payload); err != nil {
			_ = req.Reply(false, nil)
			return
		}
		_ = req.Reply(true, nil)

		status := h.exec(payload.Command, ch, ch, ch.Stderr())
		_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(struct{ Status uint32 }{status}))
		return
	}
}

func (h *fakeHost) exec(command string, stdin io.Reader, stdout, stderr io.Writer) uint32 {
	h.mu.Lock()
	h.ran = append(h.ran, command)
	h.mu.Unlock()

	switch {
	case strings.HasPrefix(command, "echo "):
		_, _ = io.WriteString(stdout, strings.TrimPrefix(command, "echo ")+"\n")
		return 0
	case strings.HasPrefix(command, "cat > "):
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stdin)
		h.mu.Lock()
		h.files[unquote(strings.TrimPrefix(command, "cat > "))] = buf.Bytes()
		h.mu.Unlock()
		return 0
	case strings.HasPrefix(command, "cat "):
		path := unquote(strings.TrimPrefix(command, "cat "))
		h.mu.Lock()
		data, ok := h.files[path]
		h.mu.Unlock()
		if !ok {
			_, _ = io.WriteString(stderr, "cat: "+path+": No such file or directory\n")
			return 1
		}
		_, _ = stdout.Write(data)
		return 0
	case command == "false":
		_, _ = io.WriteString(stderr, "boom\n")
		return 3
	default:
		return 127
	}
}

func (h *fakeHost) file(path string) ([]byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	data, ok := h.files[path]
	return data, ok
}

func (h *fakeHost) commands() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.ran...)
}

func unquote(s string) string {
	return strings.ReplaceAll(strings.Trim(s, "'"), `'"'"'`, "'")
}
