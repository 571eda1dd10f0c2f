package pkg

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"os/exec"
	"sort"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	"github.com/pkg/errors"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

type Server struct {
	*ssh.Server

	// ClientBinary is started in a pseudo-terminal for every session.
	ClientBinary string
	ClientArgs   []string

	OnJoin  func(*Session)
	OnLeave func(*Session, error)

	sessions map[int]*Session
	nextId   int
	mu       sync.Mutex
}

// HostSigner loads the host key at path. An empty path generates an
// ed25519 key that lives as long as the process.
func HostSigner(path string) (ssh.Option, error) {
	if path != "" {
		return ssh.HostKeyFile(path), nil
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate host key")
	}

	signer, err := gossh.NewSignerFromKey(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create host key signer")
	}

	return func(srv *ssh.Server) error {
		srv.AddHostKey(signer)
		return nil
	}, nil
}

func NewServer(addr string, clientBinary string, hostKey string) (*Server, error) {
	s := &Server{
		ClientBinary: clientBinary,
		sessions:     make(map[int]*Session),
	}

	s.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
	}

	option, err := HostSigner(hostKey)
	if err != nil {
		return nil, err
	}

	if err := s.SetOption(option); err != nil {
		return nil, errors.Wrap(err, "failed to set host key")
	}

	return s, nil
}

func (s *Server) addSession(user string, sshSession ssh.Session) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextId++
	sess := NewSession(s.nextId, user, sshSession.RemoteAddr())
	s.sessions[sess.Id] = sess

	return sess
}

func (s *Server) removeSession(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sess.Id)
}

// Sessions returns the connected sessions ordered by id.
func (s *Server) Sessions() []*Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Id < sessions[j].Id
	})

	return sessions
}

// Command returns the client process for a session.
func (s *Server) Command(ctx context.Context, sess *Session, term string) *exec.Cmd {
	args := append([]string{"-nick", sess.Name}, s.ClientArgs...)

	cmd := exec.CommandContext(ctx, s.ClientBinary, args...)
	cmd.Env = append(cmd.Env, fmt.Sprintf("TERM=%s", term))

	return cmd
}

func (s *Server) handle(sshSession ssh.Session) {
	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "failed to start tetristerm: non-interactive terminals are not supported\n")

		sshSession.Exit(1)
		return
	}

	sess := s.addSession(sshSession.User(), sshSession)
	log.Printf("Session started: %s", sess)
	if s.OnJoin != nil {
		s.OnJoin(sess)
	}

	err := s.serve(sshSession, sess, ptyReq, winCh)

	s.removeSession(sess)
	log.Printf("Session ended: %s after %s", sess, sess.Duration())
	if s.OnLeave != nil {
		s.OnLeave(sess, err)
	}
}

func (s *Server) serve(sshSession ssh.Session, sess *Session, ptyReq ssh.Pty, winCh <-chan ssh.Window) error {
	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := s.Command(cmdCtx, sess, ptyReq.Term)

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(ptyReq.Window.Height), Cols: uint16(ptyReq.Window.Width)})
	if err != nil {
		io.WriteString(sshSession, "failed to initialize pseudo-terminal\n")
		sshSession.Exit(1)
		return errors.Wrap(err, "failed to start client")
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			err := pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
			if err != nil {
				log.Printf("Failed to resize %s: %v", sess, err)
			}
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	return cmd.Wait()
}
