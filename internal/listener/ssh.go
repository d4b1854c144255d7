package listener

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

// SshListener serves games over ssh. Clients are not authenticated; each
// shell request on a session channel starts a new game.
type SshListener struct {
	addr    string
	cm      *ConnectionManager
	hostKey ssh.Signer
}

func NewSshListener(addr string, cm *ConnectionManager, hostKey ssh.Signer) *SshListener {
	return &SshListener{
		addr:    addr,
		cm:      cm,
		hostKey: hostKey,
	}
}

func (l *SshListener) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", l.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", l.addr, err)
	}

	slog.InfoContext(ctx, "listening for ssh", "addr", ln.Addr().String())

	return l.serve(ctx, ln)
}

// serve accepts connections on ln until ctx is canceled, then waits for
// every open connection to finish.
func (l *SshListener) serve(ctx context.Context, ln net.Listener) error {
	config := &ssh.ServerConfig{
		NoClientAuth: true,
	}
	config.AddHostKey(l.hostKey)

	connCtx, cancelConns := context.WithCancel(context.Background())
	defer cancelConns()
	var wg sync.WaitGroup

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				cancelConns()
				wg.Wait()
				return nil
			default:
			}
			slog.ErrorContext(ctx, "accepting ssh connection", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			l.handleConnection(connCtx, conn, config)
		}()
	}
}

func (l *SshListener) handleConnection(ctx context.Context, conn net.Conn, config *ssh.ServerConfig) {
	defer conn.Close()

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		slog.ErrorContext(ctx, "ssh handshake", "remote", conn.RemoteAddr(), "error", err)
		return
	}
	defer sshConn.Close()

	logger := slog.With("remote", conn.RemoteAddr().String(), "user", sshConn.User())
	logger.InfoContext(ctx, "ssh connection established")

	// Unblock the channel loop below on shutdown.
	go func() {
		<-ctx.Done()
		sshConn.Close()
	}()

	go ssh.DiscardRequests(reqs)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			newChan.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}

		ch, requests, err := newChan.Accept()
		if err != nil {
			logger.ErrorContext(ctx, "accepting ssh channel", "error", err)
			continue
		}

		if !waitForShell(ctx, requests) {
			ch.Close()
			continue
		}

		l.cm.AcceptConnection(ctx, newCRLFReadWriter(ch))
		ch.Close()
	}
}

// waitForShell answers channel requests until the client asks for a shell.
// Clients do not forward input before the shell reply. PTY requests are
// refused so the client keeps local echo and line editing.
func waitForShell(ctx context.Context, requests <-chan *ssh.Request) bool {
	shellReady := make(chan struct{})
	go func() {
		started := false
		for req := range requests {
			if req.Type != "shell" || started {
				req.Reply(false, nil)
				continue
			}
			req.Reply(true, nil)
			started = true
			close(shellReady)
		}
	}()

	select {
	case <-shellReady:
		return true
	case <-ctx.Done():
		return false
	}
}
