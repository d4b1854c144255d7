package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"syscall"

	"github.com/iammegalith/telnet"
)

// TelnetListener serves games over telnet.
type TelnetListener struct {
	addr string
	cm   *ConnectionManager
}

func NewTelnetListener(addr string, cm *ConnectionManager) *TelnetListener {
	return &TelnetListener{
		addr: addr,
		cm:   cm,
	}
}

func (l *TelnetListener) Start(ctx context.Context) error {
	connCtx, cancelConns := context.WithCancel(context.Background())

	handler := &telnetHandler{
		cm:          l.cm,
		connCtx:     connCtx,
		cancelConns: cancelConns,
	}

	svr := telnet.NewServer(l.addr, handler)

	done := make(chan struct{})
	defer close(done)

	// Stop accepting and end every game when the parent context is canceled
	go func() {
		select {
		case <-ctx.Done():
			svr.Stop()
			handler.Stop()
		case <-done:
		}
	}()

	slog.InfoContext(ctx, "listening for telnet", "addr", l.addr)

	err := svr.ListenAndServe()
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("address %s is already in use (another server running?)", l.addr)
		}
		return fmt.Errorf("serving telnet on %s: %w", l.addr, err)
	}

	return nil
}

type telnetHandler struct {
	wg          sync.WaitGroup
	cm          *ConnectionManager
	connCtx     context.Context
	cancelConns context.CancelFunc
}

func (h *telnetHandler) HandleTelnet(conn *telnet.Connection) {
	h.wg.Add(1)
	defer h.wg.Done()
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Error("closing telnet connection", "error", err)
		}
	}()

	h.cm.AcceptConnection(h.connCtx, newCRLFReadWriter(conn))
}

func (h *telnetHandler) Stop() {
	h.cancelConns()
	h.wg.Wait()
}
