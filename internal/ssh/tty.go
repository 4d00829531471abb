// Package ssh adapts a gliderlabs SSH session into a tcell terminal, so each
// connected client can play its own mansion on its own screen.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty over one SSH session's channel. Reads come from
// the client's keyboard, writes go to its terminal, and window-change
// requests feed tcell's resize handling.
type Tty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	width  int
	height int
	onResize func()
}

// NewTty wraps an SSH session as a tcell Tty. pty carries the initial
// window size; winCh delivers later resizes.
func NewTty(session gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	return &Tty{
		session: session,
		winCh:   winCh,
		width:   pty.Window.Width,
		height:  pty.Window.Height,
	}
}

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *Tty) Close() error                { return t.session.Close() }

// Start, Stop, and Drain are no-ops: the SSH channel is already open, stays
// open for the session's lifetime, and flushes writes as they happen.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize reports the client terminal's current size.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.width, Height: t.height}, nil
}

// NotifyResize registers tcell's resize callback and starts forwarding the
// session's window-change events to it.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.width = win.Width
			t.height = win.Height
			cb := t.onResize
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}()
}
