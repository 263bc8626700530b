// Package presenter turns navigation signals into something a driver can show.
package presenter

import (
	"fmt"
	"io"
	"sync"
)

// Console prints a hint for each signal.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) ShowLogin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, "Not signed in. Run `pixdash login` to start a session.")
}

// ClearTransferForm has nothing to clear on a command line.
func (c *Console) ClearTransferForm() {}

// View is the navigation state recorded by Flags.
type View struct {
	LoginRequired bool `json:"login_required"`
	FormCleared   bool `json:"transfer_form_cleared"`
}

// Flags records signals for a client that polls for them.
type Flags struct {
	mu   sync.Mutex
	view View
}

func NewFlags() *Flags {
	return &Flags{}
}

func (f *Flags) ShowLogin() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view.LoginRequired = true
}

func (f *Flags) ClearTransferForm() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view.FormCleared = true
}

// SignedIn resets LoginRequired after a successful login or restore.
func (f *Flags) SignedIn() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view.LoginRequired = false
}

// Take returns the recorded view and resets the one-shot FormCleared flag.
func (f *Flags) Take() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := f.view
	f.view.FormCleared = false
	return v
}
