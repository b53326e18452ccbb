// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver calls Update directly and runs every returned Cmd inline,
// feeding the resulting messages back until the chain is exhausted. No
// tea.Program, terminal or goroutine-per-frame is involved, so a test sees
// the model exactly as it stands after each input.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxChain bounds how many messages one input may cascade into.
const maxChain = 100

// cmdTimeout is how long a Cmd may run before its message is dropped.
// Commands that wait on tickers or timers never finish within it.
const cmdTimeout = 50 * time.Millisecond

// Driver owns a model under test.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been produced.
	Quitting bool
}

// Option configures a Driver in New.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Send(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Call Start to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start runs the model's Init command to completion.
func (d *Driver) Start() {
	d.T.Helper()
	d.run(d.Model.Init(), 0)
}

// Send feeds msg through Update and runs the resulting commands.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd, 0)
}

// Press sends a key by its bubbletea name: "enter", "esc", "up",
// "ctrl+c", or any single printable rune such as "q" or "3".
func (d *Driver) Press(name string) {
	d.T.Helper()
	d.Send(keyMsg(name))
}

// View returns the model's current rendering.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxChain {
		d.T.Logf("teatest: message chain cut at depth %d", maxChain)
		return
	}

	msg := runWithTimeout(cmd)
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.run(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.run(next, depth+1)
}

func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

var namedKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"ctrl+c": tea.KeyCtrlC,
	"tab":    tea.KeyTab,
}

func keyMsg(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
