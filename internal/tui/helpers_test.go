package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storefront/models"
)

// fakeSession is an in-memory SessionManager.
type fakeSession struct {
	mu       sync.Mutex
	user     *models.User
	loginErr error
	logouts  int
}

func (f *fakeSession) Login(_ context.Context, credentials models.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loginErr != nil {
		return f.loginErr
	}
	f.user = &models.User{ID: 1, Name: "Alice", Credentials: credentials, Active: true}
	return nil
}

func (f *fakeSession) Logout(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = nil
	f.logouts++
}

func (f *fakeSession) IsAuthenticated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user != nil
}

func (f *fakeSession) CurrentUser() (models.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return models.User{}, false
	}
	return *f.user, true
}

// collectMsgs runs cmd and flattens batches into their messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)
