package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// AccountModel shows the signed-in user and offers logout.
type AccountModel struct {
	ctx      context.Context
	session  SessionManager
	homePath string
}

// NewAccountModel creates the account page. Logout and esc return to
// homePath.
func NewAccountModel(ctx context.Context, session SessionManager, homePath string) *AccountModel {
	return &AccountModel{ctx: ctx, session: session, homePath: homePath}
}

func (m *AccountModel) Init() tea.Cmd {
	return nil
}

func (m *AccountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(m.homePath, nil)
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *AccountModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session
	homePath := m.homePath

	return func() tea.Msg {
		session.Logout(ctx)
		return NavigateTo{Path: homePath, Payload: loggedOutMsg{}}
	}
}

func (m *AccountModel) View() string {
	user, ok := m.session.CurrentUser()
	if !ok {
		return renderPage("ACCOUNT", "Not signed in", "esc: home")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("ID:        %d\n", user.ID))
	b.WriteString(fmt.Sprintf("Name:      %s\n", valueOrDash(user.DisplayName())))
	b.WriteString(fmt.Sprintf("Username:  %s\n", valueOrDash(user.Credentials.Username)))
	b.WriteString(fmt.Sprintf("Status:    %s\n", valueOrDash(user.Status)))
	b.WriteString(fmt.Sprintf("Created:   %s", valueOrDash(user.Created)))

	return renderPage("ACCOUNT", b.String(), "l: log out │ esc: home")
}
