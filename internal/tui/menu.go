package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-storefront/models"
)

type menuItem struct {
	title string
	path  string
}

// HomeModel is the landing page. Signed out it shows the login form,
// signed in it shows the store menu.
type HomeModel struct {
	ctx     context.Context
	session SessionManager

	storeName string
	form      *loginForm
	items     []menuItem
	idx       int
	status    string
}

// NewHomeModel creates the landing page for storeName.
func NewHomeModel(ctx context.Context, session SessionManager, storeName string) *HomeModel {
	return &HomeModel{
		ctx:       ctx,
		session:   session,
		storeName: storeName,
		form:      newLoginForm(),
		items: []menuItem{
			{title: "Products", path: PathProducts},
			{title: "Account", path: PathAccount},
		},
	}
}

func (m *HomeModel) Init() tea.Cmd {
	if m.session.IsAuthenticated() {
		return nil
	}
	return textinput.Blink
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.form.finish(msg.err)
		if msg.err == nil {
			m.idx = 0
			m.status = "Signed in as " + msg.username
		}
		return m, nil
	case loggedOutMsg:
		m.status = "Signed out"
		m.form.reset()
		return m, textinput.Blink
	}

	if !m.session.IsAuthenticated() {
		credentials, submit, cmd := m.form.update(msg)
		if submit {
			m.status = ""
			return m, m.cmdLogin(credentials)
		}
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, navigate(m.items[m.idx].path, nil)
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	if !m.session.IsAuthenticated() {
		b.WriteString("Sign in to browse the catalog.\n\n")
		b.WriteString(m.form.view())
		return renderPage(m.title(), b.String(), "tab: next field │ enter: sign in")
	}

	if user, ok := m.session.CurrentUser(); ok {
		b.WriteString("Welcome, ")
		b.WriteString(valueOrDash(user.DisplayName()))
		b.WriteString("\n\n")
	}
	b.WriteString(m.menuTable())

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ v: version")
}

// capturesInput reports whether keystrokes go to a text input.
func (m *HomeModel) capturesInput() bool {
	return !m.session.IsAuthenticated()
}

func (m *HomeModel) title() string {
	return strings.ToUpper(valueOrDash(m.storeName))
}

func (m *HomeModel) menuTable() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	if w := lipgloss.Width(fmt.Sprintf("%d", len(m.items))); w > idColWidth {
		idColWidth = w
	}
	idColWidth += 2

	actionColWidth := lipgloss.Width("Page")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Page"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	return b.String()
}

func (m *HomeModel) cmdLogin(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		err := session.Login(ctx, credentials)
		return loginDoneMsg{username: credentials.Username, err: err}
	}
}
