// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-storefront/models"
)

// loginForm renders the username and passphrase inputs of the home page.
type loginForm struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginForm() *loginForm {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passphraseInput := textinput.New()
	passphraseInput.Placeholder = "passphrase"
	passphraseInput.CharLimit = 256
	passphraseInput.Width = 40
	passphraseInput.EchoMode = textinput.EchoPassword
	passphraseInput.EchoCharacter = '*'

	return &loginForm{inputs: []textinput.Model{usernameInput, passphraseInput}}
}

// update handles a message for the form. submit is true when the user
// confirmed the form; credentials are returned exactly as typed, empty
// fields included, since the directory match is exact.
func (f *loginForm) update(msg tea.Msg) (credentials models.Credentials, submit bool, cmd tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.focusNext()
			return credentials, false, nil
		case key.Matches(keyMsg, keys.backtab):
			f.focusPrev()
			return credentials, false, nil
		case key.Matches(keyMsg, keys.enter):
			if f.submitting {
				return credentials, false, nil
			}

			credentials = models.Credentials{
				Username:   f.inputs[0].Value(),
				Passphrase: f.inputs[1].Value(),
			}

			f.errMsg = ""
			f.submitting = true
			return credentials, true, nil
		}
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return credentials, false, cmd
}

func (f *loginForm) finish(err error) {
	f.submitting = false
	if err != nil {
		f.errMsg = humanizeError(err)
		return
	}
	f.reset()
}

func (f *loginForm) reset() {
	f.errMsg = ""
	f.submitting = false
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *loginForm) view() string {
	var b strings.Builder
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	b.WriteString("Username    │ [")
	b.WriteString(f.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Passphrase  │ [")
	b.WriteString(f.inputs[1].View())
	b.WriteString("]\n")

	if f.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (f *loginForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *loginForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}
