// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrLoginCancelled is returned when the operator leaves the login form.
var ErrLoginCancelled = errors.New("login cancelled by operator")

// Credentials is what the operator typed into the login form.
type Credentials struct {
	Username string
	Password string
}

// CredentialsPrompt asks the operator for credentials. lastErr is the
// failure of the previous attempt, nil on the first one.
type CredentialsPrompt interface {
	Prompt(ctx context.Context, lastErr error) (Credentials, error)
}

// NewCredentialsPrompt picks the masked form when stdin is a terminal and
// the line prompt otherwise (pipes, scripts, tests).
func NewCredentialsPrompt(stdin *os.File, lines *LineReader, console *Console) CredentialsPrompt {
	if term.IsTerminal(int(stdin.Fd())) {
		return &formPrompt{in: stdin, out: console}
	}
	return NewLinePrompt(lines, console)
}

// NewLinePrompt reads credentials as two plain lines.
func NewLinePrompt(lines *LineReader, console *Console) CredentialsPrompt {
	return &linePrompt{lines: lines, console: console}
}

// ── masked form ──

type formPrompt struct {
	in  io.Reader
	out io.Writer
}

func (p *formPrompt) Prompt(ctx context.Context, lastErr error) (Credentials, error) {
	model := NewLoginModel(humanizeError(lastErr))
	final, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	).Run()
	if err != nil {
		if ctx.Err() != nil {
			return Credentials{}, ctx.Err()
		}
		return Credentials{}, fmt.Errorf("login form: %w", err)
	}

	result, ok := final.(*LoginModel)
	if !ok || result.cancelled {
		return Credentials{}, ErrLoginCancelled
	}
	return result.Credentials(), nil
}

// LoginModel is the Bubble Tea model of the login form: a username input and
// a masked password input. Submitting or cancelling quits the program.
type LoginModel struct {
	inputs    []textinput.Model
	focus     int
	errMsg    string
	submitted bool
	cancelled bool
}

// NewLoginModel creates the form. errMsg, when not empty, is shown under
// the inputs.
func NewLoginModel(errMsg string) *LoginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "username"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		inputs: []textinput.Model{loginInput, passwordInput},
		errMsg: errMsg,
	}
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - esc, ctrl+c:   cancel the login.
//   - tab/shift+tab: move focus.
//   - enter:         on the username moves to the password; on the
//     password submits when both fields are filled.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.focus == 0 {
				m.focusNext()
				return m, nil
			}
			creds := m.Credentials()
			if creds.Username == "" || creds.Password == "" {
				m.errMsg = "Username and password are required"
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString("Username │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nPassword │ ")
	b.WriteString(m.inputs[1].View())

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("LOGIN", formStyle.Render(b.String()), "tab: next field │ enter: confirm │ esc: quit")
}

// Credentials returns the current form values.
func (m *LoginModel) Credentials() Credentials {
	return Credentials{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// ── line prompt ──

type linePrompt struct {
	lines   *LineReader
	console *Console
}

func (p *linePrompt) Prompt(ctx context.Context, lastErr error) (Credentials, error) {
	if lastErr != nil {
		p.console.Error("Login failed: " + humanizeError(lastErr))
	}

	p.console.Print("Username: ")
	username, err := p.lines.ReadLine(ctx)
	if err != nil {
		return Credentials{}, lineErr(err)
	}

	p.console.Print("Password: ")
	password, err := p.lines.ReadLine(ctx)
	if err != nil {
		return Credentials{}, lineErr(err)
	}

	return Credentials{Username: strings.TrimSpace(username), Password: password}, nil
}

func lineErr(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrLoginCancelled
	}
	return err
}
