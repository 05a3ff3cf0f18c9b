// Package tui implements the interactive terminal UI of the authctl client:
// a login form that exchanges credentials for a bearer token, shows the
// details of the authenticated account, and copies the token to the
// clipboard on request.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pzawadzki/filmoteka-auth/internal/adapter"
	"github.com/pzawadzki/filmoteka-auth/models"
)

// LoginResult is the message produced by the async login command.
type LoginResult struct {
	Token   models.TokenResponse
	Details models.UserDisplay
	Err     error
}

// copiedMsg signals that the token was placed on the clipboard.
type copiedMsg struct{ err error }

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (username and password) and dispatches an async login command
// on form submission. After a successful login it shows the account details
// and the issued token.
type LoginModel struct {
	ctx context.Context
	api adapter.APIClient

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	loggedIn bool
	details  models.UserDisplay
	token    string
	notice   string
}

// NewLoginModel creates a [LoginModel] with pre-configured username and
// password inputs. The username field receives focus immediately; the
// password field uses masked echo.
func NewLoginModel(ctx context.Context, api adapter.APIClient) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		api:    api,
		inputs: []textinput.Model{usernameInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]: clears submitting state; on error, populates errMsg.
//   - esc / ctrl+c: quits.
//   - tab/shift+tab: moves focus between inputs.
//   - enter: validates inputs and dispatches the async login command.
//   - c: after login, copies the token to the clipboard.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.loggedIn = true
		m.errMsg = ""
		m.token = msg.Token.AccessToken
		m.details = msg.Details
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.notice = "clipboard unavailable"
		} else {
			m.notice = "token copied to clipboard"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "c":
			if m.loggedIn {
				return m, m.cmdCopyToken()
			}
		case "enter":
			if m.submitting || m.loggedIn {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				m.errMsg = "Login i hasło są wymagane"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	if m.loggedIn {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("filmoteka-auth login"))
	b.WriteString("\n\n")

	if m.loggedIn {
		b.WriteString(fmt.Sprintf("Zalogowano jako: %s\n", m.details.Username))
		b.WriteString(fmt.Sprintf("Role: %s\n\n", strings.Join(m.details.Roles, ", ")))
		b.WriteString("Token:\n")
		b.WriteString(tokenStyle.Render(m.token))
		b.WriteString("\n\n")
		if m.notice != "" {
			b.WriteString(helpStyle.Render(m.notice))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("c: copy token • esc: quit"))
		return appStyle.Render(b.String())
	}

	b.WriteString("Login: ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nHasło: ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString("logging in...\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: switch field • enter: submit • esc: quit"))
	return appStyle.Render(b.String())
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

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		token, err := m.api.Login(m.ctx, username, password)
		if err != nil {
			return LoginResult{Err: err}
		}

		details, err := m.api.UserDetails(m.ctx)
		if err != nil {
			return LoginResult{Err: err}
		}

		return LoginResult{Token: token, Details: details}
	}
}

func (m *LoginModel) cmdCopyToken() tea.Cmd {
	token := m.token
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(token)}
	}
}
