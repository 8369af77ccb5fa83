package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-wallet-lock/internal/service"
	"github.com/MKhiriev/go-wallet-lock/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SetupModel is the two-step passcode creation screen. It is used both for
// the first passcode and for changing it after unlock.
type SetupModel struct {
	ctx   context.Context
	setup service.PasscodeSetup

	input      textinput.Model
	change     bool
	submitting bool
	errMsg     string
}

// NewSetupModel creates a [SetupModel] with a masked digits-only input.
func NewSetupModel(ctx context.Context, setup service.PasscodeSetup) *SetupModel {
	input := textinput.New()
	input.Placeholder = "passcode"
	input.CharLimit = models.MaxPasscodeLength
	input.Width = models.MaxPasscodeLength + 1
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	return &SetupModel{ctx: ctx, setup: setup, input: input}
}

func (m *SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case setupModeMsg:
		m.change = msg.change
		m.setup.Reset()
		m.input.Reset()
		m.errMsg = ""
		return m, textinput.Blink
	case setupDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeSetupError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		if m.change {
			return m, func() tea.Msg {
				return NavigateTo{Page: pageUnlocked, Payload: statusMsg{text: "Passcode changed."}}
			}
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageLock, Payload: presentMsg{}} }
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.dismiss):
			m.setup.Reset()
			m.input.Reset()
			m.errMsg = ""
			if m.change {
				return m, func() tea.Msg { return NavigateTo{Page: pageUnlocked} }
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		case msg.Type == tea.KeyRunes && !key.Matches(msg, keys.digit):
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SetupModel) submit() tea.Cmd {
	candidate := m.input.Value()
	m.input.Reset()

	if !m.setup.Confirming() {
		if err := m.setup.Enter(candidate); err != nil {
			m.errMsg = humanizeSetupError(err)
			return nil
		}
		m.errMsg = ""
		return nil
	}

	m.submitting = true
	ctx, setup := m.ctx, m.setup
	return func() tea.Msg {
		return setupDoneMsg{err: setup.Confirm(ctx, candidate)}
	}
}

func (m *SetupModel) View() string {
	title := "CREATE PASSCODE"
	if m.change {
		title = "CHANGE PASSCODE"
	}

	var b strings.Builder
	if m.setup.Confirming() {
		b.WriteString("Repeat the passcode\n\n")
	} else {
		b.WriteString("Enter a new passcode (4 to 6 digits)\n\n")
	}
	b.WriteString("[")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\nSaving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "enter: continue │ esc: start over"
	if m.change {
		hotKeys = "enter: continue │ esc: cancel"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func humanizeSetupError(err error) string {
	if msg := service.UserMessage(err); msg != "" {
		return msg
	}
	return err.Error()
}
