package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// UnlockedModel is shown after a successful unlock.
type UnlockedModel struct {
	status string
}

func NewUnlockedModel() *UnlockedModel {
	return &UnlockedModel{}
}

func (m *UnlockedModel) Init() tea.Cmd {
	return nil
}

func (m *UnlockedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = msg.text
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.lock):
			m.status = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageLock, Payload: presentMsg{}} }
		case key.Matches(msg, keys.change):
			m.status = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageSetup, Payload: setupModeMsg{change: true}} }
		}
	}
	return m, nil
}

func (m *UnlockedModel) View() string {
	body := "Your wallet is unlocked."
	if m.status != "" {
		body += "\n\n" + okStyle.Render(m.status)
	}
	return renderPage("WALLET", body, "l: lock │ c: change passcode │ v: version")
}
