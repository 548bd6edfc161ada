package cli

import (
	"context"
	"strings"

	"github.com/adelaplace/maitre/internal/cli/formatter"
	"github.com/adelaplace/maitre/internal/domain"
	"github.com/adelaplace/maitre/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// chatModel is the interactive intake conversation. One session lives
// for the lifetime of the program; /reset starts a fresh one after a
// confirmation form.
type chatModel struct {
	app   *App
	input textinput.Model

	session  *domain.Session
	messages []string

	resetForm    *huh.Form
	confirmReset bool
}

func newChatModel(app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	m := &chatModel{
		app:     app,
		input:   ti,
		session: domain.NewSession(),
	}
	m.messages = append(m.messages, formatter.ChatWelcome())
	return m
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.resetForm != nil {
		return m.updateResetForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleInput(input)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	var b strings.Builder

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if m.resetForm != nil {
		b.WriteString(m.resetForm.View())
		return b.String()
	}

	prompt := formatter.StyleBlue.Render("maitre") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())

	return b.String()
}

func (m *chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q", "quit", "exit":
		return m, tea.Quit
	case "/reset":
		m.confirmReset = false
		m.resetForm = huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Effacer la conversation ?").
				Affirmative("Oui").
				Negative("Non").
				Value(&m.confirmReset),
		)).WithShowHelp(false)
		return m, m.resetForm.Init()
	}

	m.messages = append(m.messages, formatter.Dim("Vous : ")+input)

	result, notice := m.app.Intake.HandleTurn(context.Background(), m.session, input)
	if result == nil {
		m.messages = append(m.messages, formatter.Notice(notice.Error()))
		return m, nil
	}
	if notice != nil {
		m.messages = append(m.messages, formatter.Notice(notice.Error()))
	}

	m.messages = append(m.messages, formatter.AssistantReply(service.BuildAssistantText(result)))

	if len(m.session.CurrentRecommendations) > 0 {
		if cat, err := m.app.Catalog.Catalog(context.Background()); err == nil {
			m.messages = append(m.messages, formatter.RecommendationCards(cat,
				m.session.CurrentRecommendations, m.session.UrgencyFlag, m.app.Catalog.UrgencyFactor()))
		}
	}

	return m, nil
}

func (m *chatModel) updateResetForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.resetForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.resetForm = f
	}

	if m.resetForm.State == huh.StateCompleted {
		if m.confirmReset {
			m.app.Intake.Reset(m.session)
			m.messages = []string{formatter.ChatWelcome()}
		}
		m.resetForm = nil
	}

	return m, cmd
}
