// Package assistant is the chat screen in front of the learning assistant.
package assistant

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	asst "github.com/alphaquant/academy/internal/assistant"
	"github.com/alphaquant/academy/internal/llm"
	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/ui/components"
	"github.com/alphaquant/academy/internal/ui/layout"
	"github.com/alphaquant/academy/internal/ui/theme"
)

// answerMsg carries the outcome of an Ask.
type answerMsg struct {
	err error
}

// AssistantScreen shows the conversation and an input line.
type AssistantScreen struct {
	assistant *asst.Assistant
	input     components.TextInput
	spinner   spinner.Model
	pending   bool
	prompt    int
	err       error

	ctx    context.Context
	cancel context.CancelFunc
}

var (
	_ screen.Screen          = (*AssistantScreen)(nil)
	_ screen.Closer          = (*AssistantScreen)(nil)
	_ screen.KeyHintProvider = (*AssistantScreen)(nil)
)

// New creates the chat screen. Pending requests are cancelled when the
// screen closes.
func New(a *asst.Assistant) *AssistantScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &AssistantScreen{
		assistant: a,
		input:     components.NewTextInput("Ask me anything about Python & Finance...", 500),
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		prompt:    -1,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (s *AssistantScreen) Init() tea.Cmd { return s.input.Init() }
func (s *AssistantScreen) Title() string { return "AI Assistant" }

// Close cancels any request in flight.
func (s *AssistantScreen) Close() { s.cancel() }

func (s *AssistantScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Tab", Description: "Quick prompt"},
		{Key: "Ctrl+L", Description: "New chat"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AssistantScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		s.pending = false
		if errors.Is(msg.err, context.Canceled) {
			return s, nil
		}
		s.err = msg.err
		return s, nil

	case spinner.TickMsg:
		if !s.pending {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return s, s.send()
		case "tab":
			s.prompt = (s.prompt + 1) % len(asst.QuickPrompts)
			s.input.SetValue(asst.QuickPrompts[s.prompt])
			return s, nil
		case "ctrl+l":
			if s.pending {
				return s, nil
			}
			s.assistant.Reset()
			s.err = nil
			s.prompt = -1
			s.input.Reset()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// send asks the current input. Blank input and sends while a reply is
// pending are ignored.
func (s *AssistantScreen) send() tea.Cmd {
	text := s.input.Trimmed()
	if text == "" || s.pending {
		return nil
	}
	s.input.Reset()
	s.pending = true
	s.err = nil

	a, ctx := s.assistant, s.ctx
	ask := func() tea.Msg {
		_, err := a.Ask(ctx, text)
		return answerMsg{err: err}
	}
	return tea.Batch(ask, s.spinner.Tick)
}

func (s *AssistantScreen) View(width, height int) string {
	w := components.ContentWidth(width, 90)
	s.input.SetWidth(w - 6)

	history := s.assistant.History()
	var blocks []string
	for _, m := range history {
		blocks = append(blocks, renderMessage(m, w))
	}
	if s.pending {
		blocks = append(blocks, lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.spinner.View()+" Thinking..."))
	}
	if len(history) <= 1 {
		blocks = append(blocks, renderQuickPrompts())
	}
	if s.err != nil {
		blocks = append(blocks, lipgloss.NewStyle().Foreground(theme.Error).Render("⚠ "+s.err.Error()))
	}

	inputBox := components.Card(s.input.View(), w)
	note := theme.Hint.Render("Powered by AI • Responses are for educational purposes")

	avail := height - lipgloss.Height(inputBox) - lipgloss.Height(note) - 1
	conversation := tail(strings.Join(blocks, "\n\n"), avail)

	content := lipgloss.JoinVertical(lipgloss.Left, conversation, inputBox, note)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Bottom, content)
}

func renderMessage(m asst.Message, width int) string {
	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width * 3 / 4)
	if m.Role == llm.RoleUser {
		body := bubble.BorderForeground(theme.Primary).Foreground(theme.Text).Render(m.Content)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, body)
	}
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("🤖 Assistant")
	body := bubble.BorderForeground(theme.Border).Foreground(theme.Text).Render(m.Content)
	return label + "\n" + body
}

func renderQuickPrompts() string {
	chips := make([]string, len(asst.QuickPrompts))
	for i, p := range asst.QuickPrompts {
		chips[i] = theme.Badge.Render(p)
	}
	return theme.Hint.Render("Quick questions (Tab):") + "\n" + strings.Join(chips, " ")
}

// tail keeps the last n lines of s.
func tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
