package assistant

import (
	"fmt"
	"strings"

	"github.com/alphaquant/academy/internal/catalog"
)

// Greeting is the assistant's opening message.
const Greeting = "👋 Hi! I'm your AI learning assistant. I can help you with:\n\n" +
	"• Questions about Python & Finance\n" +
	"• Curriculum recommendations\n" +
	"• Code explanations\n" +
	"• Career guidance\n\n" +
	"What would you like to learn today?"

// QuickPrompts are the suggested first questions.
var QuickPrompts = []string{
	"What should I learn first?",
	"Explain pandas DataFrames",
	"How to get a quant job?",
	"Best Python practices",
}

// systemPrompt describes the academy so that a model can point learners at
// real tracks and projects.
var systemPrompt = buildSystemPrompt()

func buildSystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are the learning assistant of Alpha Quant Academy, a free course that teaches Python for finance.\n")
	b.WriteString("Answer briefly and concretely. Recommend tracks, modules and projects from the curriculum below by name when relevant.\n")
	b.WriteString("Use Markdown: **bold** for names and fenced code blocks for Python.\n\nTracks:\n")
	for _, t := range catalog.Tracks() {
		names := make([]string, len(t.Modules))
		for i, m := range t.Modules {
			names[i] = m.Name
		}
		fmt.Fprintf(&b, "- Track %d: %s (%s)\n", t.ID, t.Title, strings.Join(names, ", "))
	}
	b.WriteString("\nProjects:\n")
	for _, p := range catalog.Projects() {
		fmt.Fprintf(&b, "- %s [%s]\n", p.Title, p.Level)
	}
	return b.String()
}
