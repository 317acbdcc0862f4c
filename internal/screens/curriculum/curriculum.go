// Package curriculum lists the tracks and their modules and lets the
// learner mark modules complete.
package curriculum

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/progress"
	"github.com/alphaquant/academy/internal/router"
	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/ui/components"
	"github.com/alphaquant/academy/internal/ui/layout"
	"github.com/alphaquant/academy/internal/ui/theme"
)

type rowKind int

const (
	rowTrackHeader rowKind = iota
	rowModule
)

type row struct {
	kind   rowKind
	track  *catalog.Track
	module *catalog.Module
}

// ToggledMsg reports the outcome of a completion toggle.
type ToggledMsg struct {
	TrackID  int
	Module   string
	Complete bool
	Err      error
}

type resetMsg struct{ err error }

// CurriculumScreen displays every track with its modules.
type CurriculumScreen struct {
	tracker      *progress.Tracker
	rows         []row
	cursor       int
	scrollOffset int
	confirm      *components.Choice
	status       string
	err          error
}

var (
	_ screen.Screen          = (*CurriculumScreen)(nil)
	_ screen.KeyHintProvider = (*CurriculumScreen)(nil)
	_ screen.InputCapturer   = (*CurriculumScreen)(nil)
)

// New creates a CurriculumScreen backed by tracker.
func New(tracker *progress.Tracker) *CurriculumScreen {
	tracks := catalog.Tracks()
	var rows []row
	for i := range tracks {
		t := &tracks[i]
		rows = append(rows, row{kind: rowTrackHeader, track: t})
		for j := range t.Modules {
			rows = append(rows, row{kind: rowModule, track: t, module: &t.Modules[j]})
		}
	}

	s := &CurriculumScreen{tracker: tracker, rows: rows}
	s.moveCursor(1)
	return s
}

func (s *CurriculumScreen) Init() tea.Cmd {
	return nil
}

func (s *CurriculumScreen) Title() string {
	return "Curriculum"
}

// CapturesInput is true while the reset confirmation is open.
func (s *CurriculumScreen) CapturesInput() bool {
	return s.confirm != nil
}

// KeyHints returns the key binding hints for the footer.
func (s *CurriculumScreen) KeyHints() []layout.KeyHint {
	if s.confirm != nil {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Details"},
		{Key: "Tab", Description: "Track"},
		{Key: "R", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CurriculumScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggledMsg:
		s.err = msg.Err
		if msg.Err == nil {
			verb := "Marked pending"
			if msg.Complete {
				verb = "Completed"
			}
			s.status = fmt.Sprintf("%s: %s", verb, msg.Module)
		}
		return s, nil

	case resetMsg:
		s.err = msg.err
		if msg.err == nil {
			s.status = "Progress reset"
		}
		return s, nil

	case tea.KeyPressMsg:
		if s.confirm != nil {
			return s, s.updateConfirm(msg)
		}
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextTrack()
		case "shift+tab":
			s.prevTrack()
		case "space", "x":
			return s, s.toggleCurrent()
		case "enter":
			return s, s.openDetail()
		case "r":
			c := components.NewChoice("Reset all progress? This cannot be undone.", "Cancel", "Reset")
			s.confirm = &c
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *CurriculumScreen) updateConfirm(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "esc" {
		s.confirm = nil
		return nil
	}
	c, _ := s.confirm.Update(msg)
	if !c.Submitted {
		s.confirm = &c
		return nil
	}
	s.confirm = nil
	if !c.Chose(1) {
		return nil
	}
	tracker := s.tracker
	return func() tea.Msg {
		return resetMsg{err: tracker.Reset(context.Background())}
	}
}

func (s *CurriculumScreen) current() (row, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return row{}, false
	}
	r := s.rows[s.cursor]
	return r, r.kind == rowModule
}

func (s *CurriculumScreen) toggleCurrent() tea.Cmd {
	r, ok := s.current()
	if !ok {
		return nil
	}
	return ToggleCmd(s.tracker, r.track.ID, r.module.Name)
}

func (s *CurriculumScreen) openDetail() tea.Cmd {
	r, ok := s.current()
	if !ok {
		return nil
	}
	detail := newModuleDetail(s.tracker, *r.track, *r.module)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

// ToggleCmd flips a module's completion in the background.
func ToggleCmd(tracker *progress.Tracker, trackID int, module string) tea.Cmd {
	return func() tea.Msg {
		done, err := tracker.Toggle(context.Background(), trackID, module)
		return ToggledMsg{TrackID: trackID, Module: module, Complete: done, Err: err}
	}
}

// Focus moves the cursor to the module with the given progress key. It
// reports whether the module was found.
func (s *CurriculumScreen) Focus(key progress.Key) bool {
	for i, r := range s.rows {
		if r.kind == rowModule && progress.KeyFor(r.track.ID, r.module.Name) == key {
			s.cursor = i
			return true
		}
	}
	return false
}

// moveCursor moves the cursor by delta, skipping track headers.
func (s *CurriculumScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowModule {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextTrack jumps the cursor to the first module of the next track.
func (s *CurriculumScreen) nextTrack() {
	current := s.rows[s.cursor].track.ID
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowModule && s.rows[i].track.ID != current {
			s.cursor = i
			return
		}
	}
}

// prevTrack jumps the cursor to the first module of the previous track.
func (s *CurriculumScreen) prevTrack() {
	current := s.rows[s.cursor].track.ID
	target := -1
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowTrackHeader && s.rows[i].track.ID != current {
			target = i
			break
		}
	}
	if target < 0 {
		return
	}
	s.cursor = target
	s.moveCursor(1)
}

// adjustScroll ensures the cursor is visible, along with its track header
// when the cursor is on a track's first module.
func (s *CurriculumScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	top := s.cursor
	if top > 0 && s.rows[top-1].kind == rowTrackHeader {
		top--
	}
	if top < s.scrollOffset {
		s.scrollOffset = top
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *CurriculumScreen) View(width, height int) string {
	if s.confirm != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			components.Card(s.confirm.View(), min(width, 60)))
	}

	state := s.tracker.State()
	overall := progress.Summarize(state, catalog.Tracks())

	top := components.NewProgressBar(
		fmt.Sprintf("Overall %d/%d", overall.Completed, overall.Total),
		overall.Percent()/100, true, min(width-4, 70)).View()
	footer := s.renderStatus(width)

	listHeight := height - 2 - lipgloss.Height(footer)
	s.adjustScroll(listHeight)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < listHeight; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowTrackHeader:
			lines = append(lines, renderTrackHeader(*r.track, progress.SummarizeTrack(state, *r.track), width))
		case rowModule:
			lines = append(lines, renderModuleRow(r, state.IsComplete(r.track.ID, r.module.Name), i == s.cursor, width))
		}
	}

	return "  " + top + "\n\n" + strings.Join(lines, "\n") + "\n" + footer
}

func (s *CurriculumScreen) renderStatus(width int) string {
	if s.err != nil {
		return lipgloss.NewStyle().Foreground(theme.Error).Width(width).Render("  ✗ " + s.err.Error())
	}
	line := s.status
	if r, ok := s.current(); ok {
		line = r.module.File
		if s.status != "" {
			line += "  ·  " + s.status
		}
	}
	return theme.Hint.Width(width).Render("  " + line)
}

func renderTrackHeader(t catalog.Track, sum progress.Summary, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("%s  Track %d: %s", t.Icon, t.ID, t.Title))
	count := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d", sum.Completed, sum.Total))
	if sum.Done() {
		count = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ complete")
	}
	gap := width - lipgloss.Width(name) - lipgloss.Width(count) - 4
	if gap < 1 {
		gap = 1
	}
	return "  " + name + strings.Repeat(" ", gap) + count
}

func renderModuleRow(r row, done, selected bool, width int) string {
	check := "[ ]"
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if done {
		check = "[✓]"
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}
	if selected {
		nameStyle = nameStyle.Foreground(theme.Primary).Bold(true)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	nameWidth := width - 20
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := r.module.Name
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	return fmt.Sprintf("    %s%s %s  %s",
		cursor,
		check,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%4s", r.module.Duration)),
	)
}
