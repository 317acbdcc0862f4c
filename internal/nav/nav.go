// Package nav holds the section navigation state: which section is active
// and whether the section menu is open.
package nav

import "fmt"

// Section identifies a top-level area of the academy.
type Section string

const (
	Home       Section = "home"
	Curriculum Section = "curriculum"
	Projects   Section = "projects"
	Data       Section = "data"
	Analyst    Section = "analyst"
	Market     Section = "market"
	Dashboard  Section = "dashboard"
	Assistant  Section = "assistant"
	Search     Section = "search"
)

// Sections lists the menu sections in display order.
var Sections = []Section{Home, Curriculum, Projects, Data, Analyst, Market, Dashboard, Assistant, Search}

var labels = map[Section]string{
	Home:       "Home",
	Curriculum: "Curriculum",
	Projects:   "Projects",
	Data:       "Data",
	Analyst:    "AI Analyst",
	Market:     "Market",
	Dashboard:  "Dashboard",
	Assistant:  "Assistant",
	Search:     "Search",
}

// Label returns the menu label for s.
func (s Section) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// ParseSection validates a section name.
func ParseSection(name string) (Section, error) {
	s := Section(name)
	if _, ok := labels[s]; !ok {
		return "", fmt.Errorf("unknown section %q", name)
	}
	return s, nil
}

// State is the navigation state. The zero value is not valid; use New.
type State struct {
	Active   Section
	MenuOpen bool
}

// New returns the initial state: home active, menu closed.
func New() State {
	return State{Active: Home}
}

// SetActive makes s the active section and closes the menu.
func SetActive(st State, s Section) State {
	st.Active = s
	st.MenuOpen = false
	return st
}

// ToggleMenu opens a closed menu or closes an open one.
func ToggleMenu(st State) State {
	st.MenuOpen = !st.MenuOpen
	return st
}

// CloseMenu closes the menu.
func CloseMenu(st State) State {
	st.MenuOpen = false
	return st
}

// GoMsg asks the application to open a section. Focus optionally names an
// entry within it: a module key for the curriculum, a project title for
// projects.
type GoMsg struct {
	Section Section
	Focus   string
}
