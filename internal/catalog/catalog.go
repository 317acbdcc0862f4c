// Package catalog holds the static academy content: curriculum tracks,
// sample projects, datasets, headline stats and the Alpha Arena material
// shown on the analyst screen. Everything is built once at init and is
// read-only afterwards.
package catalog

// Module is a single curriculum notebook or script.
type Module struct {
	Name     string
	File     string
	Duration string // e.g. "3h"
}

// Track groups modules under a numbered learning path.
type Track struct {
	ID      int
	Title   string
	Icon    string
	Modules []Module
}

// Project is a runnable sample project.
type Project struct {
	Level       string
	Title       string
	Description string
	File        string
	Features    []string
	Skills      []string
	Command     string
	Preview     string
}

// Dataset is a sample CSV shipped with the curriculum.
type Dataset struct {
	Name        string
	Description string
	Rows        string
}

// Stats are the headline numbers shown on the home screen.
type Stats struct {
	Notebooks   int
	Projects    int
	Datasets    int
	Hours       int
	Exercises   int
	LinesOfCode int
}

// Feature is an Alpha Arena feature card.
type Feature struct {
	Title       string
	Icon        string
	Description string
	Stats       []string
}

// NamedItem is a name with a one-line description, used for the model
// consensus and risk control lists.
type NamedItem struct {
	Name   string
	Detail string
}

// catalog holds the content with precomputed indices.
type catalog struct {
	tracks   []Track
	byID     map[int]*Track
	projects []Project
	datasets []Dataset
	items    []Item
}

// c is the package-level catalog, set by init() in content.go.
var c *catalog

func buildCatalog(tracks []Track, projects []Project, datasets []Dataset) *catalog {
	cat := &catalog{
		tracks:   tracks,
		byID:     make(map[int]*Track, len(tracks)),
		projects: projects,
		datasets: datasets,
	}
	for i := range cat.tracks {
		cat.byID[cat.tracks[i].ID] = &cat.tracks[i]
	}
	cat.items = buildIndex(tracks, projects)
	return cat
}

// Tracks returns every track in display order.
func Tracks() []Track {
	out := make([]Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// TrackByID returns the track with the given ID, or nil.
func TrackByID(id int) *Track {
	t, ok := c.byID[id]
	if !ok {
		return nil
	}
	cp := *t
	return &cp
}

// HasModule reports whether the track contains a module with the given name.
func HasModule(trackID int, name string) bool {
	t, ok := c.byID[trackID]
	if !ok {
		return false
	}
	for _, m := range t.Modules {
		if m.Name == name {
			return true
		}
	}
	return false
}

// ModuleCount returns the number of modules across all tracks.
func ModuleCount() int {
	n := 0
	for _, t := range c.tracks {
		n += len(t.Modules)
	}
	return n
}

// Projects returns the sample projects in difficulty order.
func Projects() []Project {
	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Datasets returns the sample datasets.
func Datasets() []Dataset {
	out := make([]Dataset, len(c.datasets))
	copy(out, c.datasets)
	return out
}
