package catalog

import (
	"fmt"
	"strings"
)

// Kind classifies a searchable item.
type Kind string

const (
	KindAll     Kind = "all"
	KindModule  Kind = "module"
	KindProject Kind = "project"
	KindTool    Kind = "tool"
)

// AllKinds returns the search filters in display order.
func AllKinds() []Kind {
	return []Kind{KindAll, KindModule, KindProject, KindTool}
}

// ParseKind maps a filter name to a Kind. Plural forms are accepted.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	switch s {
	case "", "all":
		return KindAll, nil
	case "module":
		return KindModule, nil
	case "project":
		return KindProject, nil
	case "tool":
		return KindTool, nil
	default:
		return "", fmt.Errorf("unknown search kind %q", s)
	}
}

// Item is one entry in the search index.
type Item struct {
	Kind     Kind
	Title    string
	Track    string // modules only
	TrackID  int    // modules only
	File     string // modules only
	Duration string // modules only
	Level    string // projects only
	URL      string // tools only
}

func buildIndex(tracks []Track, projects []Project) []Item {
	var items []Item
	for _, t := range tracks {
		for _, m := range t.Modules {
			items = append(items, Item{
				Kind:     KindModule,
				Title:    m.Name,
				Track:    t.Title,
				TrackID:  t.ID,
				File:     m.File,
				Duration: m.Duration,
			})
		}
	}
	for _, p := range projects {
		items = append(items, Item{Kind: KindProject, Title: p.Title, Level: p.Level})
	}
	items = append(items,
		Item{Kind: KindTool, Title: "Launch JupyterLab", URL: BinderURL},
		Item{Kind: KindTool, Title: "View on GitHub", URL: RepoURL},
	)
	return items
}

// Search returns the items whose title or track contains query,
// case-insensitively, restricted to kind. An empty query matches everything.
func Search(query string, kind Kind) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Item
	for _, it := range c.items {
		if kind != KindAll && kind != "" && it.Kind != kind {
			continue
		}
		if q == "" ||
			strings.Contains(strings.ToLower(it.Title), q) ||
			(it.Track != "" && strings.Contains(strings.ToLower(it.Track), q)) {
			out = append(out, it)
		}
	}
	return out
}
