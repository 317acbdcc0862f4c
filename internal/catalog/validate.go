package catalog

import (
	"fmt"
	"strings"
)

// Validate checks the package-level catalog for structural problems.
func Validate() error {
	return validateTracks(c.tracks)
}

// validateTracks performs all structural checks on the given tracks.
// Returns a combined error describing all problems found, or nil if valid.
func validateTracks(tracks []Track) error {
	var errs []string

	if len(tracks) == 0 {
		errs = append(errs, "no tracks defined")
	}

	ids := make(map[int]bool, len(tracks))
	for _, t := range tracks {
		if t.ID <= 0 {
			errs = append(errs, fmt.Sprintf("track %q: ID must be > 0, got %d", t.Title, t.ID))
		}
		if ids[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate track ID: %d", t.ID))
		}
		ids[t.ID] = true

		if len(t.Modules) == 0 {
			errs = append(errs, fmt.Sprintf("track %d has no modules", t.ID))
		}

		// Module names form the completion key together with the track ID,
		// so they must be unique within a track.
		names := make(map[string]bool, len(t.Modules))
		for _, m := range t.Modules {
			if strings.TrimSpace(m.Name) == "" {
				errs = append(errs, fmt.Sprintf("track %d has a module with an empty name", t.ID))
				continue
			}
			if names[m.Name] {
				errs = append(errs, fmt.Sprintf("track %d: duplicate module %q", t.ID, m.Name))
			}
			names[m.Name] = true
			if m.File == "" {
				errs = append(errs, fmt.Sprintf("track %d module %q has no file", t.ID, m.Name))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
