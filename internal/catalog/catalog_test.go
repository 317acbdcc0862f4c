package catalog

import (
	"strings"
	"testing"
)

func TestValidate_SeedCatalogPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestTracks_Shape(t *testing.T) {
	tracks := Tracks()
	if len(tracks) != 7 {
		t.Fatalf("expected 7 tracks, got %d", len(tracks))
	}
	for i, tr := range tracks {
		if tr.ID != i+1 {
			t.Errorf("track %d has ID %d, want %d", i, tr.ID, i+1)
		}
	}
	if got := ModuleCount(); got != 26 {
		t.Errorf("ModuleCount() = %d, want 26", got)
	}
}

func TestTracks_ReturnsCopy(t *testing.T) {
	tracks := Tracks()
	tracks[0].Title = "mutated"
	if Tracks()[0].Title == "mutated" {
		t.Error("Tracks() should not expose the underlying slice")
	}
}

func TestTrackByID(t *testing.T) {
	tr := TrackByID(2)
	if tr == nil {
		t.Fatal("expected track 2")
	}
	if tr.Title != "Data Analysis" {
		t.Errorf("track 2 title = %q", tr.Title)
	}
	if TrackByID(99) != nil {
		t.Error("expected nil for unknown track")
	}
}

func TestHasModule(t *testing.T) {
	tests := []struct {
		track int
		name  string
		want  bool
	}{
		{2, "Pandas Mastery", true},
		{1, "Pandas Mastery", false},
		{5, "Algo Trading", true},
		{8, "Algo Trading", false},
		{1, "python basics", false},
	}
	for _, tt := range tests {
		if got := HasModule(tt.track, tt.name); got != tt.want {
			t.Errorf("HasModule(%d, %q) = %v, want %v", tt.track, tt.name, got, tt.want)
		}
	}
}

func TestHeadlineStats(t *testing.T) {
	s := HeadlineStats()
	if s.Notebooks != 22 || s.Projects != 3 || s.Datasets != 7 || s.Hours != 100 || s.Exercises != 15 || s.LinesOfCode != 3500 {
		t.Errorf("unexpected stats: %+v", s)
	}
	if len(Projects()) != s.Projects {
		t.Errorf("Projects() len %d does not match stats %d", len(Projects()), s.Projects)
	}
	if len(Datasets()) != s.Datasets {
		t.Errorf("Datasets() len %d does not match stats %d", len(Datasets()), s.Datasets)
	}
}

func TestArenaContent(t *testing.T) {
	if n := len(ArenaFeatures()); n != 4 {
		t.Errorf("expected 4 arena features, got %d", n)
	}
	if n := len(ArenaCapabilities()); n != 7 {
		t.Errorf("expected 7 capabilities, got %d", n)
	}
	if n := len(ConsensusModels()); n != 3 {
		t.Errorf("expected 3 consensus models, got %d", n)
	}
	if n := len(RiskControls()); n != 3 {
		t.Errorf("expected 3 risk controls, got %d", n)
	}
}

func TestValidateTracks_DetectsDuplicateID(t *testing.T) {
	tracks := []Track{
		{ID: 1, Title: "a", Modules: []Module{{"x", "x.ipynb", "1h"}}},
		{ID: 1, Title: "b", Modules: []Module{{"y", "y.ipynb", "1h"}}},
	}
	err := validateTracks(tracks)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate track ID") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateTracks_DetectsDuplicateModule(t *testing.T) {
	tracks := []Track{
		{ID: 1, Title: "a", Modules: []Module{{"x", "x.ipynb", "1h"}, {"x", "x2.ipynb", "1h"}}},
	}
	err := validateTracks(tracks)
	if err == nil {
		t.Fatal("expected error for duplicate module, got nil")
	}
	if !strings.Contains(err.Error(), `duplicate module "x"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateTracks_DetectsEmptyTrack(t *testing.T) {
	err := validateTracks([]Track{{ID: 3, Title: "empty"}})
	if err == nil || !strings.Contains(err.Error(), "no modules") {
		t.Errorf("expected empty track error, got %v", err)
	}
}
