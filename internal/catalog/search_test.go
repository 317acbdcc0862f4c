package catalog

import "testing"

func TestSearch_EmptyQueryReturnsEverything(t *testing.T) {
	items := Search("", KindAll)
	// 26 modules + 3 projects + 2 tools
	if len(items) != 31 {
		t.Fatalf("expected 31 items, got %d", len(items))
	}
}

func TestSearch_MatchesTitleCaseInsensitive(t *testing.T) {
	items := Search("PANDAS", KindAll)
	if len(items) != 1 || items[0].Title != "Pandas Mastery" {
		t.Fatalf("unexpected results: %+v", items)
	}
	if items[0].TrackID != 2 || items[0].Duration != "5h" {
		t.Errorf("module metadata missing: %+v", items[0])
	}
}

func TestSearch_MatchesTrack(t *testing.T) {
	items := Search("machine learning", KindModule)
	if len(items) != 3 {
		t.Fatalf("expected 3 ML modules, got %d", len(items))
	}
	for _, it := range items {
		if it.Track != "Machine Learning" {
			t.Errorf("unexpected track %q", it.Track)
		}
	}
}

func TestSearch_KindFilter(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindModule, 26},
		{KindProject, 3},
		{KindTool, 2},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			items := Search("", tt.kind)
			if len(items) != tt.want {
				t.Errorf("Search(\"\", %s) = %d items, want %d", tt.kind, len(items), tt.want)
			}
			for _, it := range items {
				if it.Kind != tt.kind {
					t.Errorf("item %q has kind %s", it.Title, it.Kind)
				}
			}
		})
	}
}

func TestSearch_ToolsCarryURLs(t *testing.T) {
	items := Search("jupyter", KindTool)
	if len(items) != 1 || items[0].URL != BinderURL {
		t.Fatalf("unexpected results: %+v", items)
	}
}

func TestSearch_NoResults(t *testing.T) {
	if items := Search("cobol", KindAll); len(items) != 0 {
		t.Errorf("expected no results, got %d", len(items))
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindAll, false},
		{"all", KindAll, false},
		{"modules", KindModule, false},
		{"Project", KindProject, false},
		{"tools", KindTool, false},
		{"dataset", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
