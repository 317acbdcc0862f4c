// Package datasets lists the sample CSV files shipped with the curriculum.
package datasets

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/ui/theme"
)

// DatasetsScreen renders the dataset table.
type DatasetsScreen struct {
	datasets []catalog.Dataset
}

var _ screen.Screen = (*DatasetsScreen)(nil)

// New creates the datasets screen.
func New() *DatasetsScreen {
	return &DatasetsScreen{datasets: catalog.Datasets()}
}

func (s *DatasetsScreen) Init() tea.Cmd                           { return nil }
func (s *DatasetsScreen) Title() string                           { return "Sample Datasets" }
func (s *DatasetsScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }

func (s *DatasetsScreen) View(width, height int) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("File", "Description", "Rows").
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return st.Foreground(theme.Secondary).Bold(true)
			case col == 0:
				return st.Foreground(theme.Primary)
			case col == 2:
				return st.Foreground(theme.Accent).Align(lipgloss.Right)
			default:
				return st.Foreground(theme.Text)
			}
		})
	for _, d := range s.datasets {
		t.Row(d.Name, d.Description, d.Rows)
	}

	intro := theme.Subtitle.Render(fmt.Sprintf("%d CSV files for hands-on practice. Load any of them with pandas:", len(s.datasets)))
	code := lipgloss.NewStyle().Foreground(theme.Secondary).Render(`df = pd.read_csv("sample_stock_prices.csv")`)

	content := lipgloss.JoinVertical(lipgloss.Left, intro, "", t.String(), "", code)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
