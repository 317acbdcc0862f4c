package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alphaquant/academy/internal/catalog"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search modules, projects and tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		kindVal, _ := cmd.Flags().GetString("kind")
		kind, err := catalog.ParseKind(kindVal)
		if err != nil {
			return err
		}

		items := catalog.Search(strings.Join(args, " "), kind)
		if len(items) == 0 {
			fmt.Println("No results.")
			return nil
		}

		fmt.Printf("%-8s  %-28s  %s\n", "Kind", "Title", "Details")
		fmt.Println(strings.Repeat("─", 90))
		for _, it := range items {
			var detail string
			switch it.Kind {
			case catalog.KindModule:
				detail = fmt.Sprintf("Track %d: %s · %s · %s", it.TrackID, it.Track, it.Duration, it.File)
			case catalog.KindProject:
				detail = it.Level
			default:
				detail = it.URL
			}
			fmt.Printf("%-8s  %-28s  %s\n", it.Kind, it.Title, detail)
		}
		fmt.Printf("\n%d results\n", len(items))
		return nil
	},
}

func init() {
	searchCmd.Flags().StringP("kind", "k", "all", "Filter by kind: all, module, project, tool")
}
