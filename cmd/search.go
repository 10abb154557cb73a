package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/anistream/catalog"
	"github.com/anisan-cli/anistream/color"
	"github.com/anisan-cli/anistream/icon"
	"github.com/anisan-cli/anistream/source"
	"github.com/anisan-cli/anistream/style"
	"github.com/anisan-cli/anistream/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	searchCmd.SetOut(os.Stdout)
}

var searchCmd = &cobra.Command{
	Use:     "search [query]",
	Short:   "Search the catalog for shows",
	Example: "anistream search frieren",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.TrimSpace(strings.Join(args, " "))
		handleErr(catalog.ValidateQuery(query))

		shows := newCatalog().Search(cmd.Context(), query)

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, lo.Ternary(shows == nil, []*source.Show{}, shows))
			return
		}

		if len(shows) == 0 {
			cmd.Println(style.Faint("no results for " + query))
			return
		}

		width := util.Max(lo.Map(shows, func(s *source.Show, _ int) int { return len(s.ID) })...)
		for _, s := range shows {
			cmd.Printf(
				"%s %s  %s %s\n",
				icon.Get(icon.Show),
				style.Fg(color.Yellow)(fmt.Sprintf("%-*s", width, s.ID)),
				style.Bold(s.Title),
				style.Faint(fmt.Sprintf("(%s, %s)", util.Quantify(s.Episodes, "episode", "episodes"), s.Status)),
			)
		}
	},
}
