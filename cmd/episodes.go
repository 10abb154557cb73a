package cmd

import (
	"os"

	"github.com/anisan-cli/anistream/color"
	"github.com/anisan-cli/anistream/source"
	"github.com/anisan-cli/anistream/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(episodesCmd)
	episodesCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	episodesCmd.Flags().BoolP("reverse", "r", false, "Reverse the upstream order")
	episodesCmd.SetOut(os.Stdout)
}

var episodesCmd = &cobra.Command{
	Use:   "episodes [id]",
	Short: "List the episodes available for a show",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		episodes := newCatalog().Episodes(cmd.Context(), args[0])

		if lo.Must(cmd.Flags().GetBool("reverse")) {
			episodes = lo.Reverse(episodes)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, lo.Ternary(episodes == nil, []*source.Episode{}, episodes))
			return
		}

		if len(episodes) == 0 {
			cmd.Println(style.Faint("no episodes available"))
			return
		}

		for _, e := range episodes {
			cmd.Printf("%s %s\n", style.Fg(color.Yellow)(e.Number), style.Faint(e.ID))
		}
	},
}
