package cmd

import (
	"fmt"
	"os"
	"text/template"

	"github.com/anisan-cli/anistream/color"
	"github.com/anisan-cli/anistream/style"
	"github.com/anisan-cli/anistream/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	showCmd.SetOut(os.Stdout)
}

var showTemplate = lo.Must(template.New("show").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"episodes": func(n int) string { return util.Quantify(n, "episode", "episodes") },
	"status":   util.Capitalize,
}).Parse(`{{ purple "▇▇▇" }} {{ bold .Title }}

  {{ faint "ID" }}          {{ .ID }}
  {{ faint "Episodes" }}    {{ episodes .Episodes }}
  {{ faint "Year" }}        {{ .Year }}
  {{ faint "Status" }}      {{ status .Status }}
  {{ faint "Genres" }}      {{ .Genres }}
  {{ faint "Poster" }}      {{ .Poster }}

{{ .Description }}
`))

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Display the catalog record of a show",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		show, ok := newCatalog().ShowDetail(cmd.Context(), args[0]).Get()
		if !ok {
			handleErr(fmt.Errorf("show %s not found", args[0]))
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, show)
			return
		}

		handleErr(showTemplate.Execute(cmd.OutOrStdout(), show))
	},
}
