package cmd

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/anisan-cli/anistream/color"
	"github.com/anisan-cli/anistream/icon"
	"github.com/anisan-cli/anistream/key"
	"github.com/anisan-cli/anistream/resolve"
	"github.com/anisan-cli/anistream/source"
	"github.com/anisan-cli/anistream/style"
	"github.com/anisan-cli/anistream/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	sourcesCmd.Flags().Bool("schema", false, "Print the JSON schema of the output and exit")

	sourcesCmd.Flags().IntP("workers", "w", 0, "Number of providers resolved concurrently")
	lo.Must0(viper.BindPFlag(key.PipelineWorkers, sourcesCmd.Flags().Lookup("workers")))

	sourcesCmd.Flags().Bool("no-manifests", false, "Keep HLS master playlists instead of expanding them")

	sourcesCmd.SetOut(os.Stdout)
}

var sourcesCmd = &cobra.Command{
	Use:     "sources [id] [episode]",
	Short:   "Resolve the playable video sources of an episode",
	Example: "anistream sources ReooPAxPMsHM4KPMY 1 --json",
	Args: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			return nil
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			printJSON(cmd, videoSchema())
			return
		}

		if lo.Must(cmd.Flags().GetBool("no-manifests")) {
			viper.Set(key.PipelineResolveManifests, false)
		}

		asJSON := lo.Must(cmd.Flags().GetBool("json"))
		showID, episode := args[0], args[1]

		erase := func() {}
		if !asJSON {
			erase = util.PrintErasable(fmt.Sprintf("%s Resolving sources...", icon.Get(icon.Progress)))
		}
		videos := resolve.NewFromConfig(newCatalog()).VideoSources(cmd.Context(), showID, episode)
		erase()

		if asJSON {
			printJSON(cmd, videos)
			return
		}

		if len(videos) == 0 {
			handleErr(errors.New("no video sources available"))
		}

		for _, v := range videos {
			printVideo(cmd, v)
		}
	},
}

func printVideo(cmd *cobra.Command, v *source.Video) {
	kind := icon.Video
	if v.Type == source.MediaHLS {
		kind = icon.Stream
	}

	cmd.Printf(
		"%s %s %s\n  %s\n",
		style.Quality(v.Rank())(v.Quality),
		icon.Get(kind),
		style.Fg(color.Purple)(string(v.Provider)),
		style.Faint(v.URL),
	)
}

func videoSchema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		if t == reflect.TypeOf(source.Video{}) {
			return "VideoSourceItem"
		}
		return t.Name()
	}

	return reflector.Reflect([]*source.Video{})
}
