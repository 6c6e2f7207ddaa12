package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/lyrebird-cli/lyrebird/color"
	"github.com/lyrebird-cli/lyrebird/key"
	"github.com/lyrebird-cli/lyrebird/library"
	"github.com/lyrebird-cli/lyrebird/style"
	"github.com/lyrebird-cli/lyrebird/track"
	"github.com/lyrebird-cli/lyrebird/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.Flags().BoolP("json", "j", false, "Print the tracks as JSON")
	libraryCmd.Flags().Bool("schema", false, "Print the JSON schema of a track and exit")
	libraryCmd.SetOut(os.Stdout)
}

var libraryCmd = &cobra.Command{
	Use:   "library [music_directory]",
	Short: "List the tracks lyrebird would play from a directory",
	Args: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			printJSON(cmd, jsonschema.Reflect(&[]track.Track{}))
			return
		}

		tracks, err := library.Scan(args[0], viper.GetStringSlice(key.LibraryExtensions))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, tracks)
			return
		}

		for i, t := range tracks {
			cmd.Printf("%s %s %s\n",
				style.Faint(padIndex(i, len(tracks))),
				style.Bold(t.Label()),
				style.Fg(color.Yellow)(track.FormatTime(t.Duration)),
			)
			if t.Album != "" {
				cmd.Printf("%s %s\n", padIndex(-1, len(tracks)), style.Italic(t.Album))
			}
		}

		cmd.Println()
		cmd.Println(style.Faint(util.Quantify(len(tracks), "track", "tracks")))
	},
}

func printJSON(cmd *cobra.Command, v any) {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	handleErr(encoder.Encode(v))
}

// padIndex renders a 1-based position right-aligned to the width of total.
// A negative i renders blanks of the same width.
func padIndex(i, total int) string {
	width := len(strconv.Itoa(total))
	if i < 0 {
		return strings.Repeat(" ", width+1)
	}
	return fmt.Sprintf("%*d.", width, i+1)
}
