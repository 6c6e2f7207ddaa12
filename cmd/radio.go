package cmd

import (
	"os"

	"github.com/lyrebird-cli/lyrebird/color"
	"github.com/lyrebird-cli/lyrebird/radio"
	"github.com/lyrebird-cli/lyrebird/style"
	"github.com/lyrebird-cli/lyrebird/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(radioCmd)
	radioCmd.Flags().BoolP("json", "j", false, "Print the stations as JSON")
	radioCmd.SetOut(os.Stdout)
}

var radioCmd = &cobra.Command{
	Use:   "radio <radio_directory>",
	Short: "List the stations found in a directory of .m3u playlists",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := radio.Load(args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, entries)
			return
		}

		for i, e := range entries {
			cmd.Printf("%s %s %s\n",
				style.Faint(padIndex(i, len(entries))),
				style.Bold(e.Track.Display()),
				style.Faint("("+e.Track.Album+")"),
			)
			if e.Track.Display() != e.URL {
				cmd.Printf("%s %s\n", padIndex(-1, len(entries)), style.Fg(color.Blue)(e.URL))
			}
		}

		cmd.Println()
		cmd.Println(style.Faint(util.Quantify(len(entries), "station", "stations")))
	},
}
