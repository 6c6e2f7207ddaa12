// Package cmd implements the command-line interface for lyrebird.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lyrebird-cli/lyrebird/color"
	"github.com/lyrebird-cli/lyrebird/config"
	"github.com/lyrebird-cli/lyrebird/constant"
	"github.com/lyrebird-cli/lyrebird/icon"
	"github.com/lyrebird-cli/lyrebird/key"
	"github.com/lyrebird-cli/lyrebird/keybind"
	"github.com/lyrebird-cli/lyrebird/library"
	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/style"
	"github.com/lyrebird-cli/lyrebird/tui"
	"github.com/lyrebird-cli/lyrebird/util"
	"github.com/lyrebird-cli/lyrebird/version"
	"github.com/lyrebird-cli/lyrebird/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("matcher", "m", "", "Search matcher to use (substring, prefix, fuzzy)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("matcher", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return playlistMatchers(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.SearchMatcher, rootCmd.Flags().Lookup("matcher")))

	rootCmd.Flags().Bool("no-lyrics", false, "Never query the remote lyrics service")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Sockets of a previous run that did not shut down cleanly.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Lyrebird + " <music_directory> [<radio_directory>]",
	Short: "A terminal audio player with synced lyrics and internet radio",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A terminal audio player with synced lyrics and internet radio"),
	Args: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("version") {
			return nil
		}
		return cobra.RangeArgs(1, 2)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		musicDir, radioDir := args[0], ""
		if len(args) > 1 {
			radioDir = args[1]
			CheckRadioBackend()
		}

		if lo.Must(cmd.Flags().GetBool("no-lyrics")) {
			viper.Set(key.LyricsEnabled, false)
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Scanning %s...", icon.Get(icon.Progress), musicDir))
		controller, err := newController(musicDir, radioDir)
		erase()

		if errors.Is(err, library.ErrNoTracks) {
			printErrorBox("No Tracks", fmt.Sprintf("No playable files (%s) were found in %s.", strings.Join(viper.GetStringSlice(key.LibraryExtensions), " "), musicDir), "")
			os.Exit(1)
		}
		handleErr(err)

		keys, warnings, err := keybind.Load(where.KeyBindings())
		handleErr(err)
		for _, w := range warnings {
			log.Warn(w.String())
		}

		handleErr(tui.Run(&tui.Options{
			Controller:   controller,
			Keys:         keys,
			Warnings:     warnings,
			TickInterval: config.TickInterval(),
		}))
	},
}

// Execute sets up colored help output and runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
