package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lyrebird-cli/lyrebird/color"
	"github.com/lyrebird-cli/lyrebird/filesystem"
	"github.com/lyrebird-cli/lyrebird/icon"
	"github.com/lyrebird-cli/lyrebird/keybind"
	"github.com/lyrebird-cli/lyrebird/style"
	"github.com/lyrebird-cli/lyrebird/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().BoolP("defaults", "d", false, "Ignore the key-binding file and show the defaults")
	keysCmd.SetOut(os.Stdout)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the effective key bindings",
	Long: fmt.Sprintf("Show the effective key bindings read from %s.\nLines that could not be applied are reported on stderr.", where.KeyBindings()),
	Run: func(cmd *cobra.Command, args []string) {
		keys := keybind.Defaults()

		if !lo.Must(cmd.Flags().GetBool("defaults")) {
			var (
				warnings []keybind.Warning
				err      error
			)

			keys, warnings, err = keybind.Load(where.KeyBindings())
			handleErr(err)

			for _, w := range warnings {
				_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Yellow)("warning:"), w)
			}
		}

		var (
			action = style.New().Bold(true).Foreground(color.Purple).Render
			code   = style.Fg(color.Yellow)
		)

		width := lo.Max(lo.Map(keybind.Actions, func(a keybind.Action, _ int) int {
			return len(a.String())
		}))

		for _, a := range keybind.Actions {
			cmd.Printf("%s %s %s\n",
				action(fmt.Sprintf("%-*s", width, a)),
				code(fmt.Sprintf("%-6s", keys.Binding(a).Help().Key)),
				style.Faint(a.Description()),
			)
		}
	},
}

func init() {
	keysCmd.AddCommand(keysInitCmd)
	keysInitCmd.Flags().BoolP("force", "f", false, "Overwrite without asking")
}

var keysInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a key-binding file filled with the defaults",
	Run: func(cmd *cobra.Command, args []string) {
		path := where.KeyBindings()

		exists, err := filesystem.API().Exists(path)
		handleErr(err)

		if exists && !lo.Must(cmd.Flags().GetBool("force")) {
			var overwrite bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("%s already exists. Overwrite?", path),
				Default: false,
			}, &overwrite))

			if !overwrite {
				return
			}
		}

		handleErr(filesystem.API().WriteFile(path, []byte(keybind.Defaults().Template()), 0644))
		fmt.Printf("%s wrote key bindings to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}
