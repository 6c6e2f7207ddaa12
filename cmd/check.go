package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/lyrebird-cli/lyrebird/icon"
	"github.com/lyrebird-cli/lyrebird/key"
	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/style"
	"github.com/spf13/viper"
)

// CheckRadioBackend warns when the radio stream player is not in PATH.
// Local playback does not need it, so startup continues either way.
func CheckRadioBackend() bool {
	binary := viper.GetString(key.PlayerRadioBackend)
	if _, err := exec.LookPath(binary); err != nil {
		log.Warnf("radio backend %q not found: %v", binary, err)
		printErrorBox(
			"Missing Dependency",
			fmt.Sprintf("The radio player '%s' was not found in your PATH.\nLocal files will play, internet radio will not.", binary),
			installHint(binary),
		)
		return false
	}

	return true
}

func installHint(binary string) string {
	if binary != "mpv" {
		return ""
	}

	switch runtime.GOOS {
	case "darwin":
		return "brew install mpv"
	case "linux":
		return "sudo apt install mpv"
	case "windows":
		return "scoop install mpv"
	default:
		return ""
	}
}

func printErrorBox(title, body, hint string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	heading := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: %s", icon.Get(icon.Fail), title))
	text := style.New().Foreground(style.Text).Render(body)

	suggestion := ""
	if hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			heading,
			"\n",
			text,
			suggestion,
		),
	))
}
