package version

import (
	"fmt"
	"io"
	"os"

	"github.com/lyrebird-cli/lyrebird/color"
	"github.com/lyrebird-cli/lyrebird/constant"
	"github.com/lyrebird-cli/lyrebird/icon"
	"github.com/lyrebird-cli/lyrebird/key"
	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/lyrebird-cli/lyrebird/style"
	"github.com/lyrebird-cli/lyrebird/util"
	"github.com/spf13/viper"
)

// Notify prints a short banner when cli.version_check is on and a newer release exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, ok := newer(Latest, constant.Version)
	erase()

	if ok {
		announce(os.Stdout, latest)
	}
}

// newer reports the latest release when it is ahead of current.
// Lookup failures are logged and treated as "up to date".
func newer(latest func() (string, error), current string) (string, bool) {
	version, err := latest()
	if err != nil {
		log.Warnf("version check: %v", err)
		return "", false
	}

	comp, err := Compare(version, current)
	if err != nil {
		log.Warnf("version check: %v", err)
		return "", false
	}

	return version, comp > 0
}

func announce(w io.Writer, version string) {
	_, _ = fmt.Fprintf(w, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/lyrebird-cli/lyrebird/releases/tag/v"+version),
	)
}
