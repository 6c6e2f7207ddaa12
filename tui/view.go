package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lyrebird-cli/lyrebird/icon"
	"github.com/lyrebird-cli/lyrebird/player"
	"github.com/lyrebird-cli/lyrebird/session"
	"github.com/lyrebird-cli/lyrebird/style"
	"github.com/lyrebird-cli/lyrebird/track"
	"github.com/lyrebird-cli/lyrebird/util"
	"github.com/muesli/reflow/wrap"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)
	activeLyric  = lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor)
)

// lines taken by everything except the track list
const chromeHeight = 8

func (b *statefulBubble) View() string {
	v := b.ctrl.Snapshot()

	lines := []string{
		b.viewStatus(v),
		b.viewProgress(v),
		b.viewIndicators(v),
		"",
	}

	switch {
	case b.state == searchState:
		lines = append(lines, b.viewSearch()...)
	case v.Mode == session.LocalLyrics:
		lines = append(lines, b.viewLyrics(v)...)
	default:
		lines = append(lines, b.viewList(v)...)
	}

	if v.Message != "" {
		lines = append(lines, "", wrap.String(style.Fg(style.ErrorColor)(icon.Get(icon.Fail)+" "+v.Message), b.width))
	}

	return b.notifier.View(b.renderLines(true, lines))
}

func (b *statefulBubble) viewStatus(v session.View) string {
	var status string
	switch v.Status {
	case player.Playing:
		status = style.Fg(style.PlayingColor)(icon.Get(icon.Playing) + " " + v.Status.String())
	case player.Paused:
		status = style.Fg(style.PausedColor)(icon.Get(icon.Paused) + " " + v.Status.String())
	default:
		status = style.Fg(style.StoppedColor)(icon.Get(icon.Stopped) + " " + v.Status.String())
	}

	label := v.Label
	if v.StreamTitle != "" {
		label += " - " + v.StreamTitle
	}

	room := b.width - lipgloss.Width(status) - 1
	return status + " " + style.Bold(style.Truncate(util.Max(room, 0))(label))
}

func (b *statefulBubble) viewProgress(v session.View) string {
	if v.Active == session.Radio {
		return style.Faint(icon.Get(icon.Radio) + " live " + track.FormatTime(v.Position))
	}
	// "mm:ss [" and "] mm:ss"
	return track.ProgressBar(v.Position, v.Duration, util.Max(b.width-14, 0))
}

func (b *statefulBubble) viewIndicators(v session.View) string {
	toggle := func(on bool, i icon.Icon, name string) string {
		text := icon.Get(i) + " " + name
		if on {
			return style.Fg(style.AccentColor)(text)
		}
		return style.Faint(text)
	}

	parts := []string{
		toggle(v.Shuffle, icon.Shuffle, "shuffle"),
		toggle(v.Repeat, icon.Repeat, "repeat"),
		fmt.Sprintf("%s %d%%", icon.Get(icon.Volume), v.Volume),
		toggle(v.Mode == session.RadioBrowse, icon.Radio, "radio"),
		toggle(v.Mode == session.LocalLyrics, icon.Lyrics, "lyrics"),
	}
	if v.Term != "" {
		parts = append(parts, style.Italic(icon.Get(icon.Search)+" "+v.Term))
	}

	return style.Truncate(b.width)(strings.Join(parts, "  "))
}

func (b *statefulBubble) viewSearch() []string {
	lines := []string{style.Title("Search"), "", b.inputC.View()}
	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, style.Faint(fmt.Sprintf("tab: %s", suggestion)))
	}
	return lines
}

func (b *statefulBubble) listHeight() int {
	return util.Max(b.height-chromeHeight, 3)
}

func (b *statefulBubble) viewList(v session.View) []string {
	title := "Library"
	if v.Mode == session.RadioBrowse {
		title = "Radio"
	}
	lines := []string{style.Title(fmt.Sprintf("%s (%s)", title, util.Quantify(len(v.Rows), "track", "tracks")))}

	if len(v.Rows) == 0 {
		return append(lines, style.Faint("nothing to show"))
	}

	height := b.listHeight() - 1
	start := util.Clamp(v.Highlighted-height/2, 0, util.Max(len(v.Rows)-height, 0))
	end := util.Min(start+height, len(v.Rows))

	cols := newColumns(b.width, v.ShowArtist, v.ShowAlbum)
	for i := start; i < end; i++ {
		lines = append(lines, cols.render(v.Rows[i], i == v.Highlighted))
	}
	return lines
}

// viewLyrics lays the frame out around the middle row. Offsets are rounded to
// whole rows, so a line moves up once the next one is more than half way.
func (b *statefulBubble) viewLyrics(v session.View) []string {
	lines := []string{style.Title("Lyrics")}

	switch v.Lyrics {
	case session.LyricsLoading:
		return append(lines, b.spinnerC.View()+" fetching lyrics")
	case session.LyricsReady:
	default:
		return append(lines, style.Faint("no lyrics for this track"))
	}

	rows := make([]string, util.Min(b.listHeight()-1, 2*len(v.Frame.Lines)+1))
	if len(rows) == 0 {
		return lines
	}
	middle := len(rows) / 2

	for _, l := range v.Frame.Lines {
		row := middle + int(math.Round(l.Offset))
		if row < 0 || row >= len(rows) {
			continue
		}

		text := style.Truncate(b.width)(l.Text)
		if l.Active {
			text = activeLyric.Render(text)
		} else {
			text = style.Faint(text)
		}
		rows[row] = lipgloss.PlaceHorizontal(b.width, lipgloss.Center, text)
	}

	return append(lines, rows...)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := 0
	for _, l := range lines {
		h += lipgloss.Height(l)
	}

	l := strings.Join(lines, "\n")
	if addHelp {
		helpView := b.helpC.View(b.keymap)
		if gap := b.height - h - lipgloss.Height(helpView); gap > 0 {
			l += strings.Repeat("\n", gap)
		}
		l += "\n" + helpView
	}

	return paddingStyle.Render(l)
}
