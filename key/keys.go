// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playback - volume and seek behaviour of the session controller.
const (
	PlayerVolume       = "player.volume"
	PlayerVolumeStep   = "player.volume_step"
	PlayerSeekStep     = "player.seek_step"
	PlayerRadioBackend = "player.radio_backend"
)

// Terminal User Interface (TUI) - refresh cadence and list presentation.
const (
	TUITickInterval       = "tui.tick_interval"
	TUIShowAlbum          = "tui.show_album"
	TUIShowArtist         = "tui.show_artist"
	TUISearchPromptString = "tui.search_prompt"
)

// Search - filter predicate and query history.
const (
	SearchMatcher              = "search.matcher"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Lyrics - remote lookup and overlay rendering.
const (
	LyricsEnabled  = "lyrics.enabled"
	LyricsEndpoint = "lyrics.endpoint"
	LyricsTimeout  = "lyrics.timeout"
	LyricsWindow   = "lyrics.window"
)

// Library - local directory scanning.
const (
	LibraryExtensions = "library.extensions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
