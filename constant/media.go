package constant

// AudioExtensions lists the file extensions the local backend can decode.
var AudioExtensions = []string{".wav", ".ogg", ".flac", ".mp3"}

// PlaylistExtension is the extension of radio playlist files.
const PlaylistExtension = ".m3u"

// LyricsExtension is appended to an audio path to form its lyrics cache file.
const LyricsExtension = ".lrc"

// LrclibEndpoint is the default lyrics lookup endpoint.
const LrclibEndpoint = "https://lrclib.net/api/get"
