// Package lyrics parses timestamped lyrics, keeps a playback cursor over them and
// fetches missing lyrics from an lrclib compatible service.
package lyrics

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Line is one timed lyric line.
type Line struct {
	Time time.Duration
	Text string
}

// LineError describes a line that was skipped while parsing.
type LineError struct {
	Number int
	Text   string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Number, e.Text, e.Reason)
}

// Parse reads LRC formatted text. Each line is
//
//	line = { "[" mm ":" ss [ ("." | ":") frac ] "]" } text
//
// A line with several time tags yields one Line per tag. ID tags such as [ar:...] are
// skipped, except [offset:ms] which shifts every timestamp (positive values show lines earlier).
// Lines that carry no valid time tag are reported in skipped and otherwise ignored.
// The result is sorted by time, keeping the file order for equal timestamps.
func Parse(r io.Reader) (lines []Line, skipped []*LineError, err error) {
	var offset time.Duration

	scanner := bufio.NewScanner(r)
	number := 0
	for scanner.Scan() {
		number++
		raw := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if raw == "" {
			continue
		}

		stamps, text, reason := splitTags(raw)
		switch {
		case reason == "" && len(stamps) > 0:
			for _, stamp := range stamps {
				lines = append(lines, Line{Time: stamp, Text: text})
			}
		case reason == "" && text == "":
			// ID tags only.
			if o, ok := offsetTag(raw); ok {
				offset = o
			}
		default:
			if reason == "" {
				reason = "no time tag"
			}
			skipped = append(skipped, &LineError{Number: number, Text: raw, Reason: reason})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("read lyrics: %w", err)
	}

	if offset != 0 {
		for i := range lines {
			lines[i].Time -= offset
			if lines[i].Time < 0 {
				lines[i].Time = 0
			}
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Time < lines[j].Time
	})
	return lines, skipped, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) ([]Line, []*LineError, error) {
	return Parse(strings.NewReader(s))
}

// splitTags consumes the leading bracketed tags of a line.
func splitTags(line string) (stamps []time.Duration, text, reason string) {
	rest := line
	for strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, "", "unterminated tag"
		}
		tag := rest[1:end]
		rest = rest[end+1:]

		if d, ok := parseTimestamp(tag); ok {
			stamps = append(stamps, d)
			continue
		}
		if isIDTag(tag) {
			continue
		}
		return nil, "", fmt.Sprintf("malformed tag [%s]", tag)
	}
	return stamps, strings.TrimSpace(rest), ""
}

// maxMinutes keeps a timestamp inside time.Duration.
const maxMinutes = int64(math.MaxInt64/time.Minute) - 1

// parseTimestamp accepts mm:ss, mm:ss.f and mm:ss:f with up to three fraction digits.
func parseTimestamp(tag string) (time.Duration, bool) {
	minutes, rest, ok := strings.Cut(tag, ":")
	if !ok || !isDigits(minutes) {
		return 0, false
	}

	seconds, frac := rest, ""
	if i := strings.IndexAny(rest, ".:"); i >= 0 {
		seconds, frac = rest[:i], rest[i+1:]
		if frac == "" || len(frac) > 3 || !isDigits(frac) {
			return 0, false
		}
	}
	if seconds == "" || len(seconds) > 2 || !isDigits(seconds) {
		return 0, false
	}

	m, err := strconv.Atoi(minutes)
	if err != nil || int64(m) > maxMinutes {
		return 0, false
	}
	s, _ := strconv.Atoi(seconds)
	if s >= 60 {
		return 0, false
	}

	d := time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	if frac != "" {
		f, _ := strconv.Atoi(frac)
		for i := len(frac); i < 3; i++ {
			f *= 10
		}
		d += time.Duration(f) * time.Millisecond
	}
	return d, true
}

func isIDTag(tag string) bool {
	name, _, ok := strings.Cut(tag, ":")
	if !ok || name == "" {
		return false
	}
	for _, r := range name {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '#') {
			return false
		}
	}
	return true
}

func offsetTag(line string) (time.Duration, bool) {
	line = strings.ToLower(line)
	start := strings.Index(line, "[offset:")
	if start < 0 {
		return 0, false
	}
	value := line[start+len("[offset:"):]
	end := strings.IndexByte(value, ']')
	if end < 0 {
		return 0, false
	}
	ms, err := strconv.Atoi(strings.TrimSpace(value[:end]))
	if err != nil {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
