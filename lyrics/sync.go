package lyrics

import "time"

// Sync maps a playback clock onto a line sequence.
//
// The cursor only moves forward: timestamps are assumed non-decreasing, and when they are
// not the active line is the last one reached in scan order. A Sync belongs to one track;
// create a new one (or Reset) when the loaded track changes.
type Sync struct {
	lines   []Line
	current int
}

// RenderLine is one entry of a Frame.
type RenderLine struct {
	Index  int
	Text   string
	Offset float64
	Active bool
}

// Frame is what a renderer needs to draw the lyrics window for one tick.
type Frame struct {
	Current  int
	Fraction float64
	Lines    []RenderLine
}

// NewSync returns a cursor at the first line.
func NewSync(lines []Line) *Sync {
	return &Sync{lines: lines}
}

// Len returns the number of lines.
func (s *Sync) Len() int {
	return len(s.lines)
}

// Empty reports whether there is nothing to show.
func (s *Sync) Empty() bool {
	return len(s.lines) == 0
}

// Current returns the cursor position.
func (s *Sync) Current() int {
	return s.current
}

// Reset moves the cursor back to the first line.
func (s *Sync) Reset() {
	s.current = 0
}

// Advance moves the cursor forward while the next line has started by t.
func (s *Sync) Advance(t time.Duration) int {
	for s.current+1 < len(s.lines) && t >= s.lines[s.current+1].Time {
		s.current++
	}
	return s.current
}

// Fraction is how far t is through the active line, in [0, 1].
// The line ends where the next one starts, or at duration for the last line.
func (s *Sync) Fraction(t, duration time.Duration) float64 {
	if len(s.lines) == 0 {
		return 0
	}

	start := s.lines[s.current].Time
	end := duration
	if s.current+1 < len(s.lines) {
		end = s.lines[s.current+1].Time
	}
	if end <= start {
		return 0
	}

	frac := (t - start).Seconds() / (end - start).Seconds()
	switch {
	case frac < 0:
		return 0
	case frac > 1:
		return 1
	}
	return frac
}

// Render advances to t and lays out window lines above and below the active one.
// Each line's Offset is (relative index - fraction) * lineHeight, so the active line
// glides toward the centre as the next one approaches.
func (s *Sync) Render(t, duration time.Duration, window int, lineHeight float64) Frame {
	if len(s.lines) == 0 {
		return Frame{}
	}
	if window < 0 {
		window = 0
	}

	current := s.Advance(t)
	frac := s.Fraction(t, duration)

	frame := Frame{Current: current, Fraction: frac}
	for rel := -window; rel <= window; rel++ {
		idx := current + rel
		if idx < 0 || idx >= len(s.lines) {
			continue
		}
		frame.Lines = append(frame.Lines, RenderLine{
			Index:  idx,
			Text:   s.lines[idx].Text,
			Offset: (float64(rel) - frac) * lineHeight,
			Active: rel == 0,
		})
	}
	return frame
}
