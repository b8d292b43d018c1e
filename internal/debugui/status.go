package debugui

import "time"

// statusLine is a transient message shown in the panel.
type statusLine struct {
	text    string
	isError bool
	shownAt time.Time
	ttl     time.Duration
}

func (s *statusLine) set(text string, isError bool, now time.Time) {
	s.text = text
	s.isError = isError
	s.shownAt = now
}

// visible reports whether the message should still be drawn.
func (s *statusLine) visible(now time.Time) bool {
	return s.text != "" && now.Sub(s.shownAt) < s.ttl
}
