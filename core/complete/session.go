package complete

// Session walks the matches of one completion request.
type Session struct {
	Prefix string

	matches []string
	next    int
}

// Next returns the next match. Once the matches are exhausted it keeps
// returning false.
func (s *Session) Next() (string, bool) {
	if s.next >= len(s.matches) {
		return "", false
	}
	match := s.matches[s.next]
	s.next++
	return match, true
}

// Matches returns all matches of the request regardless of the cursor.
func (s *Session) Matches() []string {
	return append([]string(nil), s.matches...)
}

// Remaining returns the number of matches Next has yet to return.
func (s *Session) Remaining() int {
	return len(s.matches) - s.next
}
