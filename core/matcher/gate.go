package matcher

// gate returns the rules with at least one trigger anywhere in the lowercase text.
// It is a whole-document prefilter, the context validator decides per match.
func (m *Matcher) gate(lower string) []*rule {
	open := make([]*rule, 0, len(m.rules))
	for _, r := range m.rules {
		if r.triggered(lower) {
			open = append(open, r)
		}
	}
	return open
}
