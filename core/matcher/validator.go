package matcher

import "github.com/siherrmann/vnextract/model"

// validate keeps a match only if a trigger of its label occurs within
// window characters on either side of it
func validate(r *rule, match model.RawMatch, lower []rune, window int) bool {
	from := max(0, match.Start-window)
	to := min(len(lower), match.End+window)
	if from >= to {
		return false
	}
	return r.triggered(string(lower[from:to]))
}
