package matcher

import "github.com/siherrmann/vnextract/model"

// align projects a character span onto the token stream.
// The start token contains the first character, the end token contains the
// last one. Tokens are scanned in order and the scan stops at the end token,
// so a match whose start is not covered by a token before that point is
// reported as not aligned.
func align(match model.RawMatch, tokens []model.Token) (model.EntitySpan, bool) {
	tokenStart, tokenEnd := -1, -1
	for i, token := range tokens {
		if token.Contains(match.Start) {
			tokenStart = i
		}
		if token.EndsWithin(match.End) {
			tokenEnd = i + 1
			break
		}
	}
	if tokenStart < 0 || tokenEnd < 0 {
		return model.EntitySpan{}, false
	}

	return model.EntitySpan{
		TokenStart: tokenStart,
		TokenEnd:   tokenEnd,
		Start:      match.Start,
		End:        match.End,
		Label:      match.Label,
		Category:   match.Category,
		Text:       match.Text,
	}, true
}
