package matcher

import (
	"slices"

	"github.com/siherrmann/vnextract/model"
)

// Resolve turns candidate spans into a sorted set of non-overlapping spans.
//
// Candidates are stably sorted by start token, so equal starts keep the order
// they were produced in. Each candidate is compared with the accepted spans:
// on the first overlap the candidate replaces the accepted span if its text
// is strictly longer, otherwise it is dropped. A replacement is not checked
// again against the other accepted spans.
//
// Because candidates arrive by ascending start, at most one accepted span can
// overlap a candidate and appending keeps the result sorted.
func Resolve(candidates []model.EntitySpan) []model.EntitySpan {
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b model.EntitySpan) int {
		return a.TokenStart - b.TokenStart
	})

	accepted := make([]model.EntitySpan, 0, len(sorted))
	for _, candidate := range sorted {
		overlap := false
		for i, existing := range accepted {
			if !candidate.Overlaps(existing) {
				continue
			}
			overlap = true
			if candidate.Length() > existing.Length() {
				accepted = slices.Delete(accepted, i, i+1)
				accepted = append(accepted, candidate)
			}
			break
		}
		if !overlap {
			accepted = append(accepted, candidate)
		}
	}

	return accepted
}
