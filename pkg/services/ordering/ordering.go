// Package ordering provides the stable candidate-ranking used when a domain
// collects more narrative candidates than a report has room for. The rank
// looks arbitrary but is a pure function of the year and the candidate's
// length, so regenerating a report for the same inputs always selects and
// orders the same candidates.
package ordering

import "sort"

// Rank returns a reproducible pseudo-random score for one candidate.
func Rank(year, length int) uint32 {
	h := uint32(year)*2654435761 + uint32(length)*40503
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return h
}

// Arrange returns the candidates reordered by Rank. The input slice is not
// modified. Equal ranks keep their original relative order, so the result
// is fully determined by (year, candidates).
func Arrange(year int, candidates []string) []string {
	out := make([]string, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		return Rank(year, len(out[i])) < Rank(year, len(out[j]))
	})
	return out
}
