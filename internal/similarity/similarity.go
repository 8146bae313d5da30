// Package similarity provides token-based string similarity scoring and a
// nearest-neighbor helper used by the cross-source aligner. Scores are on a
// 0-100 scale; any symmetric scorer on that scale can be plugged in.
package similarity

import "strings"

// Scorer computes a similarity score in [0, 100] between two strings.
// Implementations must be symmetric.
type Scorer func(a, b string) float64

// TokenSetRatio scores two strings by token multiset overlap, insensitive to
// token order: 200 * |overlap| / (|a| + |b|). Identical multisets score 100,
// disjoint ones 0.
func TokenSetRatio(a, b string) float64 {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)

	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 100
	}
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	counts := make(map[string]int, len(tokensA))
	for _, tok := range tokensA {
		counts[tok]++
	}

	overlap := 0
	for _, tok := range tokensB {
		if counts[tok] > 0 {
			counts[tok]--
			overlap++
		}
	}

	return 200 * float64(overlap) / float64(len(tokensA)+len(tokensB))
}

// Match is a scored candidate returned by BestMatch.
type Match struct {
	Candidate string
	Score     float64
}

// BestMatch scans candidates in order and returns the single highest-scoring
// one, provided its score meets the inclusive threshold. Ties keep the first
// candidate encountered, so callers control tie-breaking through candidate
// order. The boolean is false when no candidate clears the threshold.
func BestMatch(query string, candidates []string, scorer Scorer, threshold float64) (Match, bool) {
	best := Match{Score: -1}
	for _, candidate := range candidates {
		if score := scorer(query, candidate); score > best.Score {
			best = Match{Candidate: candidate, Score: score}
		}
	}
	if best.Score < threshold || best.Score < 0 {
		return Match{}, false
	}
	return best, true
}
