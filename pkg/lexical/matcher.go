package lexical

// MatchThreshold is the minimum Jaccard score a FAQ candidate must
// strictly exceed to count as a match.
const MatchThreshold = 0.2

// Jaccard returns |intersection| / |union| of the two token sets.
// Two empty sets score 0.
func Jaccard(a, b TokenSet) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for token := range a {
		if b.Contains(token) {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// BestMatch scans the candidates in order and returns the index of the
// single highest-scoring one, or -1 when there is no match: empty query
// set, no candidates, or a best score that does not strictly exceed
// MatchThreshold. Ties keep the first-encountered candidate (the best is
// only updated on a strictly greater score).
//
// O(n*k) per call; fine at reference-table scale.
func BestMatch(query TokenSet, candidates []TokenSet) int {
	if len(query) == 0 || len(candidates) == 0 {
		return -1
	}

	bestIdx := -1
	bestScore := 0.0
	for i, cand := range candidates {
		if len(cand) == 0 {
			continue
		}
		score := Jaccard(query, cand)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestScore <= MatchThreshold {
		return -1
	}
	return bestIdx
}
