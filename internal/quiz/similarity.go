package quiz

const (
	winklerPrefixLimit = 4
	winklerScaling     = 0.1
	winklerThreshold   = 0.7
)

// Similarity scores two strings in [0, 1]. It is a Jaro-Winkler similarity that
// ignores transpositions, so swapped letters cost nothing beyond the match window.
// It is symmetric and 1 only for equal strings.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	r1, r2 := []rune(a), []rune(b)
	if len(r1) == 0 || len(r2) == 0 {
		return 0
	}

	// greedy matching depends on the direction, so keep the better one
	matches := max(countMatches(r1, r2), countMatches(r2, r1))
	if matches == 0 {
		return 0
	}
	m := float64(matches)
	jaro := (m/float64(len(r1)) + m/float64(len(r2)) + 1) / 3
	if jaro <= winklerThreshold {
		return jaro
	}

	prefix := 0
	for prefix < winklerPrefixLimit && prefix < len(r1) && prefix < len(r2) && r1[prefix] == r2[prefix] {
		prefix++
	}
	similarity := jaro + float64(prefix)*winklerScaling*(1-jaro)
	if similarity >= 1 {
		// only equal strings are an exact match
		return 1 - 1e-9
	}
	return similarity
}

func countMatches(s1, s2 []rune) int {
	window := max(len(s1), len(s2))/2 - 1
	if window < 0 {
		window = 0
	}

	matched := make([]bool, len(s2))
	matches := 0
	for i, r := range s1 {
		start := max(0, i-window)
		end := min(len(s2), i+window+1)
		for j := start; j < end; j++ {
			if matched[j] || s2[j] != r {
				continue
			}
			matched[j] = true
			matches++
			break
		}
	}
	return matches
}
