package catalog

import "sort"

// CanonicalSort orders candidates by score (higher first), then by course key
// so equal scores always rank the same way.
func CanonicalSort(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Key < b.Key
	})
}

func candidateKeys(candidates []Candidate) []string {
	keys := make([]string, len(candidates))
	for i, c := range candidates {
		keys[i] = c.Key
	}
	return keys
}
