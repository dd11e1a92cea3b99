package match

import "strings"

// degreeVocabulary maps degree keywords to rank buckets. Lookup is substring
// containment in listed order, so the first entry found in the input wins;
// the order is fixed by the slice, never a map.
var degreeVocabulary = []struct {
	key  string
	rank float64
}{
	{"phd", 4},
	{"mtech", 3},
	{"msc", 3},
	{"masters", 3},
	{"btech", 2},
	{"bsc", 2},
	{"bachelor", 2},
	{"diploma", 1},
	{"pu", 0.5},
	{"12th", 0.5},
	{"puc", 0.5},
	{"10th", 0.4},
	{"sslc", 0.4},
}

// NormalizeDegree maps a free-form degree string to its canonical vocabulary
// key. It returns "" when the input is empty or contains no known keyword.
func NormalizeDegree(raw string) string {
	if raw == "" {
		return ""
	}

	lowered := strings.ToLower(raw)
	for _, entry := range degreeVocabulary {
		if strings.Contains(lowered, entry.key) {
			return entry.key
		}
	}
	return ""
}

// DegreeRank returns the rank bucket for a canonical degree key, or 0 for
// unknown or empty keys.
func DegreeRank(key string) float64 {
	for _, entry := range degreeVocabulary {
		if entry.key == key {
			return entry.rank
		}
	}
	return 0
}
