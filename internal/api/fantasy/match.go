package fantasy

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	DefaultFuzzyThreshold = 80
	maxSuggestions        = 5
)

// similarity scores two names from 0 to 100. It takes the best of a plain
// edit ratio, a word-order-insensitive ratio and, for names of very
// different length, the best matching substring.
func similarity(query, candidate string) float64 {
	a := strings.ToLower(strings.TrimSpace(query))
	b := strings.ToLower(strings.TrimSpace(candidate))
	if a == "" || b == "" {
		return 0
	}

	best := ratio(a, b)
	if s := ratio(sortTokens(a), sortTokens(b)) * 0.95; s > best {
		best = s
	}

	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	shorter, longer := a, b
	if la > lb {
		shorter, longer = b, a
		la, lb = lb, la
	}
	if float64(lb)/float64(la) >= 1.5 {
		if s := partialRatio(shorter, longer) * 0.9; s > best {
			best = s
		}
	}

	return best
}

func ratio(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 100
	}
	distance := fuzzy.LevenshteinDistance(a, b)
	return 100 * (1 - float64(distance)/float64(maxLen))
}

func partialRatio(shorter, longer string) float64 {
	s, l := []rune(shorter), []rune(longer)
	best := 0.0
	for i := 0; i+len(s) <= len(l); i++ {
		if r := ratio(shorter, string(l[i:i+len(s)])); r > best {
			best = r
		}
	}
	return best
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// rankNames returns up to five candidates scoring at least threshold,
// best first. Ties are broken alphabetically.
func rankNames(query string, candidates []string, threshold int) []string {
	type scored struct {
		name  string
		score float64
	}

	var matches []scored
	for _, c := range candidates {
		if s := similarity(query, c); s >= float64(threshold) {
			matches = append(matches, scored{name: c, score: s})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	return names
}
