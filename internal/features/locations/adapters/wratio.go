package adapters

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// WRatio is a weighted similarity scorer over tokenized strings (0-100).
// Strings of similar length are compared whole and as sorted token sets;
// when one is much longer the shorter is aligned against the best window
// of the longer, with a penalty that grows with the length gap.
func WRatio(query, candidate string) float64 {
	a, b := preprocess(query), preprocess(candidate)
	if a == "" || b == "" {
		return 0
	}

	base := ratio(a, b)

	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	lenRatio := float64(max(la, lb)) / float64(min(la, lb))

	if lenRatio < 1.5 {
		return max(base, tokenSortRatio(a, b)*0.95, tokenSetRatio(a, b)*0.95)
	}

	scale := 0.9
	if lenRatio >= 8 {
		scale = 0.6
	}

	partial := partialRatio(a, b) * scale
	partialTokens := partialTokenRatio(a, b) * 0.95 * scale

	return max(base, partial, partialTokens)
}

// preprocess lowercases, replaces every non-alphanumeric rune with a space
// and trims the ends. Inner runs of spaces are kept.
func preprocess(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.TrimSpace(mapped)
}

// ratio is the normalized Indel similarity: only insertions and deletions
// count, so 1 - (la+lb-2*LCS)/(la+lb).
func ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}
	d := edlib.LCSEditDistance(a, b)
	return 100 * (1 - float64(d)/float64(total))
}

// partialRatio scores the shorter string against every same-length window of
// the longer one, plus the shorter prefixes and suffixes at either edge.
func partialRatio(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	best := alignedRatio(short, long)
	if len(short) == len(long) {
		best = max(best, alignedRatio(long, short))
	}
	return best
}

func alignedRatio(needle, hay []rune) float64 {
	s := string(needle)
	n, h := len(needle), len(hay)

	best := 0.0
	consider := func(window []rune) bool {
		if score := ratio(s, string(window)); score > best {
			best = score
		}
		return best == 100
	}

	for i := 1; i < n; i++ {
		if consider(hay[:i]) {
			return best
		}
	}
	for i := 0; i+n <= h; i++ {
		if consider(hay[i : i+n]) {
			return best
		}
	}
	for i := max(h-n+1, 1); i < h; i++ {
		if consider(hay[i:]) {
			return best
		}
	}
	return best
}

func sortedTokens(s string) []string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return tokens
}

func tokenSortRatio(a, b string) float64 {
	return ratio(strings.Join(sortedTokens(a), " "), strings.Join(sortedTokens(b), " "))
}

// tokenSetRatio compares the shared tokens against each side's remainder.
func tokenSetRatio(a, b string) float64 {
	sect, diffA, diffB := tokenSets(a, b)
	if len(sect) > 0 && (len(diffA) == 0 || len(diffB) == 0) {
		return 100
	}

	t0 := strings.Join(sect, " ")
	t1 := strings.TrimSpace(t0 + " " + strings.Join(diffA, " "))
	t2 := strings.TrimSpace(t0 + " " + strings.Join(diffB, " "))

	if t0 == "" {
		return ratio(t1, t2)
	}
	return max(ratio(t0, t1), ratio(t0, t2), ratio(t1, t2))
}

// partialTokenRatio is a full match when any token is shared, otherwise the
// partial ratio of the sorted token strings.
func partialTokenRatio(a, b string) float64 {
	sect, _, _ := tokenSets(a, b)
	if len(sect) > 0 {
		return 100
	}
	return partialRatio(strings.Join(sortedTokens(a), " "), strings.Join(sortedTokens(b), " "))
}

func tokenSets(a, b string) (sect, diffA, diffB []string) {
	setA := toSet(strings.Fields(a))
	setB := toSet(strings.Fields(b))

	for t := range setA {
		if _, ok := setB[t]; ok {
			sect = append(sect, t)
		} else {
			diffA = append(diffA, t)
		}
	}
	for t := range setB {
		if _, ok := setA[t]; !ok {
			diffB = append(diffB, t)
		}
	}
	sort.Strings(sect)
	sort.Strings(diffA)
	sort.Strings(diffB)
	return sect, diffA, diffB
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
