package faq

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// tokenSetRatio compares two token lists on their shared and distinct words,
// so a query that is a subset of a question scores 1.
func tokenSetRatio(a, b []string) float64 {
	setA, setB := uniqueSorted(a), uniqueSorted(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inB := make(map[string]struct{}, len(setB))
	for _, w := range setB {
		inB[w] = struct{}{}
	}
	var shared, onlyA []string
	for _, w := range setA {
		if _, ok := inB[w]; ok {
			shared = append(shared, w)
		} else {
			onlyA = append(onlyA, w)
		}
	}
	inShared := make(map[string]struct{}, len(shared))
	for _, w := range shared {
		inShared[w] = struct{}{}
	}
	var onlyB []string
	for _, w := range setB {
		if _, ok := inShared[w]; !ok {
			onlyB = append(onlyB, w)
		}
	}

	base := strings.Join(shared, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := ratio(combinedA, combinedB)
	if base != "" {
		best = max(best, ratio(base, combinedA), ratio(base, combinedB))
	}
	return best
}

func ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

func uniqueSorted(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	out := append([]string(nil), words...)
	sort.Strings(out)
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}
