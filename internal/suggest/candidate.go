package suggest

import (
	"fmt"
	"sort"
	"strings"
)

// Thresholds for suggestions.
const (
	// DefaultMinScore is the lowest similarity worth suggesting.
	DefaultMinScore = 0.6
	// DefaultMaxSuggestions caps how many names a hint lists.
	DefaultMaxSuggestions = 3
)

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by score, best first.
type CandidateList []Candidate

// Rank scores every known name against name. Ties are broken by name so the
// result does not depend on the order of known.
func Rank(name string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, k := range known {
		candidates = append(candidates, Candidate{Name: k, Score: NameSimilarity(name, k)})
	}

	sort.Sort(candidates)

	return candidates
}

func (c CandidateList) Len() int      { return len(c) }
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns at most n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if there are none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

// Names returns the candidate names in rank order.
func (c CandidateList) Names() []string {
	names := make([]string, 0, len(c))
	for _, cand := range c {
		names = append(names, cand.Name)
	}

	return names
}

// Suggest returns the known names close enough to name, best first.
func Suggest(name string, known []string) []string {
	return Rank(name, known).AboveThreshold(DefaultMinScore).Top(DefaultMaxSuggestions).Names()
}

// Hint formats the suggestions for name as ` (did you mean "a" or "b"?)`,
// or returns "" when nothing is close.
func Hint(name string, known []string) string {
	names := Suggest(name, known)
	if len(names) == 0 {
		return ""
	}

	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, fmt.Sprintf("%q", n))
	}

	return " (did you mean " + strings.Join(quoted, " or ") + "?)"
}
