package match

import (
	"sort"
)

// DefaultThreshold is the minimum score Suggest accepts.
const DefaultThreshold = 0.6

// Candidate is a known name scored against a query.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates ordered best first.
type CandidateList []Candidate

// Rank scores every known name against query, best first.
// Ties are broken alphabetically.
func Rank(query string, known []string) CandidateList {
	out := make(CandidateList, 0, len(known))
	for _, name := range known {
		out = append(out, Candidate{Name: name, Score: Score(query, name)})
	}

	sort.Sort(out)

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
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
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Suggest returns the known name closest to query when it scores at least
// DefaultThreshold.
func Suggest(query string, known []string) (string, bool) {
	best := Rank(query, known).AboveThreshold(DefaultThreshold).Best()
	if best == nil {
		return "", false
	}

	return best.Name, true
}

// Hint formats a " (did you mean %q?)" suffix, or "" when nothing is close.
func Hint(query string, known []string) string {
	name, ok := Suggest(query, known)
	if !ok {
		return ""
	}

	return " (did you mean \"" + name + "\"?)"
}
