// Package recommend ranks frameworks against selector quiz answers.
package recommend

import (
	"cmp"
	"slices"

	"github.com/jonathan/esg-navigator/internal/types"
)

// Score bounds
const (
	BaseScore = 50
	MinScore  = 0
	MaxScore  = 100
)

// Scorer ranks frameworks with an ordered set of candidate filters and rules.
// It holds no state between calls.
type Scorer struct {
	base    int
	filters []CandidateFilter
	rules   []Rule
}

// New creates a scorer with the given filters and rules.
func New(filters []CandidateFilter, rules []Rule) *Scorer {
	return &Scorer{
		base:    BaseScore,
		filters: filters,
		rules:   rules,
	}
}

// Default creates a scorer with the default filters and rules.
func Default() *Scorer {
	return New(DefaultFilters(), DefaultRules())
}

// Recommend scores the candidate frameworks and returns them by descending
// score. Equal scores keep the order of the input.
func (s *Scorer) Recommend(frameworks []types.Framework, answers types.Answers) []types.Recommendation {
	candidates := s.Candidates(frameworks, answers)

	recs := make([]types.Recommendation, 0, len(candidates))
	for _, f := range candidates {
		score, reasons := s.Evaluate(&f, answers)
		recs = append(recs, types.Recommendation{
			Framework: f,
			Score:     score,
			Reasons:   reasons,
		})
	}

	slices.SortStableFunc(recs, func(a, b types.Recommendation) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return recs
}

// Candidates applies the first filter whose answer matches. Without a
// matching filter every framework is a candidate.
func (s *Scorer) Candidates(frameworks []types.Framework, answers types.Answers) []types.Framework {
	for _, filter := range s.filters {
		if !answers.Is(filter.Key, filter.Value) {
			continue
		}
		out := make([]types.Framework, 0, len(frameworks))
		for _, f := range frameworks {
			if filter.Keep(&f) {
				out = append(out, f)
			}
		}
		return out
	}
	return frameworks
}

// Evaluate returns the clamped score and the reasons for one framework.
func (s *Scorer) Evaluate(f *types.Framework, answers types.Answers) (int, []string) {
	score := s.base
	reasons := []string{}
	for _, rule := range s.rules {
		if !rule.Match(f, answers) {
			continue
		}
		score += rule.ScoreDelta
		if rule.Reason != "" {
			reasons = append(reasons, rule.Reason)
		}
	}
	return clamp(score), reasons
}

func clamp(score int) int {
	return min(MaxScore, max(MinScore, score))
}

// NormalizeAnswers copies answers keyed by a question ID onto that
// question's topic, so {"q1": "compliance"} is read as {"objective": "compliance"}.
// An answer already given under the topic key wins. Other keys are kept as-is.
func NormalizeAnswers(answers types.Answers, questions []types.SelectorQuestion) types.Answers {
	out := make(types.Answers, len(answers))
	for k, v := range answers {
		out[k] = v
	}
	for _, q := range questions {
		if q.Topic == "" {
			continue
		}
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		if _, exists := answers[q.Topic]; !exists {
			out[q.Topic] = v
		}
	}
	return out
}
