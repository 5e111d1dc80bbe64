package recommend

import (
	"slices"

	"github.com/jonathan/esg-navigator/internal/types"
)

// Answer keys read by the default rules.
const (
	KeyObjective  = "objective"
	KeyScope      = "scope"
	KeyPriorities = "priorities"
)

// Framework IDs the default rules single out.
const (
	universalBaselineID = "gri"
	industryMetricsID   = "sasb"
)

// Rule is one scoring rule. A matching rule adds ScoreDelta to the score
// and, when Reason is set, appends Reason to the reasons list.
type Rule struct {
	Name       string
	Match      func(f *types.Framework, answers types.Answers) bool
	ScoreDelta int
	Reason     string
}

// CandidateFilter restricts the candidate set when the answer for Key is Value.
type CandidateFilter struct {
	Key   string
	Value string
	Keep  func(f *types.Framework) bool
}

// DefaultFilters returns the candidate filters, checked in order; the first
// whose answer matches is applied.
func DefaultFilters() []CandidateFilter {
	return []CandidateFilter{
		{
			Key:   KeyObjective,
			Value: "compliance",
			Keep: func(f *types.Framework) bool {
				return f.IsMandatory || f.ID == universalBaselineID
			},
		},
		{
			Key:   KeyObjective,
			Value: "materiality",
			Keep: func(f *types.Framework) bool {
				return slices.Contains([]string{"sasb", "esrs"}, f.ID)
			},
		},
	}
}

// DefaultRules returns the scoring rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "compliance-mandatory",
			Match: func(f *types.Framework, a types.Answers) bool {
				return a.Is(KeyObjective, "compliance") && f.IsMandatory
			},
			ScoreDelta: 30,
			Reason:     "Meets regulatory compliance requirements",
		},
		{
			Name: "materiality-industry-metrics",
			Match: func(f *types.Framework, a types.Answers) bool {
				return a.Is(KeyObjective, "materiality") && f.ID == industryMetricsID
			},
			ScoreDelta: 25,
		},
		{
			Name: "materiality-industry-guidance",
			Match: func(f *types.Framework, a types.Answers) bool {
				return a.Is(KeyObjective, "materiality") && f.HasIndustrySpecificity
			},
			Reason: "Provides industry-specific guidance",
		},
		{
			Name: "comprehensive-universal",
			Match: func(f *types.Framework, a types.Answers) bool {
				return a.Is(KeyScope, "comprehensive") && f.ID == universalBaselineID
			},
			ScoreDelta: 20,
		},
		{
			Name: "climate-priority",
			Match: func(f *types.Framework, a types.Answers) bool {
				return a.Includes(KeyPriorities, "climate") && f.HasFocusArea("Climate")
			},
			Reason: "Strong focus on climate-related disclosures",
		},
	}
}
