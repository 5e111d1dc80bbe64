// Package catalog provides read-only queries over the reference dataset.
package catalog

import (
	"math"
	"strings"

	"github.com/jonathan/esg-navigator/internal/dataset"
	"github.com/jonathan/esg-navigator/internal/types"
)

// Service answers queries against a dataset. It never mutates the dataset.
type Service struct {
	data *dataset.Dataset
}

// New creates a query service over the given dataset.
func New(data *dataset.Dataset) *Service {
	return &Service{data: data}
}

// Counts returns the number of records per kind.
func (s *Service) Counts() map[string]int {
	return s.data.Counts()
}

// ListFrameworks returns every framework in insertion order.
func (s *Service) ListFrameworks() []types.Framework {
	return s.data.Frameworks()
}

// GetFramework returns the framework with the given ID.
func (s *Service) GetFramework(id string) (types.Framework, bool) {
	return s.data.Framework(id)
}

// FilterFrameworks returns the frameworks matching every criterion of the filter.
func (s *Service) FilterFrameworks(filter types.FrameworkFilter) []types.Framework {
	all := s.data.Frameworks()
	if filter.IsEmpty() {
		return all
	}

	out := make([]types.Framework, 0, len(all))
	for _, f := range all {
		if filter.Category != "" && f.Category != filter.Category {
			continue
		}
		if filter.Mandatory != nil && f.IsMandatory != *filter.Mandatory {
			continue
		}
		if filter.FocusArea != "" && !f.HasFocusArea(filter.FocusArea) {
			continue
		}
		if filter.Year != 0 && f.EstablishedYear != filter.Year {
			continue
		}
		out = append(out, f)
	}
	return out
}

// ListResources returns resources matching the filter. A framework filter
// never matches framework-agnostic resources.
func (s *Service) ListResources(filter types.ResourceFilter) []types.Resource {
	all := s.data.Resources()
	out := make([]types.Resource, 0, len(all))
	for _, r := range all {
		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		if filter.FrameworkID != "" && !r.BelongsTo(filter.FrameworkID) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ResourcesForFramework returns the resources tied to a framework.
// The boolean is false when the framework does not exist.
func (s *Service) ResourcesForFramework(id string) ([]types.Resource, bool) {
	if _, ok := s.data.Framework(id); !ok {
		return nil, false
	}
	return s.ListResources(types.ResourceFilter{FrameworkID: id}), true
}

// ListSelectorQuestions returns the quiz questions ascending by order.
func (s *Service) ListSelectorQuestions() []types.SelectorQuestion {
	return s.data.Questions()
}

// ListComparisons returns the comparison rows ascending by order.
func (s *Service) ListComparisons() []types.FrameworkComparison {
	return s.data.Comparisons()
}

// Stats summarizes the framework collection.
func (s *Service) Stats() types.FrameworkStats {
	frameworks := s.data.Frameworks()
	stats := types.FrameworkStats{Total: len(frameworks)}
	if len(frameworks) == 0 {
		return stats
	}

	categories := make(map[string]bool)
	yearSum := 0
	for _, f := range frameworks {
		if f.IsMandatory {
			stats.Mandatory++
		} else {
			stats.Voluntary++
		}
		if f.HasIndustrySpecificity {
			stats.WithIndustrySpecificity++
		}
		categories[f.Category] = true
		yearSum += f.EstablishedYear
	}
	stats.Categories = len(categories)
	stats.AverageYear = int(math.Round(float64(yearSum) / float64(len(frameworks))))
	return stats
}

// Search returns frameworks and resources containing query, case-insensitively.
// An empty query matches everything; callers enforce any minimum length.
func (s *Service) Search(query string) types.SearchResults {
	q := strings.ToLower(query)

	results := types.SearchResults{
		Frameworks: []types.Framework{},
		Resources:  []types.Resource{},
	}
	for _, f := range s.data.Frameworks() {
		if frameworkMatches(&f, q) {
			results.Frameworks = append(results.Frameworks, f)
		}
	}
	for _, r := range s.data.Resources() {
		if resourceMatches(&r, q) {
			results.Resources = append(results.Resources, r)
		}
	}
	return results
}

func frameworkMatches(f *types.Framework, q string) bool {
	return containsFold(f.Name, q) ||
		containsFold(f.FullName, q) ||
		containsFold(f.Description, q) ||
		anyContainsFold(f.FocusAreas, q) ||
		anyContainsFold(f.KeyFeatures, q)
}

func resourceMatches(r *types.Resource, q string) bool {
	return containsFold(r.Title, q) ||
		containsFold(r.Description, q) ||
		anyContainsFold(r.Tags, q)
}

// containsFold reports whether the lowercased q is within s.
func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

func anyContainsFold(values []string, q string) bool {
	for _, v := range values {
		if containsFold(v, q) {
			return true
		}
	}
	return false
}
