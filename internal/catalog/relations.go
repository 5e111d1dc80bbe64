package catalog

import (
	"github.com/jonathan/esg-navigator/internal/types"
)

// Comparison rows that carry implementation guidance.
const (
	comparisonDifficulty = "implementation-difficulty"
	comparisonTime       = "implementation-time"
	comparisonCost       = "implementation-cost"
)

const unknownLevel = "Unknown"

type relationship struct {
	complements  []string
	overlaps     []string
	alternatives []string
}

// relationships between the seeded frameworks
var relationships = map[string]relationship{
	"gri": {
		complements:  []string{"esrs", "ungc", "ir"},
		overlaps:     []string{"esrs"},
		alternatives: []string{"sasb"},
	},
	"esrs": {
		complements: []string{"gri", "tnfd"},
		overlaps:    []string{"gri", "sasb"},
	},
	"sasb": {
		complements:  []string{"gri", "tnfd"},
		overlaps:     []string{"esrs"},
		alternatives: []string{"gri"},
	},
	"tnfd": {
		complements: []string{"gri", "esrs", "sasb"},
	},
	"ungc": {
		complements: []string{"gri", "ir"},
	},
	"ir": {
		complements: []string{"gri", "ungc", "sasb"},
	},
}

// Related returns how a framework relates to the others along with its
// implementation guidance. The boolean is false when the framework does not exist.
func (s *Service) Related(id string) (types.FrameworkRelations, bool) {
	f, ok := s.data.Framework(id)
	if !ok {
		return types.FrameworkRelations{}, false
	}

	rel := relationships[id]
	return types.FrameworkRelations{
		Framework:    f,
		Complements:  s.resolve(rel.complements),
		Overlaps:     s.resolve(rel.overlaps),
		Alternatives: s.resolve(rel.alternatives),
		Implementation: types.ImplementationGuide{
			Difficulty: s.comparisonValue(comparisonDifficulty, id),
			TimeMonths: s.comparisonValue(comparisonTime, id),
			Cost:       s.comparisonValue(comparisonCost, id),
		},
	}, true
}

// resolve maps IDs to frameworks, skipping IDs not in the dataset.
func (s *Service) resolve(ids []string) []types.Framework {
	out := make([]types.Framework, 0, len(ids))
	for _, id := range ids {
		if f, ok := s.data.Framework(id); ok {
			out = append(out, f)
		}
	}
	return out
}

func (s *Service) comparisonValue(comparisonID, frameworkID string) string {
	c, ok := s.data.Comparison(comparisonID)
	if !ok {
		return unknownLevel
	}
	if v, ok := c.Values[frameworkID]; ok {
		return v
	}
	return unknownLevel
}
