package catalog

import (
	"testing"

	"github.com/jonathan/esg-navigator/internal/dataset"
	"github.com/jonathan/esg-navigator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService(t *testing.T) *Service {
	t.Helper()
	d, err := dataset.Seed()
	require.NoError(t, err)
	return New(d)
}

func frameworkIDs(frameworks []types.Framework) []string {
	ids := make([]string, 0, len(frameworks))
	for _, f := range frameworks {
		ids = append(ids, f.ID)
	}
	return ids
}

func resourceIDs(resources []types.Resource) []string {
	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestGetFramework_RoundTrip(t *testing.T) {
	s := newSeededService(t)

	for _, f := range s.ListFrameworks() {
		got, ok := s.GetFramework(f.ID)
		require.True(t, ok, "framework %s should be found", f.ID)
		assert.Equal(t, f.ID, got.ID)
	}
}

func TestGetFramework_Unknown(t *testing.T) {
	s := newSeededService(t)

	_, ok := s.GetFramework("nonexistent")
	assert.False(t, ok)
}

func TestFilterFrameworks(t *testing.T) {
	s := newSeededService(t)
	yes, no := true, false

	tests := []struct {
		name   string
		filter types.FrameworkFilter
		want   []string
	}{
		{"empty filter", types.FrameworkFilter{}, []string{"gri", "esrs", "sasb", "tnfd", "ungc", "ir"}},
		{"category", types.FrameworkFilter{Category: types.CategoryNatureFocused}, []string{"tnfd"}},
		{"mandatory", types.FrameworkFilter{Mandatory: &yes}, []string{"esrs"}},
		{"voluntary", types.FrameworkFilter{Mandatory: &no}, []string{"gri", "sasb", "tnfd", "ungc", "ir"}},
		{"focus area", types.FrameworkFilter{FocusArea: "Human Capital"}, []string{"sasb", "ir"}},
		{"focus area is exact", types.FrameworkFilter{FocusArea: "human capital"}, []string{}},
		{"year", types.FrameworkFilter{Year: 2011}, []string{"sasb"}},
		{"combined", types.FrameworkFilter{Mandatory: &no, FocusArea: "Environment"}, []string{"sasb", "ungc"}},
		{"no match", types.FrameworkFilter{Category: types.CategoryUniversal, Year: 1900}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, frameworkIDs(s.FilterFrameworks(tt.filter)))
		})
	}
}

func TestListResources(t *testing.T) {
	s := newSeededService(t)

	tests := []struct {
		name   string
		filter types.ResourceFilter
		want   []string
	}{
		{
			name:   "no filter",
			filter: types.ResourceFilter{},
			want: []string{"gri-quick-start", "esrs-roadmap", "materiality-template",
				"sasb-industry-guide", "tnfd-leap-template", "esg-reporting-checklist"},
		},
		{
			name:   "by type",
			filter: types.ResourceFilter{Type: types.ResourceTypeGuide},
			want:   []string{"gri-quick-start", "esrs-roadmap", "sasb-industry-guide"},
		},
		{
			name:   "by framework",
			filter: types.ResourceFilter{FrameworkID: "sasb"},
			want:   []string{"sasb-industry-guide"},
		},
		{
			name:   "type and framework",
			filter: types.ResourceFilter{Type: types.ResourceTypeTemplate, FrameworkID: "tnfd"},
			want:   []string{"tnfd-leap-template"},
		},
		{
			name:   "no case studies seeded",
			filter: types.ResourceFilter{Type: types.ResourceTypeCaseStudy},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resourceIDs(s.ListResources(tt.filter)))
		})
	}
}

func TestListResources_TypeOnlyGuides(t *testing.T) {
	s := newSeededService(t)

	for _, r := range s.ListResources(types.ResourceFilter{Type: "guide"}) {
		assert.Equal(t, "guide", r.Type)
	}
}

func TestListResources_FrameworkExcludesAgnostic(t *testing.T) {
	s := newSeededService(t)

	for _, r := range s.ListResources(types.ResourceFilter{FrameworkID: "sasb"}) {
		require.NotNil(t, r.FrameworkID)
		assert.Equal(t, "sasb", *r.FrameworkID)
	}
}

func TestResourcesForFramework(t *testing.T) {
	s := newSeededService(t)

	resources, ok := s.ResourcesForFramework("esrs")
	require.True(t, ok)
	assert.Equal(t, []string{"esrs-roadmap"}, resourceIDs(resources))

	resources, ok = s.ResourcesForFramework("ungc")
	require.True(t, ok)
	assert.Empty(t, resources)

	_, ok = s.ResourcesForFramework("nonexistent")
	assert.False(t, ok)
}

func TestListSelectorQuestions_Ordered(t *testing.T) {
	s := newSeededService(t)

	questions := s.ListSelectorQuestions()
	require.NotEmpty(t, questions)
	for i := 1; i < len(questions); i++ {
		assert.LessOrEqual(t, questions[i-1].Order, questions[i].Order)
	}
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "objective", questions[0].Topic)
}

func TestListComparisons_Ordered(t *testing.T) {
	s := newSeededService(t)

	comparisons := s.ListComparisons()
	require.NotEmpty(t, comparisons)
	for i := 1; i < len(comparisons); i++ {
		assert.LessOrEqual(t, comparisons[i-1].Order, comparisons[i].Order)
	}
	assert.Equal(t, "mandatory-status", comparisons[0].ID)
}

func TestStats(t *testing.T) {
	s := newSeededService(t)

	stats := s.Stats()
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 1, stats.Mandatory)
	assert.Equal(t, 5, stats.Voluntary)
	assert.Equal(t, 3, stats.WithIndustrySpecificity)
	assert.Equal(t, 6, stats.Categories)
	// (1997+2023+2011+2021+2000+2010)/6 = 2010.33
	assert.Equal(t, 2010, stats.AverageYear)
}

func TestStats_Empty(t *testing.T) {
	s := New(dataset.New())

	assert.Equal(t, types.FrameworkStats{}, s.Stats())
}
