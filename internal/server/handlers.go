package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/esg-navigator/internal/recommend"
	"github.com/jonathan/esg-navigator/internal/types"
)

// maxRecommendBody caps the recommendation request body.
const maxRecommendBody = 64 << 10

// handleListFrameworks lists frameworks, optionally filtered by
// category, mandatory, focusArea and year.
func (s *Server) handleListFrameworks(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFrameworkFilter(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if filter.IsEmpty() {
		s.jsonResponse(w, http.StatusOK, s.catalog.ListFrameworks())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.catalog.FilterFrameworks(filter))
}

// parseFrameworkFilter reads the framework filter from the query string.
func parseFrameworkFilter(r *http.Request) (types.FrameworkFilter, error) {
	q := r.URL.Query()
	filter := types.FrameworkFilter{
		Category:  q.Get("category"),
		FocusArea: q.Get("focusArea"),
	}

	if filter.Category != "" && !slices.Contains(types.FrameworkCategories, filter.Category) {
		return filter, &ErrValidation{Field: "category", Message: fmt.Sprintf("Unknown category: %s", filter.Category)}
	}

	if v := q.Get("mandatory"); v != "" {
		mandatory, err := strconv.ParseBool(v)
		if err != nil {
			return filter, &ErrValidation{Field: "mandatory", Message: "mandatory must be true or false"}
		}
		filter.Mandatory = &mandatory
	}

	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil || year <= 0 {
			return filter, &ErrValidation{Field: "year", Message: "year must be a positive integer"}
		}
		filter.Year = year
	}

	return filter, nil
}

// handleFrameworkStats returns summary statistics for the framework collection
func (s *Server) handleFrameworkStats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog.Stats())
}

// handleGetFramework retrieves a framework by ID
func (s *Server) handleGetFramework(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	framework, ok := s.catalog.GetFramework(id)
	if !ok {
		s.writeError(w, &ErrNotFound{Kind: "Framework", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, framework)
}

// handleRelatedFrameworks returns complementary, overlapping and alternative frameworks
func (s *Server) handleRelatedFrameworks(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	relations, ok := s.catalog.Related(id)
	if !ok {
		s.writeError(w, &ErrNotFound{Kind: "Framework", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, relations)
}

// handleFrameworkResources lists the resources tied to a framework
func (s *Server) handleFrameworkResources(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	resources, ok := s.catalog.ResourcesForFramework(id)
	if !ok {
		s.writeError(w, &ErrNotFound{Kind: "Framework", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, resources)
}

// handleListResources lists resources, optionally filtered by type and frameworkId
func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.jsonResponse(w, http.StatusOK, s.catalog.ListResources(types.ResourceFilter{
		Type:        q.Get("type"),
		FrameworkID: q.Get("frameworkId"),
	}))
}

// handleSelectorQuestions returns the quiz questions in display order
func (s *Server) handleSelectorQuestions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog.ListSelectorQuestions())
}

// handleComparisons returns the comparison matrix rows in display order
func (s *Server) handleComparisons(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog.ListComparisons())
}

// handleRecommend scores every framework against the submitted answers.
// Answers may be keyed by topic ("objective") or by question ID ("q1").
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRecommendBody))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, &ErrValidation{Field: "answers", Message: "answers is required"})
		return
	}

	questions := s.catalog.ListSelectorQuestions()
	answers := recommend.NormalizeAnswers(req.Answers, questions)
	recommendations := s.scorer.Recommend(s.catalog.ListFrameworks(), answers)

	s.metrics.RecordRecommendation(objectiveLabel(answers, questions))
	s.jsonResponse(w, http.StatusOK, recommendations)
}

// objectiveLabel bounds the metric label to the offered objective values.
func objectiveLabel(answers types.Answers, questions []types.SelectorQuestion) string {
	objective := answers.Get(recommend.KeyObjective)
	if objective == "" {
		return "none"
	}
	for _, q := range questions {
		if q.Topic != recommend.KeyObjective {
			continue
		}
		for _, opt := range q.Options {
			if opt.Value == objective {
				return objective
			}
		}
	}
	return "other"
}

// handleSearch runs a case-insensitive search over frameworks and resources
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		s.writeError(w, &ErrValidation{Field: "q", Message: "Search query is required"})
		return
	}
	if utf8.RuneCountInString(query) < s.minQueryLength {
		s.writeError(w, &ErrValidation{
			Field:   "q",
			Message: fmt.Sprintf("Search query must be at least %d characters", s.minQueryLength),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, s.catalog.Search(query))
}

