package db

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/esg-navigator/internal/types"
)

// -----------------------------------------------------------------------------
// Row types mirror the table columns. Nullable columns are pointers and JSON
// columns are raw bytes, decoded when converting to domain types.
// -----------------------------------------------------------------------------

type frameworkRow struct {
	ID                     string
	Name                   string
	FullName               string
	Description            string
	Category               string
	IsMandatory            *bool
	HasIndustrySpecificity *bool
	FocusAreas             []byte
	EstablishedYear        *int
	KeyFeatures            []byte
	TargetAudience         *string
	Website                *string
	BackgroundColor        *string
	IconColor              *string
}

type resourceRow struct {
	ID          string
	Title       string
	Description string
	Type        string
	Category    string
	FrameworkID *string
	FileType    *string
	PageCount   *int
	Duration    *string
	DownloadURL *string
	Tags        []byte
}

type questionRow struct {
	ID       string
	Question string
	Order    int
	Topic    *string
	Options  []byte
}

type comparisonRow struct {
	ID          string
	Feature     string
	Description *string
	Values      []byte
	Order       int
}

func (r *frameworkRow) toFramework() (types.Framework, error) {
	f := types.Framework{
		ID:                     r.ID,
		Name:                   r.Name,
		FullName:               r.FullName,
		Description:            r.Description,
		Category:               r.Category,
		IsMandatory:            deref(r.IsMandatory),
		HasIndustrySpecificity: deref(r.HasIndustrySpecificity),
		EstablishedYear:        deref(r.EstablishedYear),
		TargetAudience:         deref(r.TargetAudience),
		Website:                deref(r.Website),
		BackgroundColor:        deref(r.BackgroundColor),
		IconColor:              deref(r.IconColor),
	}
	if err := decodeColumn(r.FocusAreas, &f.FocusAreas, []string{}); err != nil {
		return f, fmt.Errorf("framework %s focus_areas: %w", r.ID, err)
	}
	if err := decodeColumn(r.KeyFeatures, &f.KeyFeatures, []string{}); err != nil {
		return f, fmt.Errorf("framework %s key_features: %w", r.ID, err)
	}
	return f, nil
}

func (r *resourceRow) toResource() (types.Resource, error) {
	res := types.Resource{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Category:    r.Category,
		FrameworkID: r.FrameworkID,
		FileType:    deref(r.FileType),
		PageCount:   r.PageCount,
		Duration:    r.Duration,
		DownloadURL: r.DownloadURL,
	}
	if err := decodeColumn(r.Tags, &res.Tags, []string{}); err != nil {
		return res, fmt.Errorf("resource %s tags: %w", r.ID, err)
	}
	return res, nil
}

func (r *questionRow) toQuestion() (types.SelectorQuestion, error) {
	q := types.SelectorQuestion{
		ID:       r.ID,
		Question: r.Question,
		Order:    r.Order,
		Topic:    deref(r.Topic),
	}
	if err := decodeColumn(r.Options, &q.Options, []types.SelectorOption{}); err != nil {
		return q, fmt.Errorf("selector question %s options: %w", r.ID, err)
	}
	return q, nil
}

func (r *comparisonRow) toComparison() (types.FrameworkComparison, error) {
	c := types.FrameworkComparison{
		ID:          r.ID,
		Feature:     r.Feature,
		Description: r.Description,
		Order:       r.Order,
	}
	if err := decodeColumn(r.Values, &c.Values, map[string]string{}); err != nil {
		return c, fmt.Errorf("framework comparison %s values: %w", r.ID, err)
	}
	return c, nil
}

// decodeColumn unmarshals a JSON column, using empty for NULL.
func decodeColumn[T any](raw []byte, target *T, empty T) error {
	if len(raw) == 0 || string(raw) == "null" {
		*target = empty
		return nil
	}
	return json.Unmarshal(raw, target)
}

// encodeColumn marshals a value for a JSON column, writing empty for nil.
func encodeColumn[T any](value T, isNil bool, empty string) ([]byte, error) {
	if isNil {
		return []byte(empty), nil
	}
	return json.Marshal(value)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
