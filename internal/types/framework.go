// Package types provides type definitions for the reference data served by the ESG framework navigator.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Framework categories. Every seeded framework belongs to exactly one.
const (
	CategoryUniversal        = "Universal"
	CategoryEUMandatory      = "EU Mandatory"
	CategoryIndustrySpecific = "Industry-Specific"
	CategoryNatureFocused    = "Nature-Focused"
	CategoryPrinciplesBased  = "Principles-Based"
	CategoryValueCreation    = "Value Creation"
)

// FrameworkCategories lists the categories in presentation order.
var FrameworkCategories = []string{
	CategoryUniversal,
	CategoryEUMandatory,
	CategoryIndustrySpecific,
	CategoryNatureFocused,
	CategoryPrinciplesBased,
	CategoryValueCreation,
}

// Framework is an ESG reporting standard with descriptive and categorical metadata.
type Framework struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name" validate:"required"`
	FullName               string   `json:"fullName" validate:"required"`
	Description            string   `json:"description" validate:"required"`
	Category               string   `json:"category" validate:"required,oneof='Universal' 'EU Mandatory' 'Industry-Specific' 'Nature-Focused' 'Principles-Based' 'Value Creation'"`
	IsMandatory            bool     `json:"isMandatory"`
	HasIndustrySpecificity bool     `json:"hasIndustrySpecificity"`
	FocusAreas             []string `json:"focusAreas"`
	EstablishedYear        int      `json:"establishedYear" validate:"gte=0"`
	KeyFeatures            []string `json:"keyFeatures"`
	TargetAudience         string   `json:"targetAudience"`
	Website                string   `json:"website" validate:"omitempty,url"`

	// Presentation hints, passed through untouched.
	BackgroundColor string `json:"backgroundColor"`
	IconColor       string `json:"iconColor"`
}

// Key returns the framework ID.
func (f Framework) Key() string { return f.ID }

// WithKey returns a copy of the framework carrying the given ID.
func (f Framework) WithKey(id string) Framework {
	f.ID = id
	return f
}

// Validate validates the Framework using the validator.
func (f *Framework) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// HasFocusArea reports whether the framework lists the focus area (exact match).
func (f *Framework) HasFocusArea(area string) bool {
	for _, a := range f.FocusAreas {
		if a == area {
			return true
		}
	}
	return false
}

// FrameworkFilter narrows a framework listing. Zero-valued fields do not filter.
type FrameworkFilter struct {
	Category  string
	Mandatory *bool
	FocusArea string
	Year      int
}

// IsEmpty reports whether the filter has no criteria set.
func (f FrameworkFilter) IsEmpty() bool {
	return f.Category == "" && f.Mandatory == nil && f.FocusArea == "" && f.Year == 0
}

// FrameworkStats summarizes the framework collection.
type FrameworkStats struct {
	Total                   int `json:"total"`
	Mandatory               int `json:"mandatory"`
	Voluntary               int `json:"voluntary"`
	WithIndustrySpecificity int `json:"withIndustrySpecificity"`
	Categories              int `json:"categories"`
	AverageYear             int `json:"averageYear"`
}

// ImplementationGuide holds rough effort estimates for adopting a framework.
type ImplementationGuide struct {
	Difficulty string `json:"difficulty"`
	TimeMonths string `json:"timeMonths"`
	Cost       string `json:"cost"`
}

// FrameworkRelations describes how a framework relates to the others.
type FrameworkRelations struct {
	Framework      Framework           `json:"framework"`
	Complements    []Framework         `json:"complements"`
	Overlaps       []Framework         `json:"overlaps"`
	Alternatives   []Framework         `json:"alternatives"`
	Implementation ImplementationGuide `json:"implementation"`
}
