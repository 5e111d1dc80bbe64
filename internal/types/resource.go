package types

import (
	"github.com/go-playground/validator/v10"
)

// Resource types
const (
	ResourceTypeGuide     = "guide"
	ResourceTypeTemplate  = "template"
	ResourceTypeCaseStudy = "case-study"
)

// Resource is a downloadable or reference artifact, optionally tied to one framework.
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=guide template case-study"`
	Category    string   `json:"category" validate:"required"`
	FrameworkID *string  `json:"frameworkId"` // nil means framework-agnostic
	FileType    string   `json:"fileType"`    // "pdf", "excel", "video", "interactive"
	PageCount   *int     `json:"pageCount" validate:"omitempty,gt=0"`
	Duration    *string  `json:"duration"`
	DownloadURL *string  `json:"downloadUrl"`
	Tags        []string `json:"tags"`
}

// Key returns the resource ID.
func (r Resource) Key() string { return r.ID }

// WithKey returns a copy of the resource carrying the given ID.
func (r Resource) WithKey(id string) Resource {
	r.ID = id
	return r
}

// Validate validates the Resource using the validator.
func (r *Resource) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BelongsTo reports whether the resource is tied to the given framework.
// Framework-agnostic resources never belong to any framework.
func (r *Resource) BelongsTo(frameworkID string) bool {
	return r.FrameworkID != nil && *r.FrameworkID == frameworkID
}

// ResourceFilter narrows a resource listing. Empty fields do not filter.
type ResourceFilter struct {
	Type        string
	FrameworkID string
}

// SearchResults is the result of a free-text search across frameworks and resources.
type SearchResults struct {
	Frameworks []Framework `json:"frameworks"`
	Resources  []Resource  `json:"resources"`
}
