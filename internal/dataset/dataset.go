// Package dataset holds the in-memory reference data: frameworks, resources,
// selector questions and comparison rows.
package dataset

import (
	"cmp"
	"fmt"

	"github.com/jonathan/esg-navigator/internal/collection"
	"github.com/jonathan/esg-navigator/internal/types"
)

// Record kinds
const (
	KindFramework  = "framework"
	KindResource   = "resource"
	KindQuestion   = "selector_question"
	KindComparison = "framework_comparison"
)

// ErrInvalidRecord indicates a record failed validation on insert.
type ErrInvalidRecord struct {
	Kind  string
	ID    string
	Cause error
}

func (e *ErrInvalidRecord) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid %s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("invalid %s %s: %v", e.Kind, e.ID, e.Cause)
}

func (e *ErrInvalidRecord) Unwrap() error {
	return e.Cause
}

// Dataset owns the four record collections. It is built once at process
// start and passed to the services that read it.
type Dataset struct {
	frameworks  *collection.Collection[types.Framework]
	resources   *collection.Collection[types.Resource]
	questions   *collection.Collection[types.SelectorQuestion]
	comparisons *collection.Collection[types.FrameworkComparison]
}

// New creates an empty dataset.
func New() *Dataset {
	return &Dataset{
		frameworks: collection.New[types.Framework](KindFramework),
		resources:  collection.New[types.Resource](KindResource),
		questions: collection.NewOrdered(KindQuestion, func(a, b types.SelectorQuestion) int {
			return cmp.Compare(a.Order, b.Order)
		}),
		comparisons: collection.NewOrdered(KindComparison, func(a, b types.FrameworkComparison) int {
			return cmp.Compare(a.Order, b.Order)
		}),
	}
}

// Framework returns the framework with the given ID.
func (d *Dataset) Framework(id string) (types.Framework, bool) {
	return d.frameworks.Get(id)
}

// Frameworks returns all frameworks in insertion order.
func (d *Dataset) Frameworks() []types.Framework {
	return d.frameworks.List()
}

// InsertFramework validates and stores a framework.
func (d *Dataset) InsertFramework(f types.Framework) (types.Framework, error) {
	if err := f.Validate(); err != nil {
		return types.Framework{}, &ErrInvalidRecord{Kind: KindFramework, ID: f.ID, Cause: err}
	}
	return d.frameworks.Insert(f)
}

// Resource returns the resource with the given ID.
func (d *Dataset) Resource(id string) (types.Resource, bool) {
	return d.resources.Get(id)
}

// Resources returns all resources in insertion order.
func (d *Dataset) Resources() []types.Resource {
	return d.resources.List()
}

// InsertResource validates and stores a resource.
func (d *Dataset) InsertResource(r types.Resource) (types.Resource, error) {
	if err := r.Validate(); err != nil {
		return types.Resource{}, &ErrInvalidRecord{Kind: KindResource, ID: r.ID, Cause: err}
	}
	return d.resources.Insert(r)
}

// Question returns the selector question with the given ID.
func (d *Dataset) Question(id string) (types.SelectorQuestion, bool) {
	return d.questions.Get(id)
}

// Questions returns all selector questions ascending by order.
func (d *Dataset) Questions() []types.SelectorQuestion {
	return d.questions.List()
}

// InsertQuestion validates and stores a selector question.
func (d *Dataset) InsertQuestion(q types.SelectorQuestion) (types.SelectorQuestion, error) {
	if err := q.Validate(); err != nil {
		return types.SelectorQuestion{}, &ErrInvalidRecord{Kind: KindQuestion, ID: q.ID, Cause: err}
	}
	return d.questions.Insert(q)
}

// Comparison returns the comparison row with the given ID.
func (d *Dataset) Comparison(id string) (types.FrameworkComparison, bool) {
	return d.comparisons.Get(id)
}

// Comparisons returns all comparison rows ascending by order.
func (d *Dataset) Comparisons() []types.FrameworkComparison {
	return d.comparisons.List()
}

// InsertComparison validates and stores a comparison row.
func (d *Dataset) InsertComparison(c types.FrameworkComparison) (types.FrameworkComparison, error) {
	if err := c.Validate(); err != nil {
		return types.FrameworkComparison{}, &ErrInvalidRecord{Kind: KindComparison, ID: c.ID, Cause: err}
	}
	return d.comparisons.Insert(c)
}

// Counts returns the number of records per kind.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		KindFramework:  d.frameworks.Len(),
		KindResource:   d.resources.Len(),
		KindQuestion:   d.questions.Len(),
		KindComparison: d.comparisons.Len(),
	}
}
