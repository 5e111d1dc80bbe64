package types

import (
	"github.com/go-playground/validator/v10"
)

// SelectorOption is one selectable answer of a quiz question.
type SelectorOption struct {
	Value       string `json:"value" validate:"required"`
	Label       string `json:"label" validate:"required"`
	Description string `json:"description"`
}

// SelectorQuestion is one step of the framework selector quiz.
type SelectorQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question" validate:"required"`
	Order    int    `json:"order"`
	// Topic is the answer key the recommendation rules read (e.g. "objective").
	Topic   string           `json:"topic,omitempty"`
	Options []SelectorOption `json:"options" validate:"dive"`
}

// Key returns the question ID.
func (q SelectorQuestion) Key() string { return q.ID }

// WithKey returns a copy of the question carrying the given ID.
func (q SelectorQuestion) WithKey(id string) SelectorQuestion {
	q.ID = id
	return q
}

// Validate validates the question and checks option values are unique.
func (q *SelectorQuestion) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return err
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt.Value] {
			return &DuplicateOptionError{QuestionID: q.ID, Value: opt.Value}
		}
		seen[opt.Value] = true
	}
	return nil
}

// DuplicateOptionError indicates two options of one question share a value.
type DuplicateOptionError struct {
	QuestionID string
	Value      string
}

func (e *DuplicateOptionError) Error() string {
	return "duplicate option value " + e.Value + " in question " + e.QuestionID
}

// FrameworkComparison is one feature row of the cross-framework comparison table.
type FrameworkComparison struct {
	ID          string            `json:"id"`
	Feature     string            `json:"feature" validate:"required"`
	Description *string           `json:"description"`
	Values      map[string]string `json:"values"` // framework ID -> level text
	Order       int               `json:"order"`
}

// Key returns the comparison ID.
func (c FrameworkComparison) Key() string { return c.ID }

// WithKey returns a copy of the comparison carrying the given ID.
func (c FrameworkComparison) WithKey(id string) FrameworkComparison {
	c.ID = id
	return c
}

// Validate validates the FrameworkComparison using the validator.
func (c *FrameworkComparison) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
