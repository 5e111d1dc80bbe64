package types

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

// AnswerValue holds the option value(s) chosen for one question.
// It decodes from either a JSON string or a JSON array of strings.
type AnswerValue []string

// UnmarshalJSON accepts "value" or ["value", ...]. null leaves v unset.
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*v = AnswerValue{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("answer must be a string or an array of strings")
	}
	*v = many
	return nil
}

// MarshalJSON encodes a single value as a plain string.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if len(v) == 1 {
		return json.Marshal(v[0])
	}
	return json.Marshal([]string(v))
}

// Answers maps an answer key (question ID or topic) to the chosen value(s).
type Answers map[string]AnswerValue

// Get returns the first value recorded for key, or "".
func (a Answers) Get(key string) string {
	if vals := a[key]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// Is reports whether the answer for key is exactly value.
func (a Answers) Is(key, value string) bool {
	return a.Get(key) == value
}

// Includes reports whether any value recorded for key equals value.
func (a Answers) Includes(key, value string) bool {
	return slices.Contains(a[key], value)
}

// RecommendRequest is the body of a recommendation request.
type RecommendRequest struct {
	Answers Answers `json:"answers" validate:"required"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Recommendation is one ranked framework fit.
type Recommendation struct {
	Framework Framework `json:"framework"`
	Score     int       `json:"score"`
	Reasons   []string  `json:"reasons"`
}
