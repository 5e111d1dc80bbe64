package dataset

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/jonathan/esg-navigator/internal/schemas"
	"github.com/jonathan/esg-navigator/internal/types"
)

//go:embed seed/*.json
var seedFS embed.FS

// Seed builds a dataset from the embedded seed documents.
func Seed() (*Dataset, error) {
	sub, err := fs.Sub(seedFS, "seed")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded seed data: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS builds a dataset from the seed documents in fsys. The filesystem must
// contain frameworks.json, resources.json, selector_questions.json and
// comparisons.json at its root. Each document is checked against its JSON
// schema before any record is inserted.
func LoadFS(fsys fs.FS) (*Dataset, error) {
	var (
		frameworks  []types.Framework
		resources   []types.Resource
		questions   []types.SelectorQuestion
		comparisons []types.FrameworkComparison
	)

	docs := []struct {
		schema string
		target any
	}{
		{schemas.Frameworks, &frameworks},
		{schemas.Resources, &resources},
		{schemas.SelectorQuestions, &questions},
		{schemas.Comparisons, &comparisons},
	}
	for _, doc := range docs {
		if err := readDocument(fsys, doc.schema, doc.target); err != nil {
			return nil, err
		}
	}

	d := New()
	for _, f := range frameworks {
		if _, err := d.InsertFramework(f); err != nil {
			return nil, fmt.Errorf("failed to seed frameworks: %w", err)
		}
	}
	for _, r := range resources {
		if _, err := d.InsertResource(r); err != nil {
			return nil, fmt.Errorf("failed to seed resources: %w", err)
		}
	}
	for _, q := range questions {
		if _, err := d.InsertQuestion(q); err != nil {
			return nil, fmt.Errorf("failed to seed selector questions: %w", err)
		}
	}
	for _, c := range comparisons {
		if _, err := d.InsertComparison(c); err != nil {
			return nil, fmt.Errorf("failed to seed comparisons: %w", err)
		}
	}
	return d, nil
}

func readDocument(fsys fs.FS, name string, target any) error {
	path := name + ".json"
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read seed document %s: %w", path, err)
	}
	if err := schemas.Validate(name, data); err != nil {
		return fmt.Errorf("seed document %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse seed document %s: %w", path, err)
	}
	return nil
}
