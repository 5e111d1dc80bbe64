package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/esg-navigator/internal/dataset"
	"github.com/jonathan/esg-navigator/internal/types"
	"golang.org/x/sync/errgroup"
)

// -----------------------------------------------------------------------------
// Dataset Methods
// -----------------------------------------------------------------------------

// LoadDataset reads every table concurrently and builds a validated Dataset.
// Records are inserted in a fixed order so listings are deterministic.
func (db *DB) LoadDataset(ctx context.Context) (*dataset.Dataset, error) {
	var (
		frameworks  []types.Framework
		resources   []types.Resource
		questions   []types.SelectorQuestion
		comparisons []types.FrameworkComparison
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		frameworks, err = db.listFrameworks(gCtx)
		return err
	})
	g.Go(func() (err error) {
		resources, err = db.listResources(gCtx)
		return err
	})
	g.Go(func() (err error) {
		questions, err = db.listQuestions(gCtx)
		return err
	})
	g.Go(func() (err error) {
		comparisons, err = db.listComparisons(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := dataset.New()
	for _, f := range frameworks {
		if _, err := d.InsertFramework(f); err != nil {
			return nil, err
		}
	}
	for _, r := range resources {
		if _, err := d.InsertResource(r); err != nil {
			return nil, err
		}
	}
	for _, q := range questions {
		if _, err := d.InsertQuestion(q); err != nil {
			return nil, err
		}
	}
	for _, c := range comparisons {
		if _, err := d.InsertComparison(c); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (db *DB) listFrameworks(ctx context.Context) ([]types.Framework, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, full_name, description, category, is_mandatory, has_industry_specificity,
		        focus_areas, established_year, key_features, target_audience, website,
		        background_color, icon_color
		 FROM frameworks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list frameworks: %w", err)
	}
	defer rows.Close()

	var out []types.Framework
	for rows.Next() {
		var r frameworkRow
		if err := rows.Scan(&r.ID, &r.Name, &r.FullName, &r.Description, &r.Category,
			&r.IsMandatory, &r.HasIndustrySpecificity, &r.FocusAreas, &r.EstablishedYear,
			&r.KeyFeatures, &r.TargetAudience, &r.Website, &r.BackgroundColor, &r.IconColor); err != nil {
			return nil, fmt.Errorf("failed to scan framework: %w", err)
		}
		f, err := r.toFramework()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate frameworks: %w", err)
	}
	return out, nil
}

func (db *DB) listResources(ctx context.Context) ([]types.Resource, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, type, category, framework_id, file_type,
		        page_count, duration, download_url, tags
		 FROM resources ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	var out []types.Resource
	for rows.Next() {
		var r resourceRow
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Type, &r.Category,
			&r.FrameworkID, &r.FileType, &r.PageCount, &r.Duration, &r.DownloadURL, &r.Tags); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		res, err := r.toResource()
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resources: %w", err)
	}
	return out, nil
}

func (db *DB) listQuestions(ctx context.Context) ([]types.SelectorQuestion, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, question, "order", topic, options
		 FROM selector_questions ORDER BY "order", id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list selector questions: %w", err)
	}
	defer rows.Close()

	var out []types.SelectorQuestion
	for rows.Next() {
		var r questionRow
		if err := rows.Scan(&r.ID, &r.Question, &r.Order, &r.Topic, &r.Options); err != nil {
			return nil, fmt.Errorf("failed to scan selector question: %w", err)
		}
		q, err := r.toQuestion()
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate selector questions: %w", err)
	}
	return out, nil
}

func (db *DB) listComparisons(ctx context.Context) ([]types.FrameworkComparison, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, feature, description, "values", "order"
		 FROM framework_comparisons ORDER BY "order", id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list framework comparisons: %w", err)
	}
	defer rows.Close()

	var out []types.FrameworkComparison
	for rows.Next() {
		var r comparisonRow
		if err := rows.Scan(&r.ID, &r.Feature, &r.Description, &r.Values, &r.Order); err != nil {
			return nil, fmt.Errorf("failed to scan framework comparison: %w", err)
		}
		c, err := r.toComparison()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate framework comparisons: %w", err)
	}
	return out, nil
}

// SeedDataset upserts every record of d in a single transaction.
func (db *DB) SeedDataset(ctx context.Context, d *dataset.Dataset) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, f := range d.Frameworks() {
		if err := upsertFramework(ctx, tx, &f); err != nil {
			return err
		}
	}
	for _, r := range d.Resources() {
		if err := upsertResource(ctx, tx, &r); err != nil {
			return err
		}
	}
	for _, q := range d.Questions() {
		if err := upsertQuestion(ctx, tx, &q); err != nil {
			return err
		}
	}
	for _, c := range d.Comparisons() {
		if err := upsertComparison(ctx, tx, &c); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

func upsertFramework(ctx context.Context, tx pgx.Tx, f *types.Framework) error {
	focusAreas, err := encodeColumn(f.FocusAreas, f.FocusAreas == nil, "[]")
	if err != nil {
		return fmt.Errorf("failed to marshal focus areas for %s: %w", f.ID, err)
	}
	keyFeatures, err := encodeColumn(f.KeyFeatures, f.KeyFeatures == nil, "[]")
	if err != nil {
		return fmt.Errorf("failed to marshal key features for %s: %w", f.ID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO frameworks (id, name, full_name, description, category, is_mandatory,
		                         has_industry_specificity, focus_areas, established_year, key_features,
		                         target_audience, website, background_color, icon_color)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 ON CONFLICT (id) DO UPDATE SET
		     name = $2, full_name = $3, description = $4, category = $5, is_mandatory = $6,
		     has_industry_specificity = $7, focus_areas = $8, established_year = $9, key_features = $10,
		     target_audience = $11, website = $12, background_color = $13, icon_color = $14`,
		f.ID, f.Name, f.FullName, f.Description, f.Category, f.IsMandatory,
		f.HasIndustrySpecificity, focusAreas, f.EstablishedYear, keyFeatures,
		nullIfEmpty(f.TargetAudience), nullIfEmpty(f.Website), nullIfEmpty(f.BackgroundColor), nullIfEmpty(f.IconColor),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert framework %s: %w", f.ID, err)
	}
	return nil
}

func upsertResource(ctx context.Context, tx pgx.Tx, r *types.Resource) error {
	tags, err := encodeColumn(r.Tags, r.Tags == nil, "[]")
	if err != nil {
		return fmt.Errorf("failed to marshal tags for %s: %w", r.ID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO resources (id, title, description, type, category, framework_id, file_type,
		                        page_count, duration, download_url, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (id) DO UPDATE SET
		     title = $2, description = $3, type = $4, category = $5, framework_id = $6, file_type = $7,
		     page_count = $8, duration = $9, download_url = $10, tags = $11`,
		r.ID, r.Title, r.Description, r.Type, r.Category, r.FrameworkID, nullIfEmpty(r.FileType),
		r.PageCount, r.Duration, r.DownloadURL, tags,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert resource %s: %w", r.ID, err)
	}
	return nil
}

func upsertQuestion(ctx context.Context, tx pgx.Tx, q *types.SelectorQuestion) error {
	options, err := encodeColumn(q.Options, q.Options == nil, "[]")
	if err != nil {
		return fmt.Errorf("failed to marshal options for %s: %w", q.ID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO selector_questions (id, question, "order", topic, options)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET question = $2, "order" = $3, topic = $4, options = $5`,
		q.ID, q.Question, q.Order, nullIfEmpty(q.Topic), options,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert selector question %s: %w", q.ID, err)
	}
	return nil
}

func upsertComparison(ctx context.Context, tx pgx.Tx, c *types.FrameworkComparison) error {
	values, err := encodeColumn(c.Values, c.Values == nil, "{}")
	if err != nil {
		return fmt.Errorf("failed to marshal values for %s: %w", c.ID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO framework_comparisons (id, feature, description, "values", "order")
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET feature = $2, description = $3, "values" = $4, "order" = $5`,
		c.ID, c.Feature, c.Description, values, c.Order,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert framework comparison %s: %w", c.ID, err)
	}
	return nil
}
