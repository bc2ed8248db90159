package seeder

import (
	"context"
	"fmt"

	"skillpath/internal/database"
	"skillpath/internal/domain/career"
)

// CareersSeeder replaces the careers table with the given catalog, keeping
// declaration order in the position column.
type CareersSeeder struct {
	Catalog career.Catalog
}

func (CareersSeeder) Name() string { return "careers" }

func (s CareersSeeder) Run(ctx context.Context, db database.DB) error {
	for i, r := range s.Catalog.Records {
		if err := r.Validate(); err != nil {
			return career.AtIndex(err, i)
		}
	}

	if err := EnsureCareersTable(ctx, db); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM careers`); err != nil {
		return fmt.Errorf("clear careers: %w", err)
	}

	for i, r := range s.Catalog.Records {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO careers (position, career, description, skills, interests, roadmap, resources)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			i,
			r.Name,
			r.Description,
			r.Skills,
			r.Interests,
			rawOrNull(r.Roadmap),
			rawOrNull(r.Resources),
		)
		if err != nil {
			return fmt.Errorf("insert career %d (%s): %w", i, r.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func rawOrNull(b []byte) string {
	if len(b) == 0 {
		return "null"
	}
	return string(b)
}
