package repository

import (
	"context"
	"encoding/json"

	"skillpath/internal/database"
	"skillpath/internal/domain/career"
)

type CareerRepository interface {
	ListCareers(ctx context.Context) ([]career.Record, error)
}

type PostgresCareerRepository struct {
	db database.DB
}

func NewPostgresCareerRepository(db database.DB) *PostgresCareerRepository {
	return &PostgresCareerRepository{db: db}
}

func (r *PostgresCareerRepository) ListCareers(ctx context.Context) ([]career.Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT career, description, skills, interests, roadmap, resources
		FROM careers
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]career.Record, 0)
	for rows.Next() {
		var (
			rec       career.Record
			roadmap   []byte
			resources []byte
		)
		if err := rows.Scan(&rec.Name, &rec.Description, &rec.Skills, &rec.Interests, &roadmap, &resources); err != nil {
			return nil, err
		}
		rec.Roadmap = json.RawMessage(roadmap)
		rec.Resources = json.RawMessage(resources)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
