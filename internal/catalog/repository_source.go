package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"skillpath/internal/domain/career"
	"skillpath/internal/repository"
)

// RepositorySource reads the catalog from the careers table.
type RepositorySource struct {
	repo repository.CareerRepository
}

func NewRepositorySource(repo repository.CareerRepository) *RepositorySource {
	return &RepositorySource{repo: repo}
}

func (s *RepositorySource) Load(ctx context.Context) (career.Catalog, error) {
	records, err := s.repo.ListCareers(ctx)
	if err != nil {
		return career.Catalog{}, fmt.Errorf("%w: list careers: %v", career.ErrCatalogUnavailable, err)
	}

	b, err := json.Marshal(records)
	if err != nil {
		return career.Catalog{}, fmt.Errorf("%w: fingerprint: %v", career.ErrCatalogUnavailable, err)
	}
	sum := sha256.Sum256(b)

	return career.Catalog{Version: hex.EncodeToString(sum[:]), Records: records}, nil
}
