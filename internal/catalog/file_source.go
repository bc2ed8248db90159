package catalog

import (
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"skillpath/internal/domain/career"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/career_catalog.schema.json
var catalogSchema []byte

// FileSource reads a JSON catalog document from disk on every Load.
type FileSource struct {
	path   string
	schema *gojsonschema.Schema
}

func NewFileSource(path string) (*FileSource, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("catalog: empty file path")
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(catalogSchema))
	if err != nil {
		return nil, fmt.Errorf("catalog: compile schema: %w", err)
	}
	return &FileSource{path: path, schema: schema}, nil
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Load(ctx context.Context) (career.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return career.Catalog{}, fmt.Errorf("%w: %v", career.ErrCatalogUnavailable, err)
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		return career.Catalog{}, fmt.Errorf("%w: read %s: %v", career.ErrCatalogUnavailable, s.path, err)
	}
	return s.Parse(b)
}

// Parse validates a raw catalog document and decodes it in declaration order.
func (s *FileSource) Parse(b []byte) (career.Catalog, error) {
	res, err := s.schema.Validate(gojsonschema.NewBytesLoader(b))
	if err != nil {
		return career.Catalog{}, fmt.Errorf("%w: parse %s: %v", career.ErrCatalogUnavailable, s.path, err)
	}
	if !res.Valid() {
		return career.Catalog{}, schemaError(s.path, res.Errors())
	}

	var records []career.Record
	if err := json.Unmarshal(b, &records); err != nil {
		return career.Catalog{}, fmt.Errorf("%w: decode %s: %v", career.ErrCatalogUnavailable, s.path, err)
	}

	sum := sha256.Sum256(b)
	return career.Catalog{
		Version: hex.EncodeToString(sum[:]),
		Records: records,
	}, nil
}

// schemaError maps the first schema violation to an entry error. Violations
// at the document root mean the file is not a catalog at all.
func schemaError(path string, errs []gojsonschema.ResultError) error {
	if len(errs) == 0 {
		return fmt.Errorf("%w: %s: schema validation failed", career.ErrCatalogUnavailable, path)
	}

	first := errs[0]
	parts := strings.Split(first.Field(), ".")
	idx, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("%w: %s: %s", career.ErrCatalogUnavailable, path, first.Description())
	}

	field := strings.Join(parts[1:], ".")
	if prop, ok := first.Details()["property"].(string); ok && prop != "" {
		if field == "" {
			field = prop
		} else {
			field = field + "." + prop
		}
	}
	if field == "" {
		field = "(entry)"
	}
	return career.NewEntryError(idx, field, first.Description())
}
