package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"skillpath/internal/domain/career"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `[
  {
    "career": "Data Scientist",
    "skills": ["python", "statistics"],
    "interests": ["data"],
    "description": "Turns data into decisions.",
    "roadmap": ["Learn Python", {"step": "Statistics", "weeks": 4}],
    "resources": ["https://example.com/ds"]
  },
  {
    "career": "Web Developer",
    "skills": ["javascript", "html"],
    "interests": ["design"],
    "description": "Builds websites.",
    "roadmap": [],
    "resources": []
  }
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "careers.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestFileSource_Load(t *testing.T) {
	src, err := NewFileSource(writeCatalog(t, validCatalog))
	require.NoError(t, err)

	cat, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())
	assert.Equal(t, "Data Scientist", cat.Records[0].Name)
	assert.Equal(t, "Web Developer", cat.Records[1].Name)
	assert.Len(t, cat.Version, 64)
	assert.JSONEq(t, `["Learn Python", {"step": "Statistics", "weeks": 4}]`, string(cat.Records[0].Roadmap))
}

func TestFileSource_VersionTracksContent(t *testing.T) {
	a, err := NewFileSource(writeCatalog(t, validCatalog))
	require.NoError(t, err)
	b, err := NewFileSource(writeCatalog(t, `[]`))
	require.NoError(t, err)

	ca, err := a.Load(context.Background())
	require.NoError(t, err)
	cb, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, ca.Version, cb.Version)
	assert.Equal(t, 0, cb.Len())
}

func TestFileSource_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		content *string
	}{
		{name: "missing file"},
		{name: "invalid json", content: ptr(`[{"career": `)},
		{name: "empty file", content: ptr(``)},
		{name: "object instead of list", content: ptr(`{"career": "x"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.json")
			if tt.content != nil {
				path = writeCatalog(t, *tt.content)
			}
			src, err := NewFileSource(path)
			require.NoError(t, err)

			_, err = src.Load(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, career.ErrCatalogUnavailable), "got %v", err)
		})
	}
}

func TestFileSource_InvalidEntry(t *testing.T) {
	tests := []struct {
		name    string
		content string
		index   int
		field   string
	}{
		{
			name:    "missing interests",
			content: `[{"career": "A", "skills": [], "description": "", "roadmap": [], "resources": []}]`,
			index:   0,
			field:   "interests",
		},
		{
			name: "skills not a list",
			content: `[
				{"career": "A", "skills": [], "interests": [], "description": "", "roadmap": [], "resources": []},
				{"career": "B", "skills": "python", "interests": [], "description": "", "roadmap": [], "resources": []}
			]`,
			index: 1,
			field: "skills",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewFileSource(writeCatalog(t, tt.content))
			require.NoError(t, err)

			_, err = src.Load(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, career.ErrInvalidCatalogEntry), "got %v", err)

			var ee *career.EntryError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, tt.index, ee.Index)
			assert.Equal(t, tt.field, ee.Field)
		})
	}
}

func TestNewFileSource_EmptyPath(t *testing.T) {
	_, err := NewFileSource("  ")
	require.Error(t, err)
}

type countingSource struct {
	calls int
	cat   career.Catalog
	err   error
}

func (s *countingSource) Load(context.Context) (career.Catalog, error) {
	s.calls++
	return s.cat, s.err
}

func TestCached_LoadsOnce(t *testing.T) {
	src := &countingSource{cat: career.Catalog{Version: "v1", Records: []career.Record{{Name: "A"}, {Name: "B"}}}}

	c, err := NewCached(context.Background(), src)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		cat, err := c.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "v1", cat.Version)
		assert.Equal(t, 2, cat.Len())
	}
	assert.Equal(t, 1, src.calls)
}

func TestCached_CallersCannotMutateShared(t *testing.T) {
	src := &countingSource{cat: career.Catalog{Records: []career.Record{{
		Name:      "A",
		Skills:    []string{"python"},
		Interests: []string{"data"},
		Roadmap:   []byte(`["learn"]`),
		Resources: []byte(`["book"]`),
	}}}}
	c, err := NewCached(context.Background(), src)
	require.NoError(t, err)

	cat, err := c.Load(context.Background())
	require.NoError(t, err)
	cat.Records[0].Name = "changed"
	cat.Records[0].Skills[0] = "cobol"
	cat.Records[0].Interests[0] = "nothing"
	cat.Records[0].Roadmap[2] = 'Z'
	cat.Records[0].Resources[2] = 'Z'

	again, err := c.Load(context.Background())
	require.NoError(t, err)
	got := again.Records[0]
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, []string{"python"}, got.Skills)
	assert.Equal(t, []string{"data"}, got.Interests)
	assert.JSONEq(t, `["learn"]`, string(got.Roadmap))
	assert.JSONEq(t, `["book"]`, string(got.Resources))
}

func TestCached_InitialFailure(t *testing.T) {
	src := &countingSource{err: career.ErrCatalogUnavailable}
	_, err := NewCached(context.Background(), src)
	require.ErrorIs(t, err, career.ErrCatalogUnavailable)
}

func ptr(s string) *string { return &s }
