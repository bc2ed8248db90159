package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skillpath/internal/app"
	"skillpath/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[
  {
    "career": "Data Scientist",
    "skills": ["python", "statistics"],
    "interests": ["data"],
    "description": "Turns data into decisions.",
    "roadmap": ["Learn Python", "Study statistics"],
    "resources": ["https://example.com/ds"]
  },
  {
    "career": "Web Developer",
    "skills": ["javascript", "html"],
    "interests": ["design"],
    "description": "Builds websites.",
    "roadmap": ["HTML", "CSS", "JavaScript"],
    "resources": []
  },
  {
    "career": "Backend Engineer",
    "skills": ["go", "sql"],
    "interests": ["systems"],
    "description": "Builds services.",
    "roadmap": [],
    "resources": []
  },
  {
    "career": "Platform Engineer",
    "skills": ["go"],
    "interests": ["systems", "sql"],
    "description": "Builds platforms.",
    "roadmap": [],
    "resources": []
  }
]`

func testConfig(t *testing.T, catalogPath, mode string) config.Config {
	t.Helper()
	return config.Config{
		App:     config.AppConfig{AppName: "SkillPath API", Environment: "test", HTTPPort: "0"},
		Catalog: config.CatalogConfig{Source: config.CatalogSourceFile, Path: catalogPath, Mode: mode},
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "careers.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func bootstrap(t *testing.T, cfg config.Config) *fiber.App {
	t.Helper()
	a, cleanup, err := app.Bootstrap(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })
	return a.Fiber
}

func call(t *testing.T, f *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := f.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}

func TestIntegration_Recommend(t *testing.T) {
	for _, mode := range []string{config.CatalogModePerRequest, config.CatalogModeCached} {
		t.Run(mode, func(t *testing.T) {
			f := bootstrap(t, testConfig(t, writeFile(t, catalogJSON), mode))

			status, body := call(t, f, http.MethodGet, "/", "")
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, "SkillPath API is working 🚀", body["message"])

			status, body = call(t, f, http.MethodPost, "/recommend", `{"skills": ["Python"], "interests": ["data"]}`)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, "Data Scientist", body["career"])
			assert.Equal(t, []any{"Learn Python", "Study statistics"}, body["roadmap"])

			status, body = call(t, f, http.MethodPost, "/recommend", `{"skills": [], "interests": []}`)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, "No matching career found. Try different skills or interests.", body["message"])

			status, body = call(t, f, http.MethodPost, "/recommend", `{"skills": ["go", "sql"], "interests": ["systems", "sql"]}`)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, "Backend Engineer", body["career"])

			status, _ = call(t, f, http.MethodPost, "/recommend", `{"skills": ["go"]}`)
			assert.Equal(t, http.StatusUnprocessableEntity, status)
		})
	}
}

func TestIntegration_PerRequestSeesFileChanges(t *testing.T) {
	path := writeFile(t, catalogJSON)
	f := bootstrap(t, testConfig(t, path, config.CatalogModePerRequest))

	require.NoError(t, os.Remove(path))
	status, body := call(t, f, http.MethodPost, "/recommend", `{"skills": ["go"], "interests": []}`)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body["message"])
}

func TestIntegration_CachedKeepsServingAfterFileRemoval(t *testing.T) {
	path := writeFile(t, catalogJSON)
	f := bootstrap(t, testConfig(t, path, config.CatalogModeCached))

	require.NoError(t, os.Remove(path))
	status, body := call(t, f, http.MethodPost, "/recommend", `{"skills": ["html"], "interests": []}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Web Developer", body["career"])
}

func TestIntegration_CachedModeFailsFastOnBadCatalog(t *testing.T) {
	_, _, err := app.Bootstrap(testConfig(t, filepath.Join(t.TempDir(), "missing.json"), config.CatalogModeCached))
	require.Error(t, err)
}

func TestIntegration_InvalidEntryIsServerError(t *testing.T) {
	path := writeFile(t, `[{"career": "Broken", "skills": []}]`)
	f := bootstrap(t, testConfig(t, path, config.CatalogModePerRequest))

	status, _ := call(t, f, http.MethodPost, "/recommend", `{"skills": ["go"], "interests": []}`)
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestIntegration_CORS(t *testing.T) {
	f := bootstrap(t, testConfig(t, writeFile(t, catalogJSON), config.CatalogModePerRequest))

	req := httptest.NewRequest(http.MethodOptions, "/recommend", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Custom")

	resp, err := f.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestIntegration_RequestIDAndNotFound(t *testing.T) {
	f := bootstrap(t, testConfig(t, writeFile(t, catalogJSON), config.CatalogModePerRequest))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := f.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}
