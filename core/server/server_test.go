package server

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ships.json"), []byte(`[{"className":"AEGS_Avenger_Titan"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loader-20240101000000.log"), []byte("run log"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "missing_shops-20240101000000.log"), []byte("missing"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.json"), []byte("{}"), 0o644))

	app := New(Config{ApiKey: "secret", AllowOrigins: "*", CacheSeconds: 60}, dir, []string{"ships.json", "items.json"}, zap.NewNop())

	t.Run("Health is public", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
	})

	t.Run("Catalog requires key", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ships.json", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Catalog served", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ships.json", nil)
		req.Header.Set("X-API-Key", "secret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "AEGS_Avenger_Titan")
	})

	t.Run("Only listed files are served", func(t *testing.T) {
		for _, path := range []string{"/loader-20240101000000.log", "/missing_shops-20240101000000.log", "/scratch.json", "/", "/items.json"} {
			req := httptest.NewRequest("GET", path, nil)
			req.Header.Set("X-API-Key", "secret")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 404, resp.StatusCode, path)
		}
	})
}
