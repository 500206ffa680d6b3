package spa

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(staticDir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.NoRoute(Fallback(staticDir))
	return router
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestFallback_UnknownAPIRoute(t *testing.T) {
	router := newTestRouter(t.TempDir())

	w := doGet(router, "/api/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "API endpoint not found"}`, w.Body.String())
}

func TestFallback_ServesStaticFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	router := newTestRouter(dir)

	w := doGet(router, "/app.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())
}

func TestFallback_ClientRouteFallsBackToIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))

	router := newTestRouter(dir)

	// Клиентский роут SPA, файла с таким именем нет
	w := doGet(router, "/vacancies/123")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>app</html>", w.Body.String())
}

func TestFallback_FrontendMissing(t *testing.T) {
	router := newTestRouter(t.TempDir())

	w := doGet(router, "/")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Frontend not built yet")
}

func TestFallback_PathTraversalStaysInsideStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))

	router := newTestRouter(dir)

	w := doGet(router, "/../../etc/passwd")
	// Путь нормализуется внутрь каталога и проваливается в index.html
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>app</html>", w.Body.String())
}
