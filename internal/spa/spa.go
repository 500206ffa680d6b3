// Package spa отдаёт собранный фронтенд и берёт на себя
// клиентский роутинг: любой неизвестный путь вне /api
// проваливается в index.html.
package spa

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const frontendMissingMessage = "Frontend not built yet. Run 'npm run build' in frontend directory."

// Fallback - NoRoute-обработчик gin
func Fallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api/") || path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"detail": "API endpoint not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}

		c.String(http.StatusNotFound, frontendMissingMessage)
	}
}
