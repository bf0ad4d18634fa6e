package main

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alyradwan/portfolio/internal/portfolio"
)

var contentTypes = map[string]string{
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript",
	".wasm": "application/wasm",
}

// fallback handles every request no route matched: unknown API paths get
// a JSON 404, files under the web root are served, and anything else gets
// the main page.
func (s *server) fallback(c *gin.Context) {
	p := c.Request.URL.Path
	if p == "/api" || strings.HasPrefix(p, "/api/") {
		s.fail(c, http.StatusNotFound, "API endpoint not found", nil)
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		s.fail(c, http.StatusNotFound, "Not found", nil)
		return
	}
	if file, ok := s.staticFile(p); ok {
		if ct, ok := contentTypes[strings.ToLower(filepath.Ext(file))]; ok {
			c.Header("Content-Type", ct)
		}
		c.File(file)
		return
	}
	s.index(c)
}

// staticFile maps a URL path onto a regular file under the web root.
func (s *server) staticFile(urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	if clean == "/" {
		return "", false
	}
	name := filepath.Join(s.cfg.WebRoot, filepath.FromSlash(clean))
	info, err := os.Stat(name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return name, true
}

func (s *server) index(c *gin.Context) {
	groups := make([]skillGroup, 0, len(portfolio.SkillCategories))
	for _, category := range portfolio.SkillCategories {
		if list, ok := s.catalog.SkillsIn(category); ok {
			groups = append(groups, skillGroup{Title: category.Title(), Skills: list})
		}
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Cards":  s.cards,
		"Skills": groups,
		"Stats":  s.catalog.Stats(),
		"Year":   time.Now().Year(),
	})
}
