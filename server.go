package main

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alyradwan/portfolio/internal/page"
	"github.com/alyradwan/portfolio/internal/portfolio"
)

//go:embed templates/*.html
var templateFS embed.FS

// server owns everything a request may read. Nothing in it changes after
// newServer returns.
type server struct {
	cfg       Config
	catalog   *portfolio.Catalog
	mailer    Mailer // nil when mail is not configured
	hasher    *ipHasher
	templates *template.Template
	cards     template.HTML
	started   time.Time
	now       func() time.Time
}

type skillGroup struct {
	Title  string
	Skills []portfolio.Skill
}

func newServer(cfg Config, catalog *portfolio.Catalog, mailer Mailer) (*server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"lines": splitLines,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	cards, err := page.Cards(catalog.Projects(portfolio.Filter{}))
	if err != nil {
		return nil, err
	}
	hasher, err := newIPHasher()
	if err != nil {
		return nil, err
	}
	return &server{
		cfg:       cfg,
		catalog:   catalog,
		mailer:    mailer,
		hasher:    hasher,
		templates: tmpl,
		cards:     cards,
		started:   time.Now(),
		now:       time.Now,
	}, nil
}

func (s *server) routes() *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(s.templates)

	r.Use(requestID())
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(s.recovered))
	r.Use(securityHeaders())
	r.Use(cors.Default())

	api := r.Group("/api")
	api.GET("/projects", s.listProjects)
	api.GET("/projects/:id", s.getProject)
	api.GET("/skills", s.listSkills)
	api.GET("/stats", s.stats)
	api.GET("/health", s.health)
	api.POST("/contact", s.contact)

	r.NoRoute(s.fallback)
	return r
}

// fail writes the error envelope. The error detail is only exposed
// outside production.
func (s *server) fail(c *gin.Context, status int, message string, err error) {
	body := gin.H{"success": false, "message": message}
	if err != nil && !s.cfg.Production() {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}

func (s *server) recovered(c *gin.Context, recovered any) {
	log.Printf("Server error (request %s): %v", c.GetString(requestIDKey), recovered)
	detail := "Something went wrong"
	if !s.cfg.Production() {
		detail = fmt.Sprint(recovered)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Internal server error",
		"error":   detail,
	})
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
