package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alyradwan/portfolio/internal/portfolio"
)

// GET /api/projects?category=&featured=true
func (s *server) listProjects(c *gin.Context) {
	projects := s.catalog.Projects(portfolio.Filter{
		Category:     c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
	})
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    projects,
		"count":   len(projects),
	})
}

// GET /api/projects/:id
func (s *server) getProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		s.fail(c, http.StatusNotFound, "Project not found", nil)
		return
	}
	project, err := s.catalog.Project(id)
	if errors.Is(err, portfolio.ErrProjectNotFound) {
		s.fail(c, http.StatusNotFound, "Project not found", nil)
		return
	}
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Error fetching project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": project})
}

// GET /api/skills?category=
// An unrecognized category is answered with every skill.
func (s *server) listSkills(c *gin.Context) {
	if category, ok := portfolio.ParseSkillCategory(c.Query("category")); ok {
		if list, ok := s.catalog.SkillsIn(category); ok {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": s.catalog.Skills()})
}

func (s *server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": s.catalog.Stats()})
}

func (s *server) health(c *gin.Context) {
	now := s.now()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Portfolio API is running",
		"timestamp": now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		"uptime":    now.Sub(s.started).Seconds(),
	})
}
