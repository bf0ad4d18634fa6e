// Package portfolio holds the project and skill records shown on the site
// and the read-only catalog the HTTP service and the page controller share.
package portfolio

import "strings"

// Project is one portfolio entry.
type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
	LiveURL      string   `json:"liveUrl"`
	GitHubURL    string   `json:"githubUrl"`
	Featured     bool     `json:"featured"`
	Category     string   `json:"category"`
}

// Skill is one skill with a proficiency level in percent.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Icon  string `json:"icon"`
}

// SkillCategory groups skills. Only the values below are valid.
type SkillCategory string

const (
	SkillsFrontend SkillCategory = "frontend"
	SkillsBackend  SkillCategory = "backend"
	SkillsTools    SkillCategory = "tools"
)

// SkillCategories lists every category in display order.
var SkillCategories = []SkillCategory{SkillsFrontend, SkillsBackend, SkillsTools}

// ParseSkillCategory maps a query value onto a known category.
func ParseSkillCategory(s string) (SkillCategory, bool) {
	c := SkillCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SkillCategories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Title returns the heading used for the category on the page.
func (c SkillCategory) Title() string {
	switch c {
	case SkillsFrontend:
		return "Frontend"
	case SkillsBackend:
		return "Backend"
	case SkillsTools:
		return "Tools & Technologies"
	}
	return string(c)
}

// Stats aggregates counts over the catalog.
type Stats struct {
	TotalProjects     int      `json:"totalProjects"`
	FeaturedProjects  int      `json:"featuredProjects"`
	Categories        []string `json:"categories"`
	TotalTechnologies int      `json:"totalTechnologies"`
	SkillsCount       int      `json:"skillsCount"`
}
