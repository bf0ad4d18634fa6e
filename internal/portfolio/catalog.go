package portfolio

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrProjectNotFound is returned when no project has the requested id.
var ErrProjectNotFound = errors.New("project not found")

// Catalog is an immutable view over the site's projects and skills.
// It is safe for concurrent use.
type Catalog struct {
	projects []Project
	skills   map[SkillCategory][]Skill
}

// Filter narrows a project listing. The zero value matches everything.
type Filter struct {
	Category     string
	FeaturedOnly bool
}

// NewCatalog copies projects and skills into a new catalog. Project ids
// must be unique, skill levels must be within 0..100 and every skill
// category must be a known one.
func NewCatalog(projects []Project, skills map[SkillCategory][]Skill) (*Catalog, error) {
	seen := make(map[int]bool, len(projects))
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		skills:   make(map[SkillCategory][]Skill, len(skills)),
	}
	for _, p := range projects {
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
		p.Technologies = slices.Clone(p.Technologies)
		c.projects = append(c.projects, p)
	}
	for category, list := range skills {
		if _, ok := ParseSkillCategory(string(category)); !ok {
			return nil, fmt.Errorf("unknown skill category %q", category)
		}
		for _, s := range list {
			if s.Level < 0 || s.Level > 100 {
				return nil, fmt.Errorf("skill %q: level %d out of range", s.Name, s.Level)
			}
		}
		c.skills[category] = slices.Clone(list)
	}
	return c, nil
}

// DefaultCatalog builds the catalog from the built-in dataset.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultProjects(), DefaultSkills())
	if err != nil {
		panic("portfolio: invalid default dataset: " + err.Error())
	}
	return c
}

// Projects returns the projects matching f in catalog order.
func (c *Catalog) Projects(f Filter) []Project {
	out := make([]Project, 0, len(c.projects))
	for _, p := range c.projects {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.FeaturedOnly && !p.Featured {
			continue
		}
		out = append(out, clone(p))
	}
	return out
}

// Project looks up a single project by id.
func (c *Catalog) Project(id int) (Project, error) {
	for _, p := range c.projects {
		if p.ID == id {
			return clone(p), nil
		}
	}
	return Project{}, fmt.Errorf("id %d: %w", id, ErrProjectNotFound)
}

// Skills returns every skill keyed by category.
func (c *Catalog) Skills() map[SkillCategory][]Skill {
	out := make(map[SkillCategory][]Skill, len(c.skills))
	for k, v := range c.skills {
		out[k] = slices.Clone(v)
	}
	return out
}

// SkillsIn returns the skills of one category. ok is false when the
// catalog has no entry for it.
func (c *Catalog) SkillsIn(category SkillCategory) ([]Skill, bool) {
	list, ok := c.skills[category]
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// Stats computes aggregate counts. Categories keep first-seen order.
func (c *Catalog) Stats() Stats {
	st := Stats{
		TotalProjects: len(c.projects),
		Categories:    []string{},
	}
	techs := make(map[string]struct{})
	for _, p := range c.projects {
		if p.Featured {
			st.FeaturedProjects++
		}
		if !slices.Contains(st.Categories, p.Category) {
			st.Categories = append(st.Categories, p.Category)
		}
		for _, t := range p.Technologies {
			techs[t] = struct{}{}
		}
	}
	st.TotalTechnologies = len(techs)
	for _, list := range c.skills {
		st.SkillsCount += len(list)
	}
	return st
}

func clone(p Project) Project {
	p.Technologies = slices.Clone(p.Technologies)
	return p
}
