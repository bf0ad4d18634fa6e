package page

import (
	"errors"
	"fmt"

	"github.com/alyradwan/portfolio/internal/portfolio"
)

// Controller owns the page's UI bindings for the lifetime of one page
// load. Every element field is optional.
type Controller struct {
	Projects []portfolio.Project

	Grid    Content
	Navbar  Styler
	Hero    Styler
	Menu    *Menu
	Nav     *Highlighter
	Typing  *Typewriter
	Contact *ContactForm
}

// RenderProjects replaces the grid's content with one card per project.
// Calling it again produces the same markup.
func (c *Controller) RenderProjects() error {
	if c.Grid == nil {
		return nil
	}
	html, err := Cards(c.Projects)
	if err != nil {
		return err
	}
	c.Grid.SetHTML(html)
	return nil
}

// Init runs the page-load sequence.
func (c *Controller) Init(v Viewport, fadeIns []Revealer) error {
	if err := c.RenderProjects(); err != nil {
		return err
	}
	if c.Typing != nil {
		if err := c.Typing.Start(); err != nil && !errors.Is(err, ErrAlreadyStarted) {
			return fmt.Errorf("start typing: %w", err)
		}
	}
	RevealVisible(fadeIns, v.Height)
	c.Nav.ActivateFirst()
	return nil
}

// Scroll applies every scroll-driven effect for the current viewport.
func (c *Controller) Scroll(v Viewport, sections []Section, fadeIns []Revealer) {
	NavbarStyleAt(v.ScrollY).Apply(c.Navbar)
	c.Nav.Update(sections, v.ScrollY)
	RevealVisible(fadeIns, v.Height)
	if c.Hero != nil {
		c.Hero.SetStyle("transform", ParallaxTransform(v.ScrollY))
	}
}

// Resize closes the mobile menu when the viewport widens past the
// breakpoint.
func (c *Controller) Resize(v Viewport) {
	c.Menu.Resize(v.Width)
}

// FollowLink handles a click on a nav link: it closes the mobile menu and
// returns where to scroll for a section at sectionTop.
func (c *Controller) FollowLink(sectionTop float64) float64 {
	c.Menu.Close()
	return ScrollTarget(sectionTop)
}

// SubmitContact forwards a form submission to the simulated sender.
func (c *Controller) SubmitContact() bool {
	if c.Contact == nil {
		return false
	}
	return c.Contact.Submit()
}
