package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alyradwan/portfolio/internal/portfolio"
)

func TestController_RenderProjectsIdempotent(t *testing.T) {
	grid := &fakeContent{}
	c := &Controller{Projects: portfolio.DefaultProjects(), Grid: grid}

	require.NoError(t, c.RenderProjects())
	first := grid.html
	require.NoError(t, c.RenderProjects())

	assert.Equal(t, first, grid.html)
	assert.Equal(t, 2, grid.calls)
	assert.Equal(t, 6, strings.Count(string(grid.html), `class="project-card`))
}

func TestController_RenderProjectsEmpty(t *testing.T) {
	grid := &fakeContent{html: "<div class=\"project-card\">stale</div>"}
	c := &Controller{Grid: grid}

	require.NoError(t, c.RenderProjects())
	assert.NotContains(t, string(grid.html), "project-card")
}

func TestController_MissingElements(t *testing.T) {
	c := &Controller{Projects: portfolio.DefaultProjects()}

	assert.NoError(t, c.RenderProjects())
	assert.NoError(t, c.Init(Viewport{Height: 800}, nil))
	c.Scroll(Viewport{ScrollY: 400, Height: 800}, nil, nil)
	c.Resize(Viewport{Width: 1024})
	assert.Equal(t, 520.0, c.FollowLink(600))
	assert.False(t, c.SubmitContact())
}

func TestController_InitAndScroll(t *testing.T) {
	clock := &manualClock{}
	grid, navbar, hero := &fakeContent{}, &fakeStyler{}, &fakeStyler{}
	home, about := &fakeToggler{}, &fakeToggler{}
	hamburger := &fakeToggler{}
	sink := &fakeSink{}

	c := &Controller{
		Projects: portfolio.DefaultProjects(),
		Grid:     grid,
		Navbar:   navbar,
		Hero:     hero,
		Menu:     NewMenu(hamburger),
		Nav:      NewHighlighter([]NavLink{{Target: "home", Link: home}, {Target: "about", Link: about}}),
		Typing:   NewTypewriter(clock, sink, HeroLines, DefaultTyping),
	}

	above, below := &fakeRevealer{top: 100}, &fakeRevealer{top: 900}
	require.NoError(t, c.Init(Viewport{Height: 800}, []Revealer{above, below}))

	assert.NotEmpty(t, grid.html)
	assert.True(t, home.on)
	assert.True(t, above.revealed)
	assert.False(t, below.revealed)
	assert.Equal(t, TypingActive, c.Typing.State())

	sections := []Section{{ID: "home", Top: 0, Height: 600}, {ID: "about", Top: 600, Height: 600}}
	below.top = 300
	c.Scroll(Viewport{ScrollY: 700, Height: 800}, sections, []Revealer{above, below})

	assert.True(t, about.on)
	assert.False(t, home.on)
	assert.True(t, below.revealed)
	assert.Equal(t, "rgba(255, 255, 255, 0.98)", navbar.styles["background"])
	assert.Equal(t, "translateY(-350px)", hero.styles["transform"])

	c.Menu.Toggle()
	require.True(t, hamburger.on)
	c.FollowLink(700)
	assert.False(t, hamburger.on)

	// Page load runs once; a second Init leaves the typewriter alone.
	require.NoError(t, c.Init(Viewport{Height: 800}, nil))
}
