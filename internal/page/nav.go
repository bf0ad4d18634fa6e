package page

const (
	// HeaderHeight is the fixed navbar height subtracted from scroll targets.
	HeaderHeight = 80
	// ActiveLinkOffset is added to the scroll position when deciding which
	// section is in view.
	ActiveLinkOffset = 100
	// MobileBreakpoint is the widest viewport that keeps the mobile menu.
	MobileBreakpoint = 768
)

// Menu is the mobile navigation menu. Its parts (hamburger and link list)
// share one open state.
type Menu struct {
	open  bool
	parts []Toggler
}

// NewMenu returns a closed menu. Nil parts are skipped.
func NewMenu(parts ...Toggler) *Menu {
	m := &Menu{}
	for _, p := range parts {
		if p != nil {
			m.parts = append(m.parts, p)
		}
	}
	return m
}

func (m *Menu) Open() bool { return m != nil && m.open }

func (m *Menu) Toggle() {
	if m == nil {
		return
	}
	m.set(!m.open)
}

func (m *Menu) Close() {
	if m == nil {
		return
	}
	m.set(false)
}

// Resize closes the menu once the viewport is wider than MobileBreakpoint.
func (m *Menu) Resize(width float64) {
	if width > MobileBreakpoint {
		m.Close()
	}
}

func (m *Menu) set(open bool) {
	m.open = open
	for _, p := range m.parts {
		p.SetActive(open)
	}
}

// ScrollTarget is the scroll position that places a section with the given
// offsetTop just below the fixed header.
func ScrollTarget(sectionTop float64) float64 {
	return max(0, sectionTop-HeaderHeight)
}

// Section is a page section's vertical extent.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

func (s Section) contains(pos float64) bool {
	return pos >= s.Top && pos < s.Top+s.Height
}

// ActiveSection reports the section in view at scrollY. If extents
// overlap the last match wins. ok is false when no section matches.
func ActiveSection(sections []Section, scrollY float64) (id string, ok bool) {
	pos := scrollY + ActiveLinkOffset
	for _, s := range sections {
		if s.contains(pos) {
			id, ok = s.ID, true
		}
	}
	return id, ok
}

// NavLink ties a navigation link to the section id it points at.
type NavLink struct {
	Target string
	Link   Toggler
}

// Highlighter keeps at most one nav link marked active.
type Highlighter struct {
	links  []NavLink
	active string
}

func NewHighlighter(links []NavLink) *Highlighter {
	h := &Highlighter{}
	for _, l := range links {
		if l.Link != nil {
			h.links = append(h.links, l)
		}
	}
	return h
}

// Active returns the currently highlighted section id.
func (h *Highlighter) Active() string {
	if h == nil {
		return ""
	}
	return h.active
}

// Activate highlights the link for id and clears all others. An id with
// no link clears every link.
func (h *Highlighter) Activate(id string) {
	if h == nil {
		return
	}
	h.active = id
	for _, l := range h.links {
		l.Link.SetActive(l.Target == id)
	}
}

// ActivateFirst highlights the first link, as on page load.
func (h *Highlighter) ActivateFirst() {
	if h == nil || len(h.links) == 0 {
		return
	}
	h.Activate(h.links[0].Target)
}

// Update highlights the section in view. When no section matches the
// current highlight is kept.
func (h *Highlighter) Update(sections []Section, scrollY float64) {
	if id, ok := ActiveSection(sections, scrollY); ok {
		h.Activate(id)
	}
}
