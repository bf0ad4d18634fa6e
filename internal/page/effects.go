package page

import "strconv"

const (
	// FadeInOffset is how far above the viewport bottom an element's top
	// edge must be before it fades in.
	FadeInOffset = 150
	// NavbarScrollThreshold is the scroll position past which the navbar
	// switches to its scrolled style.
	NavbarScrollThreshold = 50
	// ParallaxRate scales the scroll offset applied to the hero.
	ParallaxRate = -0.5
)

// FadeInVisible reports whether an element whose top edge sits at top
// should be revealed.
func FadeInVisible(top, viewportHeight float64) bool {
	return top < viewportHeight-FadeInOffset
}

// RevealVisible reveals every element that has crossed the threshold.
// Elements already revealed stay revealed.
func RevealVisible(elements []Revealer, viewportHeight float64) int {
	n := 0
	for _, el := range elements {
		if el == nil {
			continue
		}
		if FadeInVisible(el.Top(), viewportHeight) {
			el.Reveal()
			n++
		}
	}
	return n
}

// NavbarStyle is the navbar's background and shadow.
type NavbarStyle struct {
	Background string
	BoxShadow  string
}

var (
	navbarResting  = NavbarStyle{Background: "rgba(255, 255, 255, 0.95)", BoxShadow: "none"}
	navbarScrolled = NavbarStyle{Background: "rgba(255, 255, 255, 0.98)", BoxShadow: "0 2px 20px rgba(0, 0, 0, 0.1)"}
)

// NavbarStyleAt returns the navbar style for a scroll position.
func NavbarStyleAt(scrollY float64) NavbarStyle {
	if scrollY > NavbarScrollThreshold {
		return navbarScrolled
	}
	return navbarResting
}

func (s NavbarStyle) Apply(el Styler) {
	if el == nil {
		return
	}
	el.SetStyle("background", s.Background)
	el.SetStyle("box-shadow", s.BoxShadow)
}

// ParallaxOffset is the hero's vertical translation in pixels.
func ParallaxOffset(scrollY float64) float64 {
	off := scrollY * ParallaxRate
	if off == 0 {
		return 0 // avoid -0
	}
	return off
}

// ParallaxTransform is the CSS transform for the hero at scrollY.
func ParallaxTransform(scrollY float64) string {
	return "translateY(" + strconv.FormatFloat(ParallaxOffset(scrollY), 'f', -1, 64) + "px)"
}

// HoverTarget selects which kind of element a hover transform is for.
type HoverTarget int

const (
	HoverProjectCard HoverTarget = iota
	HoverSkillItem
)

// HoverTransform returns the CSS transform for an element entering or
// leaving hover.
func HoverTransform(target HoverTarget, hovering bool) string {
	switch target {
	case HoverSkillItem:
		if hovering {
			return "translateX(10px) scale(1.05)"
		}
		return "translateX(0) scale(1)"
	default:
		if hovering {
			return "translateY(-15px) scale(1.02)"
		}
		return "translateY(0) scale(1)"
	}
}

// DocumentLoaded reports whether a document in readyState has already
// fired its load event. Only "complete" qualifies; "interactive" still has
// load pending.
func DocumentLoaded(readyState string) bool {
	return readyState == "complete"
}
