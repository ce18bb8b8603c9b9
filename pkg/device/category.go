package device

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

// Category is the coarse device class a client is rendered for.
type Category string

const (
	Mobile  Category = "mobile"
	Tablet  Category = "tablet"
	Desktop Category = "desktop"
)

// Tier boundaries in CSS pixels. Upper bounds are exclusive: a side of exactly
// 768 is a tablet, exactly 1024 is a desktop.
const (
	MobileMaxWidth = 768
	TabletMaxWidth = 1024
)

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case Mobile, Tablet, Desktop:
		return true
	}
	return false
}

// String returns the category as a string.
func (c Category) String() string { return string(c) }

// Label returns a human-readable category name, e.g. "Tablet".
func (c Category) Label() string {
	if !c.Valid() {
		return "Unknown"
	}
	return cases.Title(language.English).String(string(c))
}

// Mode is an explicit category override. The zero value means auto.
type Mode string

const (
	ModeAuto    Mode = "auto"
	ModeDesktop Mode = Mode(Desktop)
	ModeTablet  Mode = Mode(Tablet)
	ModeMobile  Mode = Mode(Mobile)
)

// ParseMode normalises s into a Mode. Empty or unrecognised input is ModeAuto.
func ParseMode(s string) Mode {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := m.Category(); ok {
		return m
	}
	return ModeAuto
}

// Category returns the category a concrete override forces.
// It returns false for auto, empty and malformed modes.
func (m Mode) Category() (Category, bool) {
	c := Category(m)
	return c, c.Valid()
}

// Effective returns m if it forces a category and ModeAuto otherwise.
func (m Mode) Effective() Mode {
	if _, ok := m.Category(); ok {
		return m
	}
	return ModeAuto
}

// Viewport is the visible rendering area in CSS pixels.
type Viewport struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// MinSide returns the shorter of the two sides.
func (v Viewport) MinSide() int {
	return min(v.Width, v.Height)
}

// Classify derives the category for the given inputs.
// A concrete override always wins; everything else is classified automatically.
func Classify(flags useragent.Flags, vp Viewport, mode Mode) Category {
	if c, ok := mode.Category(); ok {
		return c
	}
	return AutoCategory(flags, vp)
}

// AutoCategory classifies without an override. Handheld user agents are sized
// by their shorter side so a landscape phone or tablet is not taken for a
// desktop; everything else is sized by width alone.
func AutoCategory(flags useragent.Flags, vp Viewport) Category {
	side := vp.Width
	if flags.Handheld() {
		side = vp.MinSide()
	}
	return tier(side)
}

func tier(side int) Category {
	switch {
	case side < MobileMaxWidth:
		return Mobile
	case side < TabletMaxWidth:
		return Tablet
	default:
		return Desktop
	}
}
