package device

import (
	"github.com/dmitrymomot/devicekit/pkg/reactive"
)

// Environment supplies the host signals a Classifier reads: a user agent that
// is read once, and a live viewport.
type Environment interface {
	UserAgent() string
	Viewport() reactive.Readable[Viewport]
}

// MemoryEnvironment is an Environment held in memory. The viewport is a single
// reactive value, so a resize updates width and height atomically.
type MemoryEnvironment struct {
	ua       string
	viewport *reactive.Value[Viewport]
}

// NewEnvironment creates a MemoryEnvironment.
func NewEnvironment(ua string, width, height int) *MemoryEnvironment {
	return &MemoryEnvironment{
		ua:       ua,
		viewport: reactive.NewValue(Viewport{Width: width, Height: height}),
	}
}

func (e *MemoryEnvironment) UserAgent() string { return e.ua }

func (e *MemoryEnvironment) Viewport() reactive.Readable[Viewport] { return e.viewport }

// Resize publishes new viewport dimensions.
func (e *MemoryEnvironment) Resize(width, height int) {
	e.viewport.Set(Viewport{Width: width, Height: height})
}
