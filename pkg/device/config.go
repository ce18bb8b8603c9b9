package device

import "github.com/dmitrymomot/devicekit/pkg/useragent"

// Config controls how HTTP requests are classified.
type Config struct {
	// DefaultMode applies when a request carries no override.
	DefaultMode string `env:"DEVICE_DEFAULT_MODE" envDefault:"auto"`

	// ModeQueryParam and ModeCookie name where a request's override is read from.
	// The query parameter wins over the cookie.
	ModeQueryParam string `env:"DEVICE_MODE_QUERY" envDefault:"device"`
	ModeCookie     string `env:"DEVICE_MODE_COOKIE" envDefault:"device_mode"`

	// Viewport assumed when a request carries no viewport client hints.
	// Handheld user agents get their own, phone-sized fallback.
	FallbackWidth          int `env:"DEVICE_FALLBACK_WIDTH" envDefault:"1280"`
	FallbackHeight         int `env:"DEVICE_FALLBACK_HEIGHT" envDefault:"800"`
	HandheldFallbackWidth  int `env:"DEVICE_HANDHELD_FALLBACK_WIDTH" envDefault:"390"`
	HandheldFallbackHeight int `env:"DEVICE_HANDHELD_FALLBACK_HEIGHT" envDefault:"844"`
}

// DefaultConfig returns the same values the env defaults produce.
func DefaultConfig() Config {
	return Config{
		DefaultMode:            string(ModeAuto),
		ModeQueryParam:         "device",
		ModeCookie:             "device_mode",
		FallbackWidth:          1280,
		FallbackHeight:         800,
		HandheldFallbackWidth:  390,
		HandheldFallbackHeight: 844,
	}
}

// Fallback returns the viewport assumed for flags when none is known.
func (c Config) Fallback(flags useragent.Flags) Viewport {
	if flags.Handheld() {
		return Viewport{Width: c.HandheldFallbackWidth, Height: c.HandheldFallbackHeight}
	}
	return Viewport{Width: c.FallbackWidth, Height: c.FallbackHeight}
}
