package device

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/reactive"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

// Viewport client hint headers.
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderViewportHeight      = "Sec-CH-Viewport-Height"
	HeaderLegacyViewportWidth = "Viewport-Width"
)

// maxHint caps viewport hints; anything larger is treated as this size.
const maxHint = 1 << 16

var acceptCH = strings.Join([]string{HeaderViewportWidth, HeaderViewportHeight}, ", ")

// HintsFromRequest reads the viewport from client hints. It reports false when
// the request carries no usable width. A missing height is taken to equal the
// width so that the width alone decides the tier.
func HintsFromRequest(r *http.Request) (Viewport, bool) {
	width := headerInt(r, HeaderViewportWidth)
	if width <= 0 {
		width = headerInt(r, HeaderLegacyViewportWidth)
	}
	if width <= 0 {
		return Viewport{}, false
	}

	height := headerInt(r, HeaderViewportHeight)
	if height <= 0 {
		height = width
	}

	return Viewport{Width: width, Height: height}, true
}

func headerInt(r *http.Request, name string) int {
	v := strings.TrimSpace(r.Header.Get(name))
	if v == "" {
		return 0
	}
	// Hints may be fractional on some browsers.
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int(min(f, maxHint))
}

// ModeFromRequest resolves the request's override: the query parameter, then
// the cookie, then cfg.DefaultMode. Unrecognised values resolve to ModeAuto.
func ModeFromRequest(r *http.Request, cfg Config) Mode {
	if cfg.ModeQueryParam != "" {
		if v := r.URL.Query().Get(cfg.ModeQueryParam); v != "" {
			return ParseMode(v)
		}
	}
	if cfg.ModeCookie != "" {
		if ck, err := r.Cookie(cfg.ModeCookie); err == nil && ck.Value != "" {
			return ParseMode(ck.Value)
		}
	}
	return ParseMode(cfg.DefaultMode)
}

// ViewportFromRequest returns the hinted viewport or the configured fallback.
func ViewportFromRequest(r *http.Request, flags useragent.Flags, cfg Config) Viewport {
	if vp, ok := HintsFromRequest(r); ok {
		return vp
	}
	return cfg.Fallback(flags)
}

// FromRequest builds a Classifier for a single request.
func FromRequest(r *http.Request, cfg Config, opts ...Option) *Classifier {
	ua := r.UserAgent()
	vp := ViewportFromRequest(r, useragent.Detect(ua), cfg)
	env := NewEnvironment(ua, vp.Width, vp.Height)

	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithOverride(reactive.Const(ModeFromRequest(r, cfg))))
	return New(env, all...)
}

// Middleware classifies every request and stores the Classifier in the
// request context. It asks browsers for viewport client hints on later
// requests and marks responses as varying on them.
func Middleware(cfg Config, opts ...Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := FromRequest(r, cfg, opts...)

			h := w.Header()
			h.Set("Accept-CH", acceptCH)
			h.Add("Vary", HeaderViewportWidth)
			h.Add("Vary", HeaderViewportHeight)

			next.ServeHTTP(w, r.WithContext(WithClassifier(r.Context(), c)))
		})
	}
}

// Handler renders the request's classification as JSON. Requests that did
// not pass through Middleware are classified with cfg.
func Handler(cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := FromContext(r.Context())
		if !ok {
			c = FromRequest(r, cfg)
		}

		snap := c.Snapshot()
		c.log.DebugContext(r.Context(), "device classified",
			logger.ClassifierID(c.id),
			logger.Mode(string(snap.Mode)),
			logger.Viewport(snap.Viewport.Width, snap.Viewport.Height),
		)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(snap); err != nil {
			c.log.ErrorContext(r.Context(), "failed to write device snapshot", logger.Error(err))
		}
	}
}
