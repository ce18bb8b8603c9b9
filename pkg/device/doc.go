// Package device classifies a client surface as mobile, tablet or desktop and
// keeps that classification current as the viewport or an override changes.
//
// # Inputs
//
// A Classifier reads three signals through an Environment:
//   - the user agent, captured once at construction;
//   - the viewport, a reactive value the host updates on resize;
//   - an optional override Mode (auto, desktop, tablet, mobile) owned by the
//     caller and supplied with WithOverride.
//
// # Rules
//
// A concrete override always wins. Otherwise the category is derived from the
// viewport: handheld user agents (see useragent.Flags.Handheld) are sized by
// the shorter side, everything else by width alone.
//
//	side < 768          mobile
//	768 <= side < 1024  tablet
//	side >= 1024        desktop
//
// Empty, "auto" and malformed override values all classify automatically. No
// input can make classification fail: a missing user agent matches no flags
// and takes the width-only path.
//
// # Usage
//
//	env := device.NewEnvironment(ua, 1440, 900)
//	mode := reactive.NewValue(device.ModeAuto)
//
//	c := device.New(env, device.WithOverride(mode))
//	cancel := c.Subscribe(func(cat device.Category) {
//	    fmt.Println("now", cat)
//	})
//	defer cancel()
//
//	env.Resize(375, 812)       // handheld or not, 375 wide is mobile
//	mode.Set(device.ModeTablet) // forced
//
// # HTTP
//
// Middleware builds a Classifier per request from viewport client hints
// (Sec-CH-Viewport-Width/Height) and an override read from a query parameter
// or cookie, and stores it in the request context; FromContext retrieves it
// and Handler renders it as JSON. LogExtractor adds the request's category to
// every log record written with a context-aware logger.
package device
