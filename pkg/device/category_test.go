package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

const (
	iPhoneUA        = "Mozilla/5.0 (iPhone; CPU iPhone OS 15_0)"
	iPadUA          = "Mozilla/5.0 (iPad; CPU OS 15_0)"
	windowsChromeUA = "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/100"
	macSafariUA     = "Mozilla/5.0 (Macintosh) AppleWebKit/605.1.15 Safari/605.1.15"
	androidUA       = "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	harmonyUA       = "Mozilla/5.0 (Linux; Android 12; HarmonyOS; NOH-AN00) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/99.0.4844.88 HuaweiBrowser/14.0.2.311 Mobile Safari/537.36"
)

func expectedTier(side int) device.Category {
	switch {
	case side < 768:
		return device.Mobile
	case side < 1024:
		return device.Tablet
	default:
		return device.Desktop
	}
}

var (
	sides   = []int{0, 1, 320, 375, 767, 768, 769, 834, 1023, 1024, 1025, 1440, 1920, 4000}
	heights = []int{0, 375, 667, 768, 1024, 1194, 2000}
)

func TestAutoCategory_DesktopUADependsOnWidthOnly(t *testing.T) {
	t.Parallel()

	for _, ua := range []string{"", windowsChromeUA, macSafariUA} {
		flags := useragent.Detect(ua)
		assert.False(t, flags.Handheld(), ua)

		for _, w := range sides {
			for _, h := range heights {
				got := device.AutoCategory(flags, device.Viewport{Width: w, Height: h})
				assert.Equal(t, expectedTier(w), got, "ua=%q w=%d h=%d", ua, w, h)
			}
		}
	}
}

func TestAutoCategory_HandheldUADependsOnMinSide(t *testing.T) {
	t.Parallel()

	for _, ua := range []string{iPhoneUA, iPadUA, androidUA, harmonyUA, "Generic Mobi", "HongMeng"} {
		flags := useragent.Detect(ua)
		assert.True(t, flags.Handheld(), ua)

		for _, w := range sides {
			for _, h := range heights {
				got := device.AutoCategory(flags, device.Viewport{Width: w, Height: h})
				assert.Equal(t, expectedTier(min(w, h)), got, "ua=%q w=%d h=%d", ua, w, h)
			}
		}
	}
}

func TestAutoCategory_Boundaries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		width    int
		expected device.Category
	}{
		{name: "767 is mobile", width: 767, expected: device.Mobile},
		{name: "768 is tablet", width: 768, expected: device.Tablet},
		{name: "1023 is tablet", width: 1023, expected: device.Tablet},
		{name: "1024 is desktop", width: 1024, expected: device.Desktop},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			vp := device.Viewport{Width: tc.width, Height: tc.width}
			assert.Equal(t, tc.expected, device.AutoCategory(useragent.Flags{}, vp))
			assert.Equal(t, tc.expected, device.AutoCategory(useragent.Flags{IOS: true}, vp))
		})
	}
}

func TestClassify_OverrideWins(t *testing.T) {
	t.Parallel()

	for _, mode := range []device.Mode{device.ModeDesktop, device.ModeTablet, device.ModeMobile} {
		want, ok := mode.Category()
		assert.True(t, ok)

		for _, ua := range []string{"", iPhoneUA, windowsChromeUA, harmonyUA} {
			flags := useragent.Detect(ua)
			for _, w := range sides {
				got := device.Classify(flags, device.Viewport{Width: w, Height: w / 2}, mode)
				assert.Equal(t, want, got, "mode=%s ua=%q w=%d", mode, ua, w)
			}
		}
	}
}

func TestClassify_NonConcreteModesFallThrough(t *testing.T) {
	t.Parallel()

	flags := useragent.Detect(iPhoneUA)
	vp := device.Viewport{Width: 375, Height: 667}

	for _, mode := range []device.Mode{"", device.ModeAuto, "AUTO", "phone", "Desktop", "undefined"} {
		assert.Equal(t, device.Mobile, device.Classify(flags, vp, mode), "mode=%q", mode)
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in       string
		expected device.Mode
	}{
		{in: "", expected: device.ModeAuto},
		{in: "auto", expected: device.ModeAuto},
		{in: "desktop", expected: device.ModeDesktop},
		{in: " Tablet ", expected: device.ModeTablet},
		{in: "MOBILE", expected: device.ModeMobile},
		{in: "watch", expected: device.ModeAuto},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, device.ParseMode(tc.in))
		})
	}
}

func TestMode_Effective(t *testing.T) {
	t.Parallel()

	assert.Equal(t, device.ModeAuto, device.Mode("").Effective())
	assert.Equal(t, device.ModeAuto, device.Mode("bogus").Effective())
	assert.Equal(t, device.ModeTablet, device.ModeTablet.Effective())
}

func TestCategory(t *testing.T) {
	t.Parallel()

	assert.True(t, device.Mobile.Valid())
	assert.True(t, device.Tablet.Valid())
	assert.True(t, device.Desktop.Valid())
	assert.False(t, device.Category("tv").Valid())
	assert.False(t, device.Category("").Valid())

	assert.Equal(t, "Mobile", device.Mobile.Label())
	assert.Equal(t, "Desktop", device.Desktop.Label())
	assert.Equal(t, "Unknown", device.Category("").Label())
	assert.Equal(t, "tablet", device.Tablet.String())
}

func TestViewport_MinSide(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 375, device.Viewport{Width: 375, Height: 667}.MinSide())
	assert.Equal(t, 375, device.Viewport{Width: 667, Height: 375}.MinSide())
}
