package useragent

import (
	"strings"
)

// RootClassHarmonyOS is the class added to the root presentation element when
// the client runs HarmonyOS or a Huawei browser.
const RootClassHarmonyOS = "harmony-os"

// Flags holds the coarse classification of a user agent.
// Flags are independent: any combination, including none, is possible.
type Flags struct {
	// Handheld OS family
	Harmony       bool `json:"is_harmony" yaml:"is_harmony"`
	HuaweiBrowser bool `json:"is_huawei_browser" yaml:"is_huawei_browser"`
	Android       bool `json:"is_android" yaml:"is_android"`
	IOS           bool `json:"is_ios" yaml:"is_ios"`
	MobileUA      bool `json:"is_mobile_ua" yaml:"is_mobile_ua"`

	// Browser identity
	Via    bool `json:"is_via" yaml:"is_via"`
	Quark  bool `json:"is_quark" yaml:"is_quark"`
	UC     bool `json:"is_uc" yaml:"is_uc"`
	Safari bool `json:"is_safari" yaml:"is_safari"`
}

// Detect computes all flags for the given user agent.
func Detect(ua string) Flags {
	if ua == "" {
		return Flags{}
	}

	lowerUA := strings.ToLower(ua)

	return Flags{
		Harmony:       harmonyKeywords.contains(lowerUA),
		HuaweiBrowser: huaweiKeywords.contains(lowerUA),
		Android:       androidKeywords.contains(lowerUA),
		IOS:           iOSKeywords.contains(lowerUA),
		MobileUA:      mobileUAKeywords.contains(lowerUA),

		Via:    viaTokens.contains(ua),
		Quark:  quarkTokens.contains(ua),
		UC:     ucTokens.contains(ua),
		Safari: safariTokens.contains(ua) && !safariExcludes.contains(ua),
	}
}

// Handheld reports whether any handheld OS marker matched.
// Handheld clients are sized by their shorter viewport side so that a
// landscape phone or tablet is not mistaken for a desktop.
func (f Flags) Handheld() bool {
	return f.Harmony || f.HuaweiBrowser || f.Android || f.IOS || f.MobileUA
}

// RootClasses returns the CSS classes a host should put on its root element.
func (f Flags) RootClasses() []string {
	if f.Harmony || f.HuaweiBrowser {
		return []string{RootClassHarmonyOS}
	}
	return nil
}
