package useragent

import (
	"strings"
)

// keywordSet optimizes keyword lookups using map structure for O(1) access
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

// contains reports whether s contains any keyword of the set.
// Matching is byte-exact: callers decide the casing by what they pass in.
func (k keywordSet) contains(s string) bool {
	if s == "" {
		return false
	}
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Handheld OS markers, matched against the lower-cased UA.
var (
	harmonyKeywords  = newKeywordSet("harmonyos", "hongmeng", "hm os")
	huaweiKeywords   = newKeywordSet("huaweibrowser", "huawei")
	androidKeywords  = newKeywordSet("android")
	iOSKeywords      = newKeywordSet("iphone", "ipad", "ipod")
	mobileUAKeywords = newKeywordSet("mobi", "mobile", "android", "iphone", "ipod", "ipad")
)

// Browser identity tokens, matched against the raw UA.
var (
	viaTokens   = newKeywordSet("Via")
	quarkTokens = newKeywordSet("Quark")
	ucTokens    = newKeywordSet("UCBrowser", "UBrowser")

	safariTokens = newKeywordSet("Safari")
	// Chromium, Chrome on iOS and Android WebViews all carry a Safari token.
	safariExcludes = newKeywordSet("Chrome", "CriOS", "Android")
)
