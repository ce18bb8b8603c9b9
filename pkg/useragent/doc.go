// Package useragent derives coarse client-family flags from a raw HTTP
// User-Agent string.
//
// It answers two questions:
//   - Is the client running a handheld operating system? (HarmonyOS, Huawei,
//     Android, iOS, or anything announcing itself as mobile)
//   - Which of a small set of browsers is it? (Via, Quark, UC, Safari)
//
// Detection is plain substring matching against curated keyword sets. No
// version numbers are extracted and the input is never validated: an empty or
// garbage string simply matches nothing.
//
// # Case sensitivity
//
// Handheld markers are matched case-insensitively against the lower-cased UA.
// Browser identity tokens ("Via", "Quark", "UCBrowser", "Safari", …) are
// matched case-sensitively against the raw UA because real browsers publish
// them capitalised; lowering them would make "Via" match words like "aviator".
//
// # Usage
//
//	flags := useragent.Detect(r.UserAgent())
//
//	if flags.Handheld() {
//	    // size decisions should use the shorter viewport side
//	}
//
//	if flags.Safari {
//	    // work around WebKit quirks
//	}
//
//	for _, class := range flags.RootClasses() {
//	    // tag <html> with class, e.g. "harmony-os"
//	}
//
// Flags is a small comparable value: compute it once per user agent and pass
// it around by value.
package useragent
