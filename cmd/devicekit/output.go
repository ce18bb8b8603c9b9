package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// encode writes v as JSON or YAML. Text output is left to the caller.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeSnapshot(w io.Writer, format string, s device.Snapshot, f useragent.Flags) error {
	if format != outputText {
		return encode(w, format, s)
	}

	fmt.Fprintf(w, "Category:  %s\n", s.Category.Label())
	fmt.Fprintf(w, "Mode:      %s\n", s.Mode)
	fmt.Fprintf(w, "Viewport:  %dx%d\n", s.Viewport.Width, s.Viewport.Height)
	fmt.Fprintf(w, "Flags:     %s\n", joinOrDash(setFlags(f)))
	fmt.Fprintf(w, "Classes:   %s\n", joinOrDash(s.RootClasses))
	return nil
}

func writeFlags(w io.Writer, format string, f useragent.Flags) error {
	if format != outputText {
		return encode(w, format, f)
	}

	for _, p := range flagPairs(f) {
		fmt.Fprintf(w, "%-16s %t\n", p.name, p.set)
	}
	if classes := f.RootClasses(); len(classes) > 0 {
		fmt.Fprintf(w, "%-16s %s\n", "root_classes", strings.Join(classes, " "))
	}
	return nil
}

type flagPair struct {
	name string
	set  bool
}

func flagPairs(f useragent.Flags) []flagPair {
	return []flagPair{
		{"is_harmony", f.Harmony},
		{"is_huawei_browser", f.HuaweiBrowser},
		{"is_android", f.Android},
		{"is_ios", f.IOS},
		{"is_mobile_ua", f.MobileUA},
		{"is_via", f.Via},
		{"is_quark", f.Quark},
		{"is_uc", f.UC},
		{"is_safari", f.Safari},
	}
}

func setFlags(f useragent.Flags) []string {
	var out []string
	for _, p := range flagPairs(f) {
		if p.set {
			out = append(out, strings.TrimPrefix(p.name, "is_"))
		}
	}
	return out
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
