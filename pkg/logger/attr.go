package logger

import (
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Category records a device category under the key "device_category".
func Category(category string) slog.Attr {
	return slog.String("device_category", category)
}

// Mode records an override mode under the key "device_mode".
// An empty mode is recorded as "auto".
func Mode(mode string) slog.Attr {
	if mode == "" {
		mode = "auto"
	}
	return slog.String("device_mode", mode)
}

// Viewport groups viewport dimensions under the key "viewport".
func Viewport(width, height int) slog.Attr {
	return Group("viewport", slog.Int("width", width), slog.Int("height", height))
}

// ClassifierID records the classifier instance id under the key "classifier_id".
// If id is nil, it returns an empty Attr.
func ClassifierID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("classifier_id", id)
}

// UserAgent records the raw user agent under the key "user_agent".
func UserAgent(ua string) slog.Attr {
	return slog.String("user_agent", ua)
}
