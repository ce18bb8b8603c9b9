package device

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/devicekit/pkg/logger"
)

type classifierContextKey struct{}

// WithClassifier stores c in ctx.
func WithClassifier(ctx context.Context, c *Classifier) context.Context {
	return context.WithValue(ctx, classifierContextKey{}, c)
}

// FromContext returns the classifier stored by WithClassifier or Middleware.
func FromContext(ctx context.Context) (*Classifier, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(classifierContextKey{}).(*Classifier)
	return c, ok && c != nil
}

// LogExtractor is a logger.ContextExtractor adding the request's device
// category to every log record.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	c, ok := FromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Category(c.Category().String()), true
}
