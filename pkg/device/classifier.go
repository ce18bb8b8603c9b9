package device

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/reactive"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

// watchBuffer is the channel size used by Classifier.Watch.
const watchBuffer = 8

// Option configures a Classifier.
type Option func(*options)

type options struct {
	override reactive.Readable[Mode]
	log      *slog.Logger
}

// WithOverride makes the classifier follow an externally owned override mode.
// A nil override is ignored.
func WithOverride(mode reactive.Readable[Mode]) Option {
	return func(o *options) {
		if mode != nil {
			o.override = mode
		}
	}
}

// WithLogger sets the logger category transitions are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// state is one consistent evaluation of all reactive inputs.
type state struct {
	category Category
	viewport Viewport
	mode     Mode
}

// Classifier exposes the device category of one consuming context as reactive
// state. User-agent flags are computed once at construction; the category is
// re-derived whenever the viewport or the override mode changes.
//
// All methods are safe for concurrent use.
type Classifier struct {
	id    uuid.UUID
	ua    string
	flags useragent.Flags

	viewport reactive.Readable[Viewport]
	override reactive.Readable[Mode]

	state    *reactive.Computed[state]
	category *reactive.Computed[Category]

	log     *slog.Logger
	stopLog func()
}

// New creates a Classifier. A nil env behaves like a host with no user agent
// and a zero-sized viewport. Construction never fails.
func New(env Environment, opts ...Option) *Classifier {
	o := &options{
		override: reactive.Const(ModeAuto),
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if env == nil {
		env = NewEnvironment("", 0, 0)
	}

	c := &Classifier{
		id:       uuid.New(),
		ua:       env.UserAgent(),
		viewport: env.Viewport(),
		override: o.override,
		log:      o.log,
	}
	c.flags = useragent.Detect(c.ua)

	c.state = reactive.NewComputed(c.evaluate, c.viewport, c.override)
	c.category = reactive.NewComputed(func() Category {
		return c.state.Get().category
	}, c.state)

	c.stopLog = c.category.Subscribe(func(cat Category) {
		s := c.state.Get()
		c.log.Debug("device category changed",
			logger.ClassifierID(c.id),
			logger.Category(cat.String()),
			logger.Mode(string(s.mode)),
			logger.Viewport(s.viewport.Width, s.viewport.Height),
		)
	})

	c.log.Debug("device classifier created",
		logger.ClassifierID(c.id),
		logger.UserAgent(c.ua),
		logger.Category(c.Category().String()),
	)

	return c
}

func (c *Classifier) evaluate() state {
	vp := c.viewport.Get()
	mode := c.override.Get().Effective()
	return state{
		category: Classify(c.flags, vp, mode),
		viewport: vp,
		mode:     mode,
	}
}

// ID identifies this classifier instance in logs.
func (c *Classifier) ID() uuid.UUID { return c.id }

// UserAgent returns the user agent captured at construction.
func (c *Classifier) UserAgent() string { return c.ua }

// Flags returns the user-agent flags computed at construction.
func (c *Classifier) Flags() useragent.Flags { return c.flags }

// Category returns the current device category.
func (c *Classifier) Category() Category { return c.category.Get() }

// Exactly one of IsMobile, IsTablet and IsDesktop is true at any time.
func (c *Classifier) IsMobile() bool  { return c.Category() == Mobile }
func (c *Classifier) IsTablet() bool  { return c.Category() == Tablet }
func (c *Classifier) IsDesktop() bool { return c.Category() == Desktop }

func (c *Classifier) IsVia() bool           { return c.flags.Via }
func (c *Classifier) IsQuark() bool         { return c.flags.Quark }
func (c *Classifier) IsUC() bool            { return c.flags.UC }
func (c *Classifier) IsSafari() bool        { return c.flags.Safari }
func (c *Classifier) IsHarmony() bool       { return c.flags.Harmony }
func (c *Classifier) IsHuaweiBrowser() bool { return c.flags.HuaweiBrowser }
func (c *Classifier) IsAndroid() bool       { return c.flags.Android }
func (c *Classifier) IsIOS() bool           { return c.flags.IOS }

// RootClasses returns the classes a host should add to its root element.
func (c *Classifier) RootClasses() []string { return c.flags.RootClasses() }

// Refresh re-evaluates the category against the current inputs and reports
// whether it changed. Inputs published through reactive values are picked up
// automatically; Refresh exists for providers that cannot notify.
func (c *Classifier) Refresh() bool {
	before := c.category.Get()
	c.state.Refresh()
	return c.category.Get() != before
}

// Subscribe registers fn to be called with every new category.
func (c *Classifier) Subscribe(fn func(Category)) (cancel func()) {
	return c.category.Subscribe(fn)
}

// Watch streams category changes until ctx is cancelled.
func (c *Classifier) Watch(ctx context.Context) *reactive.Watcher[Category] {
	return reactive.Watch[Category](ctx, c.category, watchBuffer)
}

// Stop detaches the classifier from its environment and override. The last
// classification stays readable. Stop is idempotent.
func (c *Classifier) Stop() {
	c.stopLog()
	c.category.Stop()
	c.state.Stop()
}

// Snapshot is a consistent, serialisable view of a Classifier.
type Snapshot struct {
	Category Category `json:"category" yaml:"category"`
	Mode     Mode     `json:"mode" yaml:"mode"`
	Viewport Viewport `json:"viewport" yaml:"viewport"`

	IsMobile  bool `json:"is_mobile" yaml:"is_mobile"`
	IsTablet  bool `json:"is_tablet" yaml:"is_tablet"`
	IsDesktop bool `json:"is_desktop" yaml:"is_desktop"`

	IsVia           bool `json:"is_via" yaml:"is_via"`
	IsQuark         bool `json:"is_quark" yaml:"is_quark"`
	IsUC            bool `json:"is_uc" yaml:"is_uc"`
	IsSafari        bool `json:"is_safari" yaml:"is_safari"`
	IsHarmony       bool `json:"is_harmony" yaml:"is_harmony"`
	IsHuaweiBrowser bool `json:"is_huawei_browser" yaml:"is_huawei_browser"`
	IsAndroid       bool `json:"is_android" yaml:"is_android"`
	IsIOS           bool `json:"is_ios" yaml:"is_ios"`

	RootClasses []string `json:"root_classes,omitempty" yaml:"root_classes,omitempty"`
}

// Snapshot returns the classification as of one dependency snapshot.
func (c *Classifier) Snapshot() Snapshot {
	s := c.state.Get()
	return Snapshot{
		Category: s.category,
		Mode:     s.mode,
		Viewport: s.viewport,

		IsMobile:  s.category == Mobile,
		IsTablet:  s.category == Tablet,
		IsDesktop: s.category == Desktop,

		IsVia:           c.flags.Via,
		IsQuark:         c.flags.Quark,
		IsUC:            c.flags.UC,
		IsSafari:        c.flags.Safari,
		IsHarmony:       c.flags.Harmony,
		IsHuaweiBrowser: c.flags.HuaweiBrowser,
		IsAndroid:       c.flags.Android,
		IsIOS:           c.flags.IOS,

		RootClasses: c.flags.RootClasses(),
	}
}
