package tooltip

import (
	"strconv"
	"time"

	"github.com/rvx-apps/ToolTip/placement"
)

// Anchor attributes read by ResolveConfig.
const (
	AttrContent   = "data-tooltip"
	AttrPlacement = "data-placement"
	AttrTheme     = "data-theme"
	AttrHTML      = "data-html"
	AttrFollow    = "data-follow"
	AttrDelay     = "data-delay"
	AttrOffset    = "data-offset"
)

// Config is the resolved, immutable configuration of one controller.
type Config struct {
	Content   string
	Placement placement.Side
	Theme     string
	Delay     time.Duration
	Offset    float64
	HTML      bool
	Follow    bool
}

// DefaultConfig returns the values used when neither an attribute nor an
// option sets a field.
func DefaultConfig() Config {
	return Config{
		Placement: placement.Top,
		Theme:     "dark",
		Delay:     120 * time.Millisecond,
		Offset:    8,
	}
}

// Option overrides a field of the resolved configuration. Options win
// over attributes.
type Option func(*Config)

func WithContent(content string) Option {
	return func(c *Config) {
		c.Content = content
	}
}

// WithPlacement sets the preferred side. Unknown sides fall back to top.
func WithPlacement(side placement.Side) Option {
	return func(c *Config) {
		c.Placement, _ = placement.ParseSide(string(side))
	}
}

func WithTheme(theme string) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithDelay sets the hover delay before the tooltip is shown.
func WithDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.Delay = d
		}
	}
}

// WithOffset sets the gap in pixels between anchor and tooltip.
func WithOffset(px float64) Option {
	return func(c *Config) {
		c.Offset = px
	}
}

// WithHTML makes the content be interpreted as markup.
func WithHTML(on bool) Option {
	return func(c *Config) {
		c.HTML = on
	}
}

// WithFollow makes the tooltip track the cursor.
func WithFollow(on bool) Option {
	return func(c *Config) {
		c.Follow = on
	}
}

// Attributes is the read side of an anchor's declared attributes.
type Attributes interface {
	Attribute(name string) (string, bool)
}

// ResolveConfig merges defaults, then attrs, then opts. attrs may be nil.
// Malformed attribute values are ignored.
func ResolveConfig(attrs Attributes, defaults Config, opts ...Option) Config {
	cfg := defaults
	if attrs != nil {
		applyAttributes(&cfg, attrs)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func applyAttributes(cfg *Config, attrs Attributes) {
	// empty string attributes count as unset, matching `getAttribute(...) || default`
	if v, ok := attrs.Attribute(AttrContent); ok && v != "" {
		cfg.Content = v
	}
	if v, ok := attrs.Attribute(AttrPlacement); ok && v != "" {
		if side, ok := placement.ParseSide(v); ok {
			cfg.Placement = side
		}
	}
	if v, ok := attrs.Attribute(AttrTheme); ok && v != "" {
		cfg.Theme = v
	}
	if _, ok := attrs.Attribute(AttrHTML); ok {
		cfg.HTML = true
	}
	if _, ok := attrs.Attribute(AttrFollow); ok {
		cfg.Follow = true
	}
	if v, ok := attrs.Attribute(AttrDelay); ok {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.Delay = time.Duration(ms) * time.Millisecond
		}
	}
	if v, ok := attrs.Attribute(AttrOffset); ok {
		if px, err := strconv.ParseFloat(v, 64); err == nil && px >= 0 {
			cfg.Offset = px
		}
	}
}
