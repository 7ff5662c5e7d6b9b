package tooltip

import (
	"testing"
	"time"

	"github.com/rvx-apps/ToolTip/placement"
)

func TestResolveConfigDefaults(t *testing.T) {
	got := ResolveConfig(nil, DefaultConfig())
	want := Config{
		Content:   "",
		Placement: placement.Top,
		Theme:     "dark",
		Delay:     120 * time.Millisecond,
		Offset:    8,
	}
	if got != want {
		t.Errorf("ResolveConfig() = %+v, want %+v", got, want)
	}
}

func TestResolveConfigAttributes(t *testing.T) {
	el := newFakeElement(map[string]string{
		AttrContent:   "Save",
		AttrPlacement: "left",
		AttrTheme:     "light",
		AttrHTML:      "",
		AttrFollow:    "",
		AttrDelay:     "300",
		AttrOffset:    "12.5",
	})
	got := ResolveConfig(el, DefaultConfig())
	want := Config{
		Content:   "Save",
		Placement: placement.Left,
		Theme:     "light",
		Delay:     300 * time.Millisecond,
		Offset:    12.5,
		HTML:      true,
		Follow:    true,
	}
	if got != want {
		t.Errorf("ResolveConfig() = %+v, want %+v", got, want)
	}
}

func TestResolveConfigOptionsWin(t *testing.T) {
	el := newFakeElement(map[string]string{
		AttrContent:   "from attribute",
		AttrPlacement: "left",
		AttrFollow:    "",
	})
	got := ResolveConfig(el, DefaultConfig(),
		WithContent("from option"),
		WithPlacement(placement.Bottom),
		WithFollow(false),
		WithHTML(true),
		WithTheme("brand"),
		WithDelay(0),
		WithOffset(2),
	)
	want := Config{
		Content:   "from option",
		Placement: placement.Bottom,
		Theme:     "brand",
		Offset:    2,
		HTML:      true,
	}
	if got != want {
		t.Errorf("ResolveConfig() = %+v, want %+v", got, want)
	}
}

func TestResolveConfigIgnoresMalformedAttributes(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
	}{
		{"empty content", map[string]string{AttrContent: ""}},
		{"empty placement", map[string]string{AttrPlacement: ""}},
		{"unknown placement", map[string]string{AttrPlacement: "center"}},
		{"empty theme", map[string]string{AttrTheme: ""}},
		{"non numeric delay", map[string]string{AttrDelay: "soon"}},
		{"negative delay", map[string]string{AttrDelay: "-5"}},
		{"non numeric offset", map[string]string{AttrOffset: "8px"}},
		{"negative offset", map[string]string{AttrOffset: "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveConfig(newFakeElement(tt.attrs), DefaultConfig())
			if got != DefaultConfig() {
				t.Errorf("ResolveConfig() = %+v, want defaults", got)
			}
		})
	}
}

func TestWithPlacementNormalizesUnknownSide(t *testing.T) {
	got := ResolveConfig(nil, DefaultConfig(), WithPlacement("diagonal"))
	if got.Placement != placement.Top {
		t.Errorf("Expected placement top, got %s", got.Placement)
	}
}

func TestWithDelayIgnoresNegative(t *testing.T) {
	got := ResolveConfig(nil, DefaultConfig(), WithDelay(-time.Second))
	if got.Delay != 120*time.Millisecond {
		t.Errorf("Expected default delay, got %v", got.Delay)
	}
}
