// Package demo serves a page exercising the tooltip library in a browser.
// The anchors on the page are described by a YAML fixture.
package demo

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rvx-apps/ToolTip/placement"
)

//go:embed assets/default.yaml
var defaultFixture []byte

type Fixture struct {
	Version    int      `yaml:"version"`
	Title      string   `yaml:"title"`
	Stylesheet string   `yaml:"stylesheet,omitempty"`
	Script     string   `yaml:"script,omitempty"`
	Words      []string `yaml:"words,omitempty"`
	Anchors    []Anchor `yaml:"anchors"`
}

// Anchor is one element carrying tooltip attributes.
type Anchor struct {
	Label     string   `yaml:"label"`
	Content   string   `yaml:"content"`
	Placement string   `yaml:"placement,omitempty"`
	Theme     string   `yaml:"theme,omitempty"`
	HTML      bool     `yaml:"html,omitempty"`
	Follow    bool     `yaml:"follow,omitempty"`
	DelayMS   *int     `yaml:"delay_ms,omitempty"`
	Offset    *float64 `yaml:"offset,omitempty"`
	Style     string   `yaml:"style,omitempty"`
}

const (
	DefaultStylesheet = "/css/index.css"
	DefaultScript     = "/static/app.js"
)

// Default returns the fixture bundled with the binary.
func Default() Fixture {
	f, err := Parse(defaultFixture, "default.yaml")
	if err != nil {
		panic(err)
	}
	return f
}

func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture %q: %w", path, err)
	}
	return Parse(data, path)
}

func Parse(data []byte, source string) (Fixture, error) {
	var f Fixture

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return f, fmt.Errorf("parse YAML in %q: %w", source, err)
	}

	if errs := f.Validate(); len(errs) > 0 {
		return f, fmt.Errorf("invalid fixture in %q: %s", source, strings.Join(errs, "; "))
	}
	if f.Stylesheet == "" {
		f.Stylesheet = DefaultStylesheet
	}
	if f.Script == "" {
		f.Script = DefaultScript
	}
	return f, nil
}

func (f Fixture) Validate() []string {
	var errs []string

	if f.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported fixture version %d", f.Version))
	}
	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, "title is required")
	}
	if len(f.Anchors) == 0 && len(f.Words) == 0 {
		errs = append(errs, "anchors or words must not be empty")
	}

	for i, a := range f.Anchors {
		if strings.TrimSpace(a.Label) == "" {
			errs = append(errs, fmt.Sprintf("anchors[%d].label is required", i))
		}
		if a.Placement != "" {
			if _, ok := placement.ParseSide(a.Placement); !ok {
				errs = append(errs, fmt.Sprintf("anchors[%d].placement %q is not one of top, bottom, left, right", i, a.Placement))
			}
		}
		if a.DelayMS != nil && *a.DelayMS < 0 {
			errs = append(errs, fmt.Sprintf("anchors[%d].delay_ms must not be negative", i))
		}
		if a.Offset != nil && *a.Offset < 0 {
			errs = append(errs, fmt.Sprintf("anchors[%d].offset must not be negative", i))
		}
	}
	return errs
}
