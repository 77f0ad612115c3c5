package magnetic

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tuning constants and class names of a magnetic controller.
//
// A YAML file only needs the keys it overrides; everything else keeps the
// DefaultConfig value:
//
//	triggerScale: 0.7
//	offsetScale: 0.3
//	parallaxScale: 0.6
//	smoothing: 0.1
//	snapEpsilon: 0.001
type Config struct {
	// TriggerScale multiplies the root width to give the trigger radius.
	TriggerScale float64 `yaml:"triggerScale"`
	// OffsetScale multiplies the pointer offset from the center to give the
	// translate target while hovered.
	OffsetScale float64 `yaml:"offsetScale"`
	// ParallaxScale multiplies the negated root translate written to the label.
	ParallaxScale float64 `yaml:"parallaxScale"`
	// Smoothing is the per-frame interpolation weight, in (0, 1].
	Smoothing float64 `yaml:"smoothing"`
	// SnapEpsilon is the residual below which smoothing snaps to its target.
	SnapEpsilon float64 `yaml:"snapEpsilon"`
	// PageSpaceCenter measures the element center in page space instead of
	// viewport space. The pointer is always scroll-adjusted into page space,
	// so without this flag the pull drifts by the scroll offset on a scrolled
	// document.
	PageSpaceCenter bool `yaml:"pageSpaceCenter"`

	HoverClass      string `yaml:"hoverClass"`
	ActiveClass     string `yaml:"activeClass"`
	LabelClass      string `yaml:"labelClass"`
	LabelInnerClass string `yaml:"labelInnerClass"`
	FillerClass     string `yaml:"fillerClass"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		TriggerScale:    0.7,
		OffsetScale:     0.3,
		ParallaxScale:   0.6,
		Smoothing:       0.1,
		SnapEpsilon:     DefaultSnapEpsilon,
		HoverClass:      ClassHover,
		ActiveClass:     ClassActive,
		LabelClass:      ClassLabel,
		LabelInnerClass: ClassLabelInner,
		FillerClass:     ClassFiller,
	}
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse magnetic config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid magnetic config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads and parses the YAML config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read magnetic config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks that every value is finite and in range.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"triggerScale", c.TriggerScale},
		{"offsetScale", c.OffsetScale},
		{"parallaxScale", c.ParallaxScale},
		{"smoothing", c.Smoothing},
		{"snapEpsilon", c.SnapEpsilon},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be finite, got %g", f.name, f.v)
		}
	}
	if c.Smoothing <= 0 || c.Smoothing > 1 {
		return fmt.Errorf("smoothing must be in (0, 1], got %g", c.Smoothing)
	}
	if c.SnapEpsilon <= 0 {
		return fmt.Errorf("snapEpsilon must be positive, got %g", c.SnapEpsilon)
	}
	if c.TriggerScale < 0 {
		return fmt.Errorf("triggerScale must not be negative, got %g", c.TriggerScale)
	}
	if c.OffsetScale < 0 {
		return fmt.Errorf("offsetScale must not be negative, got %g", c.OffsetScale)
	}
	if c.ParallaxScale < 0 {
		return fmt.Errorf("parallaxScale must not be negative, got %g", c.ParallaxScale)
	}
	var errs []error
	for _, f := range []struct {
		name string
		v    string
	}{
		{"hoverClass", c.HoverClass},
		{"activeClass", c.ActiveClass},
		{"labelClass", c.LabelClass},
		{"labelInnerClass", c.LabelInnerClass},
		{"fillerClass", c.FillerClass},
	} {
		if f.v == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", f.name))
		}
	}
	return errors.Join(errs...)
}
