// Package styles defines the visual styling for dict's terminal output.
//
// Styles have semantic names (Word, Phonetics, PartOfSpeech, Urls, Label,
// Error) and adaptive colors, both defined in the embedded
// styles.yaml. A Registry binds them to one lipgloss renderer, so color
// detection follows the writer the report goes to.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Style names used by the renderer
const (
	Word         = "Word"
	Phonetics    = "Phonetics"
	PartOfSpeech = "PartOfSpeech"
	Urls         = "Urls"
	Label        = "Label"
	Error        = "Error"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

var defaultConfig Config

func init() {
	cfg, err := ParseConfig(embeddedStyles)
	if err != nil {
		// Unstyled output is still correct output
		cfg = Config{}
	}
	defaultConfig = cfg
}

// ParseConfig parses a styles YAML document
func ParseConfig(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse styles data: %w", err)
	}
	return config, nil
}

// NewRegistry builds the embedded styles for renderer r
func NewRegistry(r *lipgloss.Renderer) Registry {
	return defaultConfig.Build(r)
}

// Build constructs a registry bound to renderer r
func (c Config) Build(r *lipgloss.Renderer) Registry {
	colors := make(map[string]lipgloss.AdaptiveColor, len(c.Colors))
	for name, def := range c.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	registry := make(Registry, len(c.Styles))
	for name, def := range c.Styles {
		registry[name] = buildStyle(r.NewStyle(), def, colors)
	}
	return registry
}

// buildStyle applies a style definition on top of base
func buildStyle(base lipgloss.Style, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := base

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	return style
}

// Get safely retrieves a style from the registry
func (reg Registry) Get(name string) lipgloss.Style {
	if style, ok := reg[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render renders s with the named style
func (reg Registry) Render(name, s string) string {
	return reg.Get(name).Render(s)
}
