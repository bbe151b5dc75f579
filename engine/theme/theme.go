// Package theme loads ui limits and style from a TOML file:
//
//	[limits]
//	max_commands = 2048
//
//	[style]
//	text = "#FFFFFF"
//	button_hot = "#666666"
//	margin = 8
//
// Keys that are absent keep their ui.DefaultConfig values.
package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/hubastard/nui/engine/colors"
	"github.com/hubastard/nui/engine/ui"
)

type File struct {
	Limits Limits `toml:"limits"`
	Style  Style  `toml:"style"`
}

type Limits struct {
	MaxCommands     *int `toml:"max_commands"`
	MaxContainers   *int `toml:"max_containers"`
	MaxLayoutDepth  *int `toml:"max_layout_depth"`
	MaxScissorDepth *int `toml:"max_scissor_depth"`
}

// Style mirrors ui.Style with colors written as "#RRGGBB" or "#RRGGBBAA".
type Style struct {
	Text         *string `toml:"text"`
	WindowBg     *string `toml:"window_bg"`
	TitleBg      *string `toml:"title_bg"`
	ButtonIdle   *string `toml:"button_idle"`
	ButtonHot    *string `toml:"button_hot"`
	ButtonActive *string `toml:"button_active"`
	Border       *string `toml:"border"`

	BorderSize *int `toml:"border_size"`
	PaddingX   *int `toml:"padding_x"`
	PaddingY   *int `toml:"padding_y"`
	Margin     *int `toml:"margin"`
	LineHeight *int `toml:"line_height"`
}

// Load reads path and applies it over ui.DefaultConfig.
func Load(path string) (ui.Config, error) { return LoadOver(path, ui.DefaultConfig()) }

// LoadOver reads path and applies it over base, so keys the file leaves
// out keep base's values rather than the defaults.
func LoadOver(path string, base ui.Config) (ui.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ui.Config{}, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	cfg, err := ParseOver(data, base)
	if err != nil {
		return ui.Config{}, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (ui.Config, error) { return ParseOver(data, ui.DefaultConfig()) }

func ParseOver(data []byte, base ui.Config) (ui.Config, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return ui.Config{}, err
	}
	if err := f.Apply(&base); err != nil {
		return ui.Config{}, err
	}
	return base, nil
}

// Apply overwrites the fields of cfg that f sets.
func (f *File) Apply(cfg *ui.Config) error {
	setInt(&cfg.MaxCommands, f.Limits.MaxCommands)
	setInt(&cfg.MaxContainers, f.Limits.MaxContainers)
	setInt(&cfg.MaxLayoutDepth, f.Limits.MaxLayoutDepth)
	setInt(&cfg.MaxScissorDepth, f.Limits.MaxScissorDepth)

	s, st := &cfg.Style, &f.Style
	for _, c := range []struct {
		key string
		dst *colors.Color
		src *string
	}{
		{"text", &s.Text, st.Text},
		{"window_bg", &s.WindowBg, st.WindowBg},
		{"title_bg", &s.TitleBg, st.TitleBg},
		{"button_idle", &s.ButtonIdle, st.ButtonIdle},
		{"button_hot", &s.ButtonHot, st.ButtonHot},
		{"button_active", &s.ButtonActive, st.ButtonActive},
		{"border", &s.Border, st.Border},
	} {
		if c.src == nil {
			continue
		}
		v, err := colors.ParseHex(*c.src)
		if err != nil {
			return fmt.Errorf("style.%s: %w", c.key, err)
		}
		*c.dst = v
	}

	setInt(&s.BorderSize, st.BorderSize)
	setInt(&s.PaddingX, st.PaddingX)
	setInt(&s.PaddingY, st.PaddingY)
	setInt(&s.Margin, st.Margin)
	setInt(&s.LineHeight, st.LineHeight)
	return nil
}

// Encode writes cfg back out as a complete theme file.
func Encode(cfg ui.Config) ([]byte, error) {
	hex := func(c colors.Color) *string {
		s := c.String()
		return &s
	}
	s := cfg.Style
	return toml.Marshal(File{
		Limits: Limits{
			MaxCommands:     &cfg.MaxCommands,
			MaxContainers:   &cfg.MaxContainers,
			MaxLayoutDepth:  &cfg.MaxLayoutDepth,
			MaxScissorDepth: &cfg.MaxScissorDepth,
		},
		Style: Style{
			Text:         hex(s.Text),
			WindowBg:     hex(s.WindowBg),
			TitleBg:      hex(s.TitleBg),
			ButtonIdle:   hex(s.ButtonIdle),
			ButtonHot:    hex(s.ButtonHot),
			ButtonActive: hex(s.ButtonActive),
			Border:       hex(s.Border),
			BorderSize:   &s.BorderSize,
			PaddingX:     &s.PaddingX,
			PaddingY:     &s.PaddingY,
			Margin:       &s.Margin,
			LineHeight:   &s.LineHeight,
		},
	})
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
