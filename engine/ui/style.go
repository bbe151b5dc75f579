package ui

import (
	"log/slog"

	"github.com/hubastard/nui/engine/colors"
)

// Style is the flat set of colors and metrics widgets draw with.
type Style struct {
	Text         colors.Color
	WindowBg     colors.Color
	TitleBg      colors.Color
	ButtonIdle   colors.Color
	ButtonHot    colors.Color
	ButtonActive colors.Color
	Border       colors.Color

	BorderSize int
	PaddingX   int
	PaddingY   int
	Margin     int
	LineHeight int // text line allowance of a title bar
}

func DefaultStyle() Style {
	return Style{
		Text:         colors.White,
		WindowBg:     colors.RGB(0x32, 0x32, 0x32),
		TitleBg:      colors.RGB(0x19, 0x19, 0x19),
		ButtonIdle:   colors.RGB(0x44, 0x44, 0x44),
		ButtonHot:    colors.RGB(0x66, 0x66, 0x66),
		ButtonActive: colors.RGB(0x22, 0x22, 0x22),
		Border:       colors.RGB(0x19, 0x19, 0x19),
		BorderSize:   1,
		PaddingX:     5,
		PaddingY:     5,
		Margin:       10,
		LineHeight:   13,
	}
}

// Config sizes the context's fixed buffers. Zero fields take the defaults.
type Config struct {
	MaxCommands     int
	MaxContainers   int
	MaxLayoutDepth  int
	MaxScissorDepth int

	Style  Style
	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		MaxCommands:     1024,
		MaxContainers:   64,
		MaxLayoutDepth:  16,
		MaxScissorDepth: 32,
		Style:           DefaultStyle(),
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxCommands <= 0 {
		c.MaxCommands = d.MaxCommands
	}
	if c.MaxContainers <= 0 {
		c.MaxContainers = d.MaxContainers
	}
	if c.MaxLayoutDepth <= 0 {
		c.MaxLayoutDepth = d.MaxLayoutDepth
	}
	if c.MaxScissorDepth <= 0 {
		c.MaxScissorDepth = d.MaxScissorDepth
	}
	if c.Style == (Style{}) {
		c.Style = d.Style
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
