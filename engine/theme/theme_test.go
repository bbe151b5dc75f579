package theme

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/hubastard/nui/engine/colors"
	"github.com/hubastard/nui/engine/ui"
)

// Logger is a pointer the files never set.
var ignoreLogger = cmpopts.IgnoreFields(ui.Config{}, "Logger")

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[limits]
max_commands = 2048

[style]
button_hot = "#AA0000"
text = "#00000080"
margin = 4
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := ui.DefaultConfig()
	want.MaxCommands = 2048
	want.Style.ButtonHot = colors.RGB(0xAA, 0, 0)
	want.Style.Text = colors.Black.WithAlpha(0x80)
	want.Style.Margin = 4

	if diff := cmp.Diff(want, cfg, ignoreLogger); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bad toml", in: "[style", want: ""},
		{name: "bad color", in: "[style]\nborder = \"red\"", want: "style.border"},
		{name: "wrong type", in: "[limits]\nmax_commands = \"many\"", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := ui.DefaultConfig()
	in.MaxContainers = 7
	in.Style.WindowBg = colors.RGB(1, 2, 3).WithAlpha(4)

	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(in, out, ignoreLogger); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load = %v, want a not-exist error", err)
	}
}

func TestLoadOverKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("[style]\nbutton_idle = \"#102030\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// A character-cell base, as a terminal front end would pass.
	base := ui.DefaultConfig()
	base.Style.PaddingX, base.Style.PaddingY = 1, 0
	base.Style.Margin, base.Style.LineHeight, base.Style.BorderSize = 1, 1, 0

	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("LoadOver: %v", err)
	}
	want := base
	want.Style.ButtonIdle = colors.RGB(0x10, 0x20, 0x30)
	if diff := cmp.Diff(want, cfg, ignoreLogger); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if base.Style.ButtonIdle == want.Style.ButtonIdle {
		t.Error("LoadOver modified its base argument")
	}
}
