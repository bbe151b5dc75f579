package colors

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Color
		wantErr bool
	}{
		{name: "rgb", in: "#446688", want: Color{0x44, 0x66, 0x88, 0xFF}},
		{name: "rgba", in: "#44668880", want: Color{0x44, 0x66, 0x88, 0x80}},
		{name: "no hash", in: "ffffff", want: White},
		{name: "short", in: "#fff", wantErr: true},
		{name: "not hex", in: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, c := range []Color{White, DarkGray, Red.WithAlpha(0x40)} {
		got, err := ParseHex(c.String())
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseHex(%q) = %v, want %v", c.String(), got, c)
		}
	}
}

func TestRGBAIsPremultiplied(t *testing.T) {
	r, _, _, a := White.WithAlpha(0).RGBA()
	if r != 0 || a != 0 {
		t.Errorf("transparent white RGBA = (%d, %d), want (0, 0)", r, a)
	}
	r, _, _, a = White.RGBA()
	if r != 0xFFFF || a != 0xFFFF {
		t.Errorf("white RGBA = (%d, %d), want (0xFFFF, 0xFFFF)", r, a)
	}
}
