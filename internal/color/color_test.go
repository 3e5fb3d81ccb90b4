package color

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"hex with hash", "#0D1117", Color{13, 17, 23, 1}, false},
		{"hex without hash", "0d1117", Color{13, 17, 23, 1}, false},
		{"short hex", "#fff", Color{255, 255, 255, 1}, false},
		{"short hex with alpha", "#f008", Color{255, 0, 0, 136.0 / 255}, false},
		{"hex with alpha", "#00416280", Color{0, 65, 98, 128.0 / 255}, false},
		{"hex with opaque alpha", "#004162FF", Color{0, 65, 98, 1}, false},
		{"surrounding space", "  #663399 ", Color{102, 51, 153, 1}, false},
		{"rgb", "rgb(102, 51, 153)", Color{102, 51, 153, 1}, false},
		{"rgb space separated", "rgb(102 51 153)", Color{102, 51, 153, 1}, false},
		{"rgba", "rgba(0, 65, 98, 0.5)", Color{0, 65, 98, 0.5}, false},
		{"rgb slash alpha", "rgb(0 65 98 / 25%)", Color{0, 65, 98, 0.25}, false},
		{"rgb percent", "rgb(100%, 50%, 0%)", Color{255, 127, 0, 1}, false},
		{"rgb clamps", "rgb(300, -4, 12)", Color{255, 0, 12, 1}, false},
		{"alpha clamps", "rgba(1, 2, 3, 7)", Color{1, 2, 3, 1}, false},
		{"uppercase function", "RGB(1, 2, 3)", Color{1, 2, 3, 1}, false},
		{"hsl whole numbers", "hsl(270, 50%, 40%)", Color{102, 51, 153, 1}, false},
		{"hsl deg", "hsl(120deg 100% 25%)", Color{0, 128, 0, 1}, false},
		{"hsla", "hsla(0, 100%, 50%, 0.5)", Color{255, 0, 0, 0.5}, false},
		{"hsl grey", "hsl(0, 0%, 50%)", Color{128, 128, 128, 1}, false},
		{"hsl negative hue", "hsl(-240, 100%, 25%)", Color{0, 128, 0, 1}, false},
		{"keyword", "rebeccapurple", Color{102, 51, 153, 1}, false},
		{"keyword case", "DodgerBlue", Color{30, 144, 255, 1}, false},
		{"transparent", "transparent", Color{0, 0, 0, 0}, false},
		{"empty", "", Color{}, true},
		{"hash only", "#", Color{}, true},
		{"word", "test", Color{}, true},
		{"five digits", "#12345", Color{}, true},
		{"invalid hex chars", "#zzzzzz", Color{}, true},
		{"rgb fractional channel", "rgb(1.5, 2, 3)", Color{}, true},
		{"rgb mixed percent", "rgb(10%, 2, 3)", Color{}, true},
		{"rgb two channels", "rgb(1, 2)", Color{}, true},
		{"rgb five values", "rgb(1, 2, 3, 4, 5)", Color{}, true},
		{"rgb unclosed", "rgb(1, 2, 3", Color{}, true},
		{"rgb double alpha", "rgb(1 2 3 / 0.5 0.2)", Color{}, true},
		{"hsl without percent", "hsl(1, 2, 3)", Color{}, true},
		{"unknown function", "hwb(1 2% 3%)", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("Parse(%q) error = %v, want wrapping ErrInvalid", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFractionalHSL(t *testing.T) {
	c, err := Parse("hsl(216, 27.8%, 7.1%)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Integral() {
		t.Fatalf("Parse() = %v, want fractional channels", c)
	}
	if _, err := c.Hex(); !errors.Is(err, ErrFractional) {
		t.Errorf("Hex() error = %v, want ErrFractional", err)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"with hash", "#eb6f92", Color{235, 111, 146, 1}, false},
		{"without hash", "eb6f92", Color{235, 111, 146, 1}, false},
		{"uppercase", "#AABBCC", Color{170, 187, 204, 1}, false},
		{"too short", "#fff", Color{}, true},
		{"too long", "#aabbccdd", Color{}, true},
		{"invalid chars", "#zzzzzz", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"opaque", Color{13, 17, 23, 1}, "#0D1117"},
		{"zero padding", Color{0, 5, 10, 1}, "#00050A"},
		{"half alpha", Color{0, 65, 98, 128.0 / 255}, "#00416280"},
		{"transparent", Color{0, 0, 0, 0}, "#00000000"},
		{"alpha byte FE", Color{0, 0, 0, 254.0 / 255}, "#000000FE"},
		{"alpha rounding to FF", Color{0, 0, 0, 0.999}, "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.color.Hex()
			if err != nil {
				t.Fatalf("Color.Hex() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Color.Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorKey(t *testing.T) {
	got, err := Color{13, 17, 23, 0.5}.Key()
	if err != nil {
		t.Fatalf("Color.Key() error = %v", err)
	}
	if got != "0D1117" {
		t.Errorf("Color.Key() = %q, want %q", got, "0D1117")
	}

	c, err := Parse("hsl(216, 27.8%, 7.1%)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := c.Key(); !errors.Is(err, ErrFractional) {
		t.Errorf("Color.Key() error = %v, want ErrFractional", err)
	}
}

func TestColorRGBString(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"opaque", Color{235, 111, 146, 1}, "rgb(235, 111, 146)"},
		{"half alpha", Color{0, 65, 98, 128.0 / 255}, "rgba(0, 65, 98, 0.5)"},
		{"quarter alpha", Color{255, 255, 180, 64.0 / 255}, "rgba(255, 255, 180, 0.25)"},
		{"transparent", Color{0, 0, 0, 0}, "rgba(0, 0, 0, 0)"},
		{"rounds channels", Color{12.5, 17.1, 23.9, 1}, "rgb(13, 17, 24)"},
		{"alpha byte FE rounds to opaque", Color{0, 0, 0, 254.0 / 255}, "rgb(0, 0, 0)"},
		{"alpha rounding to one", Color{0, 0, 0, 0.996}, "rgb(0, 0, 0)"},
		{"alpha just below rounding", Color{0, 0, 0, 0.994}, "rgba(0, 0, 0, 0.99)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.RGBString(); got != tt.want {
				t.Errorf("Color.RGBString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, code := range []string{"#0D1117", "#00416280", "#FFFFB440", "#663399"} {
		c, err := Parse(code)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", code, err)
		}
		got, err := c.Hex()
		if err != nil {
			t.Fatalf("Hex() error = %v", err)
		}
		if got != code {
			t.Errorf("Parse(%q).Hex() = %q, want %q", code, got, code)
		}
	}
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		want   string
		wantOK bool
	}{
		{"red", Color{255, 0, 0, 1}, "red", true},
		{"rebeccapurple", Color{102, 51, 153, 1}, "rebeccapurple", true},
		{"shared value picks last name", Color{0, 255, 255, 1}, "cyan", true},
		{"no keyword", Color{13, 17, 23, 1}, "", false},
		{"translucent", Color{255, 0, 0, 0.5}, "", false},
		{"fractional", Color{254.5, 0, 0, 1}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Keyword(tt.color)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Keyword(%v) = %q, %v, want %q, %v", tt.color, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestKeywordNames(t *testing.T) {
	names := KeywordNames()
	if len(names) != 148 {
		t.Errorf("len(KeywordNames()) = %d, want 148", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("KeywordNames() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
	for _, name := range names {
		if _, err := Parse(name); err != nil {
			t.Errorf("Parse(%q) error = %v", name, err)
		}
	}
}
