package magick

import "testing"

func TestParseRGB(t *testing.T) {
	c, err := ParseRGB(" 10, 20,255 ")
	if err != nil {
		t.Fatalf("ParseRGB: %v", err)
	}
	if c != (RGB{10, 20, 255}) || c.String() != "rgb(10,20,255)" {
		t.Fatalf("unexpected color %v", c)
	}
	hex, err := ParseRGB("#ff8000")
	if err != nil {
		t.Fatalf("ParseRGB hex: %v", err)
	}
	if hex != (RGB{255, 128, 0}) {
		t.Fatalf("unexpected hex color %v", hex)
	}
	for _, bad := range []string{"", "1,2", "1,2,3,4", "1,2,256", "a,b,c", "-1,0,0", "#zzzzzz", "#12"} {
		if _, err := ParseRGB(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Quality != 90 || opts.CanvasColor != (RGB{255, 255, 255}) {
		t.Fatalf("unexpected defaults %+v", opts)
	}
	if validQuality(0) || validQuality(101) || !validQuality(1) {
		t.Fatal("quality bounds wrong")
	}
}

func TestScaleFilter(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"smooth":  "",
		"fast":    "point",
		"Lanczos": "lanczos",
		"catrom":  "catrom",
	}
	for method, want := range tests {
		if got := scaleFilter(method); got != want {
			t.Errorf("scaleFilter(%q) = %q, want %q", method, got, want)
		}
	}
}
