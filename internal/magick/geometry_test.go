package magick

import "testing"

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name       string
		src        Size
		maxW, maxH int
		want       Size
	}{
		{"landscape", Size{800, 600}, 200, 200, Size{200, 150}},
		{"portrait", Size{600, 800}, 200, 200, Size{150, 200}},
		{"truncates", Size{1000, 333}, 300, 300, Size{300, 99}},
		{"upscale", Size{100, 50}, 400, 400, Size{400, 200}},
		{"exact ratio", Size{400, 300}, 800, 600, Size{800, 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitWithin(tt.src, tt.maxW, tt.maxH); got != tt.want {
				t.Fatalf("FitWithin(%v, %d, %d) = %v, want %v", tt.src, tt.maxW, tt.maxH, got, tt.want)
			}
		})
	}
}

func TestFitWithinStaysInsideBox(t *testing.T) {
	for w := 1; w <= 97; w += 6 {
		for h := 1; h <= 97; h += 8 {
			src := Size{w * 13, h * 7}
			got := FitWithin(src, 120, 80)
			if got.Width > 120 || got.Height > 80 {
				t.Fatalf("FitWithin(%v) = %v exceeds box", src, got)
			}
			if got.Width != 120 && got.Height != 80 {
				t.Fatalf("FitWithin(%v) = %v pins no axis", src, got)
			}
		}
	}
}

func TestCover(t *testing.T) {
	tests := []struct {
		src          Size
		sizeX, sizeY int
		want         Size
	}{
		{Size{800, 600}, 300, 300, Size{400, 300}},
		{Size{600, 800}, 300, 300, Size{300, 400}},
		{Size{800, 600}, 400, 100, Size{400, 300}},
		{Size{300, 300}, 300, 300, Size{300, 300}},
	}
	for _, tt := range tests {
		got := Cover(tt.src, tt.sizeX, tt.sizeY)
		if got != tt.want {
			t.Fatalf("Cover(%v, %d, %d) = %v, want %v", tt.src, tt.sizeX, tt.sizeY, got, tt.want)
		}
		if got.Width < tt.sizeX || got.Height < tt.sizeY {
			t.Fatalf("Cover(%v) = %v does not cover %dx%d", tt.src, got, tt.sizeX, tt.sizeY)
		}
	}
}

func TestFitTo(t *testing.T) {
	if got := FitTo(Size{800, 600}, 400, true); got != (Size{400, 300}) {
		t.Fatalf("FitTo width = %v", got)
	}
	if got := FitTo(Size{800, 600}, 400, false); got != (Size{533, 400}) {
		t.Fatalf("FitTo height = %v", got)
	}
}

func TestMinRatio(t *testing.T) {
	if got := MinRatio(Size{800, 600}, 400, 400); got != (Size{400, 300}) {
		t.Fatalf("MinRatio x-limited = %v", got)
	}
	if got := MinRatio(Size{800, 600}, 400, 100); got != (Size{133, 100}) {
		t.Fatalf("MinRatio y-limited = %v", got)
	}
}

func TestCenterCropOffset(t *testing.T) {
	tests := []struct {
		cur          Size
		sizeX, sizeY int
		x, y         int
	}{
		{Size{400, 300}, 300, 300, 50, 0},
		{Size{300, 400}, 300, 300, 0, 50},
		{Size{401, 300}, 300, 300, 51, 0},
		{Size{300, 300}, 300, 300, 0, 0},
	}
	for _, tt := range tests {
		x, y := CenterCropOffset(tt.cur, tt.sizeX, tt.sizeY)
		if x != tt.x || y != tt.y {
			t.Fatalf("CenterCropOffset(%v) = %d,%d, want %d,%d", tt.cur, x, y, tt.x, tt.y)
		}
	}
}

func TestLandscape(t *testing.T) {
	if !(Size{10, 10}).Landscape() {
		t.Fatal("square should count as landscape")
	}
	if (Size{9, 10}).Landscape() {
		t.Fatal("portrait reported as landscape")
	}
}
