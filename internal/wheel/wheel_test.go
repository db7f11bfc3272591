// internal/wheel/wheel_test.go
package wheel

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// gradient строит непрозрачное изображение: красный растёт по x, зелёный по y.
// Небольшие сдвиги при пересэмплировании дают небольшие изменения значений.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 3), uint8(y * 3), 100, 255})
		}
	}
	return img
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestAngle(t *testing.T) {
	tests := []struct {
		axis float64
		want float64
	}{
		{0, 0},
		{0.5, 135},
		{-0.5, -135},
		{1, 270},
		{-1, -270},
		{0.25, 67.5},
	}
	for _, tt := range tests {
		if got := Angle(tt.axis, 270); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Angle(%v) = %v, want %v", tt.axis, got, tt.want)
		}
	}
}

func TestFitPreservesAspect(t *testing.T) {
	tests := []struct {
		w, h, side   int
		wantW, wantH int
	}{
		{200, 100, 90, 90, 45},
		{200, 100, 360, 360, 180},
		{100, 300, 180, 60, 180},
		{256, 256, 180, 180, 180},
		{50, 50, 360, 360, 360},
	}
	for _, tt := range tests {
		got := Fit(gradient(tt.w, tt.h), tt.side)
		b := got.Bounds()
		if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("Fit(%dx%d, %d) = %dx%d, want %dx%d", tt.w, tt.h, tt.side, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
		}
		if b.Dx() > tt.side || b.Dy() > tt.side {
			t.Errorf("Fit(%dx%d, %d) exceeds side", tt.w, tt.h, tt.side)
		}
	}
}

func TestFitAllSides(t *testing.T) {
	src := gradient(333, 200)
	want := 333.0 / 200.0
	for side := 90; side <= 360; side += 15 {
		b := Fit(src, side).Bounds()
		if b.Dx() > side || b.Dy() > side {
			t.Fatalf("side %d: got %v", side, b)
		}
		if got := float64(b.Dx()) / float64(b.Dy()); math.Abs(got-want) > 0.02 {
			t.Errorf("side %d: aspect %v, want %v", side, got, want)
		}
	}
}

func TestFitEmpty(t *testing.T) {
	if got := Fit(image.NewRGBA(image.Rectangle{}), 180); !got.Bounds().Empty() {
		t.Errorf("expected empty image, got %v", got.Bounds())
	}
}

func TestRotateZeroIsIdentity(t *testing.T) {
	src := gradient(40, 30)
	got := Rotate(src, 0)
	if got.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v", got.Bounds())
	}
	for i := range src.Pix {
		if got.Pix[i] != src.Pix[i] {
			t.Fatalf("pixel data differs at byte %d", i)
		}
	}
	if &got.Pix[0] == &src.Pix[0] {
		t.Error("Rotate should return a copy")
	}
}

func TestRotateClockwise(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+2], src.Pix[i+3] = 255, 255 // blue
	}
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})

	got := Rotate(src, 90)
	if got.Bounds().Dx() != 4 || got.Bounds().Dy() != 4 {
		t.Fatalf("90 degree rotation of a square must keep its size, got %v", got.Bounds())
	}
	c := got.RGBAAt(3, 0)
	if c.R < 250 || c.B > 5 {
		t.Errorf("top-left marker should move to top-right, got %v", c)
	}
	if c := got.RGBAAt(0, 0); c.R > 5 {
		t.Errorf("top-left should no longer be red, got %v", c)
	}
}

func TestRotatedBoundsGrow(t *testing.T) {
	tests := []struct {
		deg          float64
		wantW, wantH int
	}{
		{0, 100, 50},
		{90, 50, 100},
		{180, 100, 50},
		{-270, 50, 100},
		{270, 50, 100},
		{45, 107, 107},
	}
	for _, tt := range tests {
		w, h := RotatedBounds(100, 50, tt.deg)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("RotatedBounds(100, 50, %v) = %dx%d, want %dx%d", tt.deg, w, h, tt.wantW, tt.wantH)
		}
	}

	got := Rotate(gradient(100, 50), 45)
	if got.Bounds().Dx() != 107 || got.Bounds().Dy() != 107 {
		t.Errorf("Rotate bounds = %v", got.Bounds())
	}
}

func TestRotateRoundTrip(t *testing.T) {
	const size = 64
	src := gradient(size, size)

	for _, deg := range []float64{30, -75, 135} {
		back := image.NewRGBA(image.Rect(0, 0, size, size))
		Compose(back, Rotate(Rotate(src, deg), -deg))

		// Сравниваем только центральный круг: углы смешиваются с прозрачными
		// полями.
		maxDiff := 0
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				dx, dy := float64(x)-size/2, float64(y)-size/2
				if dx*dx+dy*dy > 20*20 {
					continue
				}
				a, b := src.RGBAAt(x, y), back.RGBAAt(x, y)
				for _, d := range []int{
					int(a.R) - int(b.R), int(a.G) - int(b.G),
					int(a.B) - int(b.B), int(a.A) - int(b.A),
				} {
					if d < 0 {
						d = -d
					}
					maxDiff = max(maxDiff, d)
				}
			}
		}
		if maxDiff > 8 {
			t.Errorf("round trip at %v degrees: max channel diff %d", deg, maxDiff)
		}
	}
}

func TestComposeCentersAndClips(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	dst := solid(10, 10, color.RGBA{0, 255, 0, 255})

	Compose(dst, solid(4, 4, red))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 3 && x < 7 && y >= 3 && y < 7
			got := dst.RGBAAt(x, y)
			if inside && got != red {
				t.Fatalf("(%d,%d) = %v, want red", x, y, got)
			}
			if !inside && got != (color.RGBA{}) {
				t.Fatalf("(%d,%d) = %v, want transparent", x, y, got)
			}
		}
	}

	Compose(dst, solid(12, 12, red))
	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 255 || dst.Pix[i+3] != 255 {
			t.Fatalf("oversized image should cover the whole frame, byte %d", i)
		}
	}

	Compose(dst, image.NewRGBA(image.Rectangle{}))
	for _, b := range dst.Pix {
		if b != 0 {
			t.Fatal("empty image should leave a blank frame")
		}
	}
}

func TestRendererResizeAndSource(t *testing.T) {
	r := NewRenderer(gradient(200, 100), 180, 270)
	if b := r.Working().Bounds(); b.Dx() != 180 || b.Dy() != 90 {
		t.Fatalf("working = %v, want 180x90", b)
	}

	frame, angle := r.Render(0.5)
	if angle != 135 {
		t.Errorf("angle = %v, want 135", angle)
	}
	if b := frame.Bounds(); b.Dx() != 180 || b.Dy() != 180 {
		t.Errorf("frame = %v, want 180x180", b)
	}

	frame = r.Resize(90)
	if b := r.Working().Bounds(); b.Dx() != 90 || b.Dy() != 45 {
		t.Errorf("working after resize = %v, want 90x45", b)
	}
	if b := frame.Bounds(); b.Dx() != 90 || b.Dy() != 90 {
		t.Errorf("frame after resize = %v", b)
	}
	if r.LastAngle() != 135 || r.Side() != 90 {
		t.Errorf("resize lost state: angle=%v side=%d", r.LastAngle(), r.Side())
	}

	frame = r.SetSource(nil)
	for _, b := range frame.Pix {
		if b != 0 {
			t.Fatal("missing source should render a blank frame")
		}
	}
	if r.Side() != 90 {
		t.Errorf("side changed on source swap: %d", r.Side())
	}
}

func TestRendererZeroAngleFrameMatchesWorking(t *testing.T) {
	r := NewRenderer(gradient(60, 60), 90, 270)
	frame, _ := r.Render(0)
	w := r.Working()
	for y := 0; y < 90; y++ {
		for x := 0; x < 90; x++ {
			if frame.RGBAAt(x, y) != w.RGBAAt(x, y) {
				t.Fatalf("(%d,%d) differs", x, y)
			}
		}
	}
}
