package scratchoff

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"initial", "initial"},
		{"after-scratch", "after-scratch"},
		{"row 1/2", "row_1_2"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
		{"v1.2", "v1.2"},
		{"ë", "_"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := sanitizeLabel(tt.in); got != tt.want {
				t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestScreenshotQueue(t *testing.T) {
	s := newTestScene()
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want screenshots", s.ScreenshotDir)
	}
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.screenshotQueue) != 2 {
		t.Errorf("queue length = %d, want 2", len(s.screenshotQueue))
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		100, 50, 0, 200,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	img := unpremultiply(pixels, 3, 1)

	want := []byte{
		127, 63, 0, 200,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}
