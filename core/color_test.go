package core

import "testing"

func TestBlend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	if got := dst.Blend(src, 0); got != dst {
		t.Errorf("Alpha 0 must return dst, got %+v", got)
	}
	if got := dst.Blend(src, 1); got != src {
		t.Errorf("Alpha 1 must return src, got %+v", got)
	}

	got := dst.Blend(src, 0.5)
	if got.R != 100 || got.G != 50 || got.B != 25 {
		t.Errorf("Half blend over black: got %+v", got)
	}
}

func TestAddClamps(t *testing.T) {
	a := RGB{200, 10, 255}
	b := RGB{100, 20, 1}
	got := a.Add(b)
	if got.R != 255 || got.G != 30 || got.B != 255 {
		t.Errorf("Additive blend: got %+v", got)
	}
}

func TestScale(t *testing.T) {
	c := RGB{100, 200, 50}
	if got := c.Scale(0.5); got.R != 50 || got.G != 100 || got.B != 25 {
		t.Errorf("Scale 0.5: got %+v", got)
	}
	if got := c.Scale(-1); got != RGBBlack {
		t.Errorf("Negative scale must clamp to black, got %+v", got)
	}
	if got := c.Scale(2); got != c {
		t.Errorf("Scale above 1 must return the color unchanged, got %+v", got)
	}
}

func TestColorLerp(t *testing.T) {
	a := RGB{0, 100, 200}
	b := RGB{100, 200, 0}
	got := a.Lerp(b, 0.5)
	if got.R != 50 || got.G != 150 || got.B != 100 {
		t.Errorf("Lerp 0.5: got %+v", got)
	}
	if got := a.Lerp(b, -1); got != a {
		t.Errorf("Lerp t<0 must clamp to a, got %+v", got)
	}
	if got := a.Lerp(b, 2); got != b {
		t.Errorf("Lerp t>1 must clamp to b, got %+v", got)
	}
}
