package core

import "testing"

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 3, 3), true},
		{"touching right edge", NewRect(10, 0, 5, 5), false},
		{"touching bottom edge", NewRect(0, 10, 5, 5), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
		{"same rect", NewRect(0, 0, 10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("reverse Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestRectOverlapsX(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	// Vertically disjoint but horizontally overlapping
	b := NewRect(5, 100, 10, 10)
	if !a.OverlapsX(b) {
		t.Error("OverlapsX should ignore vertical separation")
	}

	c := NewRect(10, 0, 5, 5)
	if a.OverlapsX(c) {
		t.Error("touching edges should not overlap")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %v, want 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %v, want 8", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 4 || cy != 5.5 {
		t.Errorf("Center() = (%v, %v), want (4, 5.5)", cx, cy)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(5, 0, 10); got != 5 {
		t.Errorf("ClampF(5, 0, 10) = %v, want 5", got)
	}
	if got := ClampF(-1, 0, 10); got != 0 {
		t.Errorf("ClampF(-1, 0, 10) = %v, want 0", got)
	}
	if got := ClampF(11, 0, 10); got != 10 {
		t.Errorf("ClampF(11, 0, 10) = %v, want 10", got)
	}
}

func TestDist(t *testing.T) {
	if got := Dist(0, 0, 3, 4); got != 5 {
		t.Errorf("Dist(0,0,3,4) = %v, want 5", got)
	}
}
