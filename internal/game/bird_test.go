package game

import (
	"math"
	"testing"
)

func TestBirdFreeFallReference(t *testing.T) {
	// One tick of parabolic free fall from rest at y=300 with gravity 0.4:
	// velocity becomes 0.4, position 300.4.
	b := Bird{X: BirdStartX, Y: 300}

	b.Advance(0.4, 12, CurveParabolic, 6.5)

	if math.Abs(b.Vel-0.4) > 1e-12 {
		t.Errorf("velocity = %v, want 0.4", b.Vel)
	}
	if math.Abs(b.Y-300.4) > 1e-12 {
		t.Errorf("y = %v, want 300.4", b.Y)
	}
	if b.TicksSinceFlap != 1 {
		t.Errorf("TicksSinceFlap = %d, want 1", b.TicksSinceFlap)
	}
}

func TestBirdFlapResetsTimer(t *testing.T) {
	b := NewBird()
	for i := 0; i < 10; i++ {
		b.Advance(0.4, 12, CurveParabolic, 6.5)
	}
	if b.TicksSinceFlap != 10 {
		t.Fatalf("TicksSinceFlap = %d, want 10", b.TicksSinceFlap)
	}

	b.Flap(6.5, CurveParabolic)

	if b.TicksSinceFlap != 0 {
		t.Errorf("TicksSinceFlap after flap = %d, want 0", b.TicksSinceFlap)
	}
	if b.Vel != -6.5 {
		t.Errorf("velocity after flap = %v, want -6.5", b.Vel)
	}
}

func TestBirdMaxFallSpeed(t *testing.T) {
	b := NewBird()
	b.Vel = 11.9

	b.Advance(0.4, 12, CurveParabolic, 6.5)

	if b.Vel != 12 {
		t.Errorf("velocity = %v, want clamped 12", b.Vel)
	}
}

func TestBirdOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"mid field", 300, false},
		{"touching ground line", GroundY - BirdH, true},
		{"below ground line", GroundY, true},
		{"at top edge", 0, false},
		{"above top edge", -1, true},
		{"just above ground", GroundY - BirdH - 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bird{X: BirdStartX, Y: tt.y}
			if got := b.OutOfBounds(); got != tt.want {
				t.Errorf("OutOfBounds() at y=%v = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}
