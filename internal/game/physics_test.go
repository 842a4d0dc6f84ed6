package game

import (
	"math"
	"testing"
)

func TestParseCurveDefaultsToParabolic(t *testing.T) {
	tests := []struct {
		in   string
		want Curve
	}{
		{"parabolic", CurveParabolic},
		{"linear", CurveLinear},
		{"exponential", CurveExponential},
		{"sine", CurveSine},
		{"", CurveParabolic},
		{"banana", CurveParabolic},
		{"PARABOLIC", CurveParabolic},
	}

	for _, tt := range tests {
		if got := ParseCurve(tt.in); got != tt.want {
			t.Errorf("ParseCurve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParabolicVelocity(t *testing.T) {
	// Reference behavior: gravity accumulates every tick
	if got := NextVelocity(0, 0.4, CurveParabolic, 0, 6.5); got != 0.4 {
		t.Errorf("NextVelocity(0) = %v, want 0.4", got)
	}
	if got := NextVelocity(0.4, 0.4, CurveParabolic, 1, 6.5); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("NextVelocity(0.4) = %v, want 0.8", got)
	}
}

func TestLinearVelocityHold(t *testing.T) {
	// Ascending inside the hold window: velocity unchanged
	if got := NextVelocity(-3, 0.4, CurveLinear, 5, 6.5); got != -3 {
		t.Errorf("velocity inside hold window = %v, want -3", got)
	}

	// Window elapsed: boosted gravity applies
	want := -3 + 0.4*1.2
	if got := NextVelocity(-3, 0.4, CurveLinear, linearAscentTicks, 6.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("velocity after hold window = %v, want %v", got, want)
	}

	// Descending: boosted gravity even inside the window
	want = 2 + 0.4*1.2
	if got := NextVelocity(2, 0.4, CurveLinear, 5, 6.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("descending velocity = %v, want %v", got, want)
	}
}

func TestExponentialVelocityDecay(t *testing.T) {
	// Ascending: multiplicative decay plus half-strength gravity
	want := -10*(1-expDecayRate) + 0.4*0.5
	if got := NextVelocity(-10, 0.4, CurveExponential, 3, 6.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("ascending velocity = %v, want %v", got, want)
	}

	// Descending: full gravity
	if got := NextVelocity(1, 0.4, CurveExponential, 30, 6.5); math.Abs(got-1.4) > 1e-12 {
		t.Errorf("descending velocity = %v, want 1.4", got)
	}
}

func TestSineVelocityEnvelope(t *testing.T) {
	// At tick 0 the envelope target is -impulse (cos 0 = 1)
	v := -5.85 // sine impulse for magnitude 6.5
	target := -6.5
	want := v*(1-sineBlend) + target*sineBlend + 0.4*sineGravityDamping
	if got := NextVelocity(v, 0.4, CurveSine, 0, 6.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("velocity at envelope start = %v, want %v", got, want)
	}

	// After the window: plain gravity
	if got := NextVelocity(-1, 0.4, CurveSine, sineAscentTicks, 6.5); math.Abs(got-(-0.6)) > 1e-12 {
		t.Errorf("velocity after window = %v, want -0.6", got)
	}

	// Descending: plain gravity regardless of window
	if got := NextVelocity(2, 0.4, CurveSine, 5, 6.5); math.Abs(got-2.4) > 1e-12 {
		t.Errorf("descending velocity = %v, want 2.4", got)
	}
}

func TestImpulseVelocity(t *testing.T) {
	tests := []struct {
		curve Curve
		want  float64
	}{
		{CurveParabolic, -6.5},
		{CurveLinear, -3.25},
		{CurveExponential, -11.7},
		{CurveSine, -5.85},
		{Curve("unknown"), -6.5},
	}

	for _, tt := range tests {
		if got := ImpulseVelocity(tt.curve, 6.5); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ImpulseVelocity(%q, 6.5) = %v, want %v", tt.curve, got, tt.want)
		}
	}
}

func TestVelocityFunctionsArePure(t *testing.T) {
	// Same inputs, same outputs, any number of times
	for i := 0; i < 10; i++ {
		if got := NextVelocity(-2.5, 0.4, CurveSine, 7, 6.5); got != NextVelocity(-2.5, 0.4, CurveSine, 7, 6.5) {
			t.Fatalf("NextVelocity is not deterministic at call %d: %v", i, got)
		}
	}
}
