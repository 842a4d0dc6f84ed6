package game

import "testing"

func TestChargeDutyCycle(t *testing.T) {
	// With 50 on / 120 off the gap is lethal for cycle time 0..49 and safe
	// for 50..169, repeating with period 170.
	c := &Charge{OnTicks: 50, OffTicks: 120}

	for _, period := range []int{0, 170, 340} {
		for tick := 0; tick < 170; tick++ {
			c.Cycle = period + tick
			want := tick < 50
			if got := c.Active(); got != want {
				t.Fatalf("Active() at cycle %d = %v, want %v", c.Cycle, got, want)
			}
		}
	}
}

func TestChargeStartsInOffPhase(t *testing.T) {
	c := NewCharge()

	if c.Active() {
		t.Error("fresh charge should start inactive")
	}

	// It stays off through the whole off phase, then switches on
	for i := 0; i < ChargeOffTicks-1; i++ {
		c.Advance()
		if c.Active() {
			t.Fatalf("charge active %d ticks after creation, still inside off phase", i+1)
		}
	}
	c.Advance()
	if !c.Active() {
		t.Error("charge should switch on after the off phase elapses")
	}
}

func TestChargeDegeneratePeriod(t *testing.T) {
	c := &Charge{}
	if c.Active() {
		t.Error("zero-period charge must never be active")
	}
}
