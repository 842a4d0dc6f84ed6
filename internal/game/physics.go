package game

import "math"

// Curve selects the velocity-update policy applied to the bird each tick.
type Curve string

const (
	CurveParabolic   Curve = "parabolic"
	CurveLinear      Curve = "linear"
	CurveExponential Curve = "exponential"
	CurveSine        Curve = "sine"
)

// Tuning for the non-parabolic curves.
const (
	linearAscentTicks  = 20  // Ticks of gravity-free ascent after a flap
	linearGravityBoost = 1.2 // Gravity multiplier once the hold window ends

	expDecayRate = 0.12 // Multiplicative velocity decay per tick while ascending

	sineAscentTicks    = 25  // Ticks the cosine envelope shapes the ascent
	sineBlend          = 0.2 // Fraction blended toward the envelope target per tick
	sineGravityDamping = 0.3 // Gravity contribution while inside the envelope
)

// ParseCurve maps a configuration string to a Curve.
// Unrecognized values fall back to parabolic.
func ParseCurve(s string) Curve {
	switch Curve(s) {
	case CurveLinear, CurveExponential, CurveSine:
		return Curve(s)
	default:
		return CurveParabolic
	}
}

// NextVelocity returns the bird's velocity after one tick under the given
// curve. Negative velocity is upward. ticksSinceImpulse counts simulated
// ticks since the last flap; impulse is the configured flap magnitude,
// which the sine curve needs to shape its envelope. Pure and total.
func NextVelocity(v, gravity float64, curve Curve, ticksSinceImpulse int, impulse float64) float64 {
	switch curve {
	case CurveLinear:
		// Velocity holds flat during the ascent window, then gravity
		// comes back harder for a sharp turnover.
		if v < 0 && ticksSinceImpulse < linearAscentTicks {
			return v
		}
		return v + gravity*linearGravityBoost

	case CurveExponential:
		// Ascent bleeds off multiplicatively with a half-strength
		// gravity term; descent is plain gravity.
		if v < 0 {
			return v*(1-expDecayRate) + gravity*0.5
		}
		return v + gravity

	case CurveSine:
		// Ascent chases a cosine envelope scaled by the impulse,
		// gravity damped while the envelope is in charge.
		if v < 0 && ticksSinceImpulse < sineAscentTicks {
			target := -impulse * math.Cos(math.Pi*float64(ticksSinceImpulse)/sineAscentTicks)
			return v*(1-sineBlend) + target*sineBlend + gravity*sineGravityDamping
		}
		return v + gravity

	default: // parabolic
		return v + gravity
	}
}

// ImpulseVelocity returns the bird's velocity immediately after a flap.
// Each curve starts its ascent differently: exponential must start strong
// because it decays fast, linear holds so it starts shallow.
func ImpulseVelocity(curve Curve, magnitude float64) float64 {
	switch curve {
	case CurveLinear:
		return -0.5 * magnitude
	case CurveExponential:
		return -1.8 * magnitude
	case CurveSine:
		return -0.9 * magnitude
	default: // parabolic
		return -magnitude
	}
}
