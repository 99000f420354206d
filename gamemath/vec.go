package gamemath

// Vec2 is a 2D vector used for velocities and deltas. No normalization is
// enforced; callers clamp ranges themselves (e.g. max speed).
type Vec2 struct {
	X, Y float64
}

// ApplyFriction scales speed by the per-frame friction factor, snapping to
// zero once the remainder is negligible.
func ApplyFriction(speedX, friction float64) float64 {
	speedX *= friction
	if speedX < 0.1 && speedX > -0.1 {
		return 0
	}
	return speedX
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp constrains a value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp moves current toward target by factor t.
func Lerp(current, target, t float64) float64 {
	return current + (target-current)*t
}
