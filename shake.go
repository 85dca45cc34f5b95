package gesture

import "math"

// motion handles one device-motion sample. The baseline always follows the
// latest reading; a shake fires when any axis jumped by more than
// shakeThreshold and the cooldown since the previous shake has passed.
func (r *recognizer) motion(e MotionEvent) {
	if !r.active() || r.cb.OnShake == nil {
		return
	}
	acc := e.AccelerationIncludingGravity
	if acc == nil {
		return
	}

	dx := math.Abs(acc.X - r.shakeBase.X)
	dy := math.Abs(acc.Y - r.shakeBase.Y)
	dz := math.Abs(acc.Z - r.shakeBase.Z)
	r.shakeBase = *acc

	if math.Max(dx, math.Max(dy, dz)) <= shakeThreshold {
		return
	}
	now := r.clock.NowMs()
	if r.hasShake && now-r.lastShake < shakeCooldown {
		return
	}
	r.lastShake = now
	r.hasShake = true
	debugf("%s: shake (dx=%.1f dy=%.1f dz=%.1f)", r.name, dx, dy, dz)
	r.cb.OnShake()
}
