package treevol

import "math"

// VolumeTo approximates the stem volume (m³) from stump height up to the
// cutoff htx by a midpoint Riemann sum over the squared taper curve, sampled
// every centimetre. The taper shape stays anchored to the full height ht
// even for partial cutoffs; a cutoff above ht returns exactly 0, as does a
// NaN bound (a NaN cutoff could never terminate the sum). The lowest 0.15m
// of stem is excluded as stump.
func (par *Parameter) VolumeTo(d13, ht, htx float64) float64 {
	if math.IsNaN(ht) || math.IsNaN(htx) || htx > ht {
		return 0.
	}
	v := 0.
	for i := 0; ; i++ {
		h := stumpHeight + (float64(i)+.5)*intStep
		if h >= htx {
			break
		}
		d := par.DiameterAt(d13, 1.-h/ht, ht) / 100. // cm to m
		v += math.Pi * d * d / 4. * intStep
	}
	return v
}
