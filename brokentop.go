package treevol

// VolumeRatio returns the fraction of the predicted full-stem volume present
// below the actual (broken) height. A degenerate full volume returns exactly
// 1. crownClass is carried for symmetry with the record policy; the
// computation is only meaningful for broken tops.
func (par *Parameter) VolumeRatio(d13, predicted, actual float64, crownClass int) float64 {
	full := par.VolumeTo(d13, predicted, predicted)
	if full <= 0. {
		return 1.
	}
	return par.VolumeTo(d13, predicted, actual) / full
}
