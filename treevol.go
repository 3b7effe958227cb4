// Package treevol estimates standing-tree stem volumes from forest-inventory
// measurements using the Heinonen polynomial taper curve calibrated for
// plantation species. The curve predicts stem diameter at any height from
// diameter at breast height and total height; stem volume follows from a
// fixed-step numerical integration of the squared curve. Trees with broken
// tops (crown class 6) receive a volume-ratio correction comparing the
// integrated volume to the break height against the full predicted stem.
package treevol

import "fmt"

const (
	breastHeight = 1.3  // m, reference height for d13
	stumpHeight  = 0.15 // m, lowest modelled stem section
	intStep      = 0.01 // m, fixed integration step
)

// BrokenTop is the crown-class code denoting a tree with a broken top.
const BrokenTop = 6

// RecordRatio applies the broken-top policy to one record. Intact trees
// always return 1. For broken tops the working (predicted, actual) height
// pair depends on how the break-height measurement relates to the predicted
// height; missing or contradictory measurements fall back to the policy
// factors.
func (par *Parameter) RecordRatio(t *Tree, pol BreakPolicy) (float64, error) {
	if t.CrownClass != BrokenTop {
		return 1., nil
	}
	var predicted, actual float64
	switch h := t.H; {
	case h > 0 && h < t.HeightP:
		predicted, actual = t.HeightP, h
	case h > 0: // measurement meets or exceeds the prediction; assume the unbroken stem stood taller still
		predicted, actual = h*pol.InflateFactor, h
	default: // no measurement; assume the break sits near the top of the predicted stem
		predicted, actual = t.HeightP, t.HeightP*pol.DeflateFactor
	}
	if predicted <= breastHeight {
		return 0., fmt.Errorf("tree %s: working height %.2fm not above breast height", t.key(), predicted)
	}
	return par.VolumeRatio(t.D, predicted, actual, t.CrownClass), nil
}
