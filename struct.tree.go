package treevol

import "fmt"

// Tree is one forest-inventory observation. Identifying keys are carried
// verbatim as read so processed output re-joins its source table.
type Tree struct {
	Col, Row, PlotNumber, TreeNo string

	DiameterP  float64 // diameter at breast height (cm)
	HeightM    float64 // field-measured height (m), zero when not taken
	HeightP    float64 // model-predicted height (m)
	CrownClass int

	// derived
	D, H        float64
	VolumeRatio float64
}

// NewTree builds a record and derives its working diameter and height.
func NewTree(d13, heightM, heightP float64, crownClass int) Tree {
	t := Tree{DiameterP: d13, HeightM: heightM, HeightP: heightP, CrownClass: crownClass}
	t.D = t.DiameterP
	t.H = t.effectiveHeight()
	return t
}

// effectiveHeight selects the working height. For broken tops the field
// measurement is the height of the broken stem and is used as-is (zero when
// not taken); otherwise the measurement stands in for the prediction when
// present.
func (t *Tree) effectiveHeight() float64 {
	if t.CrownClass == BrokenTop {
		return t.HeightM
	}
	if t.HeightM > 0 {
		return t.HeightM
	}
	return t.HeightP
}

func (t *Tree) key() string {
	return fmt.Sprintf("plot %s no %s", t.PlotNumber, t.TreeNo)
}
