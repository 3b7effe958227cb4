package treevol

import (
	"fmt"
	"math"
)

// Height-diameter curves used to fill predicted heights for records that
// arrive without one. Coefficients are supplied pre-calibrated; no fitting
// happens here.

const minCurveDiameter = 0.1 // cm, guards the curve forms against division by zero

// HeightModel is one calibrated height-diameter curve.
type HeightModel struct {
	Kind string  `yaml:"kind"` // curtis, naslund or michailoff
	A    float64 `yaml:"a"`
	B    float64 `yaml:"b"`
}

func (hm HeightModel) Predict(d float64) (float64, error) {
	switch hm.Kind {
	case "curtis":
		return CurtisHeight(d, hm.A, hm.B), nil
	case "naslund":
		return NaslundHeight(d, hm.A, hm.B), nil
	case "michailoff":
		return MichailoffHeight(d, hm.A, hm.B), nil
	}
	return 0., fmt.Errorf("HeightModel: unknown curve %q", hm.Kind)
}

// CurtisHeight: h = 1.3 + a·exp(-b/d)
func CurtisHeight(d, a, b float64) float64 {
	return breastHeight + a*math.Exp(-b/math.Max(d, minCurveDiameter))
}

// NaslundHeight: h = 1.3 + d²/(a+b·d)²
func NaslundHeight(d, a, b float64) float64 {
	den := a + b*d
	if math.Abs(den) < minCurveDiameter {
		den = minCurveDiameter
	}
	return breastHeight + d*d/(den*den)
}

// MichailoffHeight: h = 1.3 + a·exp(-b/d²)
func MichailoffHeight(d, a, b float64) float64 {
	d = math.Max(d, minCurveDiameter)
	return breastHeight + a*math.Exp(-b/(d*d))
}

// SlantCorrectedHeight resolves a stem height measured along sloping ground
// against the horizontal offset of the base.
func SlantCorrectedHeight(height, baseOffset float64) float64 {
	return math.Sqrt(height*height + baseOffset*baseOffset)
}

// FillPredictedHeights predicts height_p from DBH for rows missing one and
// re-derives their working height. Returns the number of rows filled.
func (ds *Dataset) FillPredictedHeights(hm HeightModel) (int, error) {
	n := 0
	for i := range ds.Trees {
		t := &ds.Trees[i]
		if t.HeightP > 0 {
			continue
		}
		h, err := hm.Predict(t.DiameterP)
		if err != nil {
			return n, err
		}
		t.HeightP = h
		t.H = t.effectiveHeight()
		n++
	}
	return n, nil
}
