package treevol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiameterAtCalibration(t *testing.T) {
	// the curve is normalized so the breast-height position reproduces d13
	par := DefaultParameter()
	d := par.DiameterAt(25.4, 1.-1.3/20., 20.)
	require.InEpsilon(t, 25.4, d, 1e-9)
}

func TestDiameterAtCalibrationSweep(t *testing.T) {
	par := DefaultParameter()
	for _, tc := range []struct{ d13, ht float64 }{
		{10., 8.}, {25.4, 20.}, {42.7, 31.5}, {60., 45.}, {5.1, 4.2},
	} {
		d := par.DiameterAt(tc.d13, 1.-1.3/tc.ht, tc.ht)
		assert.InEpsilon(t, tc.d13, d, 1e-9, "d13=%.1f ht=%.1f", tc.d13, tc.ht)
	}
}

func TestDiameterAtTreetop(t *testing.T) {
	// relative position 0 is the treetop, where the stem vanishes
	par := DefaultParameter()
	assert.Zero(t, par.DiameterAt(25.4, 0., 20.))
}

func TestDiameterAtStemBounded(t *testing.T) {
	// the polynomial can wobble, but along a realistic stem it should stay
	// positive and below twice the butt diameter
	par := DefaultParameter()
	butt := par.DiameterAt(25.4, 1.-0.155/20., 20.)
	for h := .155; h < 20.; h += .5 {
		d := par.DiameterAt(25.4, 1.-h/20., 20.)
		assert.Greater(t, d, 0., "h=%.2f", h)
		assert.LessOrEqual(t, d, 2.*butt, "h=%.2f", h)
	}
}

func TestDiameterAtInvalidGeometry(t *testing.T) {
	par := DefaultParameter()
	assert.Panics(t, func() { par.DiameterAt(25.4, .5, 1.3) })
	assert.Panics(t, func() { par.DiameterAt(25.4, .5, .9) })
}

func TestBasisCorrectionAdds(t *testing.T) {
	// correction coefficients shift only the first three terms
	par := DefaultParameter()
	mod := &Parameter{Correction: []float64{.1, -.05, .02}, Base: par.Base}
	x := .75
	want := par.basis(x) + .1*x - .05*x*x + .02*x*x*x
	assert.InDelta(t, want, mod.basis(x), 1e-12)
}
