package treevol

import "fmt"

// basis evaluates the relative taper polynomial at relative height position
// xm, measured from the treetop downward. The exponent sequence
// (1,2,3,5,8,13,21,34) is the model's defining signature. Values of xm
// outside [0,1] extrapolate; no bounds are enforced.
func (par *Parameter) basis(xm float64) float64 {
	a, b := par.Correction, par.Base
	x2 := xm * xm
	x3 := x2 * xm
	x5 := x3 * x2
	x8 := x5 * x3
	x13 := x8 * x5
	x21 := x13 * x8
	x34 := x21 * x13
	return (a[0]+b[0])*xm +
		(a[1]+b[1])*x2 +
		(a[2]+b[2])*x3 +
		b[3]*x5 +
		b[4]*x8 +
		b[5]*x13 +
		b[6]*x21 +
		b[7]*x34
}

// DiameterAt returns the stem diameter (cm) at relative height position xm
// for a tree of breast-height diameter d13 (cm) and total height ht (m). The
// curve is normalized so that xm = 1-1.3/ht reproduces d13 exactly. Callers
// must guarantee ht > 1.3m; the record layers validate before reaching here.
func (par *Parameter) DiameterAt(d13, xm, ht float64) float64 {
	if ht <= breastHeight {
		panic(fmt.Sprintf("DiameterAt: total height %.3fm not above breast height", ht))
	}
	d02h := d13 / par.basis(1.-breastHeight/ht)
	return d02h * par.basis(xm)
}
