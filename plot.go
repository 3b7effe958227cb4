package treevol

import "github.com/maseology/mmPlot"

// PlotTaper writes a PNG profile of one tree's taper curve, sampled at the
// same centimetre midpoints used by the volume integrator.
func (par *Parameter) PlotTaper(fp string, d13, ht float64) {
	var hl, dl []float64
	for i := 0; ; i++ {
		h := stumpHeight + (float64(i)+.5)*intStep
		if h >= ht {
			break
		}
		hl = append(hl, h)
		dl = append(dl, par.DiameterAt(d13, 1.-h/ht, ht))
	}
	mmplt.Line(fp, hl, map[string][]float64{"diameter (cm)": dl}, 12., 8.)
}
