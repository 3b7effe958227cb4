package treevol

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Parameter holds the calibrated taper-curve coefficients: the 3-term
// correction set and the 8-term relative taper set. Built once and shared
// read-only across every evaluation.
type Parameter struct{ Correction, Base []float64 }

// DefaultParameter returns the coefficient set calibrated for the plantation
// species covered by this model.
func DefaultParameter() *Parameter {
	return &Parameter{
		Correction: []float64{0., 0., 0.},
		Base:       []float64{2.05502, -0.89331, -1.50615, 3.47354, -3.10063, 1.50246, -0.05514, 0.00070},
	}
}

func (par *Parameter) check() error {
	if len(par.Correction) != 3 || len(par.Base) != 8 {
		return fmt.Errorf("parameter check failed: need 3 correction and 8 base coefficients, have %d and %d", len(par.Correction), len(par.Base))
	}
	return nil
}

func (par *Parameter) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" parameter.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(par); err != nil {
		return fmt.Errorf(" parameter.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobParameter(fp string) (*Parameter, error) {
	var par Parameter
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&par)
	if err != nil {
		return nil, err
	}
	f.Close()
	if err := par.check(); err != nil {
		return nil, err
	}
	return &par, nil
}
