package treevol

import (
	"fmt"

	"github.com/gosuri/uiprogress"
)

// EvaluateSerial computes volume ratios for every record in order, no
// concurrency. The optional progress bar tracks the record loop on long
// inventory tables.
func (ds *Dataset) EvaluateSerial(par *Parameter, pol BreakPolicy, showProgress bool) (*Summary, error) {
	if err := par.check(); err != nil {
		return nil, err
	}

	var bar *uiprogress.Bar
	if showProgress {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(ds.Trees)).AppendCompleted().PrependElapsed()
	}

	for i := range ds.Trees {
		t := &ds.Trees[i]
		r, err := par.RecordRatio(t, pol)
		if err != nil {
			return nil, fmt.Errorf("EvaluateSerial failed: %v", err)
		}
		t.VolumeRatio = r
		if bar != nil {
			bar.Incr()
		}
	}
	if showProgress {
		uiprogress.Stop()
	}
	return ds.summarize(), nil
}
