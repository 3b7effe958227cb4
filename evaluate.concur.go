package treevol

import (
	"fmt"
	"sync"
)

// Evaluate computes volume ratios for every record, fanning rows out across
// goroutines. Records carry no cross-tree state and Parameter is read-only,
// so no synchronization beyond the join is needed. Results are identical to
// EvaluateSerial.
func (ds *Dataset) Evaluate(par *Parameter, pol BreakPolicy) (*Summary, error) {
	if err := par.check(); err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	errs := make([]error, len(ds.Trees))
	wg.Add(len(ds.Trees))
	for i := range ds.Trees {
		go func(i int) {
			defer wg.Done()
			t := &ds.Trees[i]
			r, err := par.RecordRatio(t, pol)
			if err != nil {
				errs[i] = err
				return
			}
			t.VolumeRatio = r
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("Evaluate failed: %v", err)
		}
	}
	return ds.summarize(), nil
}
