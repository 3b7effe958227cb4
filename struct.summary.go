package treevol

import (
	"fmt"

	"github.com/maseology/mmaths/slice"
	"github.com/maseology/mmio"
)

// Summary reports counts from one dataset pass.
type Summary struct {
	NTrees, NBroken   int
	MedianBrokenRatio float64
}

func (ds *Dataset) summarize() *Summary {
	s := &Summary{NTrees: len(ds.Trees)}
	var br []float64
	for i := range ds.Trees {
		if ds.Trees[i].CrownClass == BrokenTop {
			s.NBroken++
			br = append(br, ds.Trees[i].VolumeRatio)
		}
	}
	if len(br) > 0 {
		s.MedianBrokenRatio = slice.Median(br)
	}
	return s
}

// Print writes the human-readable processing report.
func (s *Summary) Print() {
	fmt.Printf(" %s trees processed: %s intact, %s broken-top\n",
		mmio.Thousands(int64(s.NTrees)), mmio.Thousands(int64(s.NTrees-s.NBroken)), mmio.Thousands(int64(s.NBroken)))
	if s.NBroken > 0 {
		fmt.Printf(" median broken-top volume ratio: %.3f\n", s.MedianBrokenRatio)
	}
}
