package treevol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// WriteCSV writes the processed table: every input column verbatim plus the
// derived d, h and volume_ratio columns. Row order and count match the
// input; no index column is added.
func (ds *Dataset) WriteCSV(fp string) error {
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("WriteCSV failed: %v", err)
	}
	defer tw.Close()

	tw.WriteLine(joinCSV(appendDerived(ds.Header, "d", "h", "volume_ratio")))
	for i, rec := range ds.Rows {
		t := &ds.Trees[i]
		tw.WriteLine(joinCSV(appendDerived(rec, ftoa(t.D), ftoa(t.H), ftoa(t.VolumeRatio))))
	}
	return nil
}

func appendDerived(rec []string, vs ...string) []string {
	out := make([]string, 0, len(rec)+len(vs))
	out = append(out, rec...)
	return append(out, vs...)
}

// fields holding a comma, quote or line break must be quoted back out the
// way the reader accepts them, or the row splits on re-read
func joinCSV(rec []string) string {
	q := make([]string, len(rec))
	for i, s := range rec {
		if strings.ContainsAny(s, ",\"\n\r") {
			s = `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
		}
		q[i] = s
	}
	return strings.Join(q, ",")
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
