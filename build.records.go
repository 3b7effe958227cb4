package treevol

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Dataset is one inventory table: the raw rows exactly as read, preserved
// for output, alongside the parsed record per row.
type Dataset struct {
	Header []string
	Rows   [][]string
	Trees  []Tree
}

// required input columns, located by header name
var requiredColumns = []string{"diameter_p", "height_m", "height_p", "crown_class", "col", "row", "plot_number", "tree_no"}

// ReadDataset loads an inventory CSV. Every required column must be present;
// additional columns are carried through untouched.
func ReadDataset(fp string) (*Dataset, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("ReadDataset failed: %v", err)
	}
	defer f.Close()
	return readDataset(f)
}

func readDataset(r io.Reader) (*Dataset, error) {
	recs, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadDataset failed: %v", err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("ReadDataset failed: no header row")
	}

	cx := make(map[string]int, len(recs[0]))
	for i, nam := range recs[0] {
		cx[strings.TrimSpace(nam)] = i
	}
	for _, nam := range requiredColumns {
		if _, ok := cx[nam]; !ok {
			return nil, fmt.Errorf("ReadDataset failed: missing required column %q", nam)
		}
	}

	rows := recs[1:]
	trees := make([]Tree, len(rows))
	for i, rec := range rows {
		t := &trees[i]
		t.Col, t.Row, t.PlotNumber, t.TreeNo = rec[cx["col"]], rec[cx["row"]], rec[cx["plot_number"]], rec[cx["tree_no"]]
		if t.DiameterP, err = parseFloat(rec[cx["diameter_p"]]); err != nil {
			return nil, fmt.Errorf("ReadDataset row %d: %v", i+1, err)
		}
		if t.HeightM, err = parseFloat(rec[cx["height_m"]]); err != nil {
			return nil, fmt.Errorf("ReadDataset row %d: %v", i+1, err)
		}
		if t.HeightP, err = parseFloat(rec[cx["height_p"]]); err != nil {
			return nil, fmt.Errorf("ReadDataset row %d: %v", i+1, err)
		}
		if t.CrownClass, err = parseInt(rec[cx["crown_class"]]); err != nil {
			return nil, fmt.Errorf("ReadDataset row %d: %v", i+1, err)
		}
		t.D = t.DiameterP
		t.H = t.effectiveHeight()
	}
	return &Dataset{Header: recs[0], Rows: rows, Trees: trees}, nil
}

// blank and NA fields read as zero, matching how the field sheets denote
// heights that were never taken; non-finite values are rejected up front so
// they can never reach the integrator
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "NA" {
		return 0., nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0., err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0., fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "NA" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
