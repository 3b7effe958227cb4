package treevol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTable = `plot_number,col,row,tree_no,species,diameter_p,height_m,height_p,crown_class
1,10,5,101,6615,25.4,18.2,20.1,1
1,10,5,102,6615,30.2,0,22.5,6
1,10,6,103,6615,22.1,15,20,6
1,10,6,104,6615,28,24,21,6
2,11,5,105,6615,19.8,,18.4,2
`

func TestReadDataset(t *testing.T) {
	ds, err := readDataset(strings.NewReader(testTable))
	require.NoError(t, err)
	require.Len(t, ds.Trees, 5)
	require.Len(t, ds.Rows, 5)

	tr := ds.Trees[0]
	assert.Equal(t, "1", tr.PlotNumber)
	assert.Equal(t, "101", tr.TreeNo)
	assert.Equal(t, 25.4, tr.DiameterP)
	assert.Equal(t, 25.4, tr.D)
	assert.Equal(t, 18.2, tr.H) // intact with a field measurement
	assert.Equal(t, 1, tr.CrownClass)

	assert.Zero(t, ds.Trees[1].H)        // broken, no measurement
	assert.Equal(t, 15., ds.Trees[2].H)  // broken, measured break height
	assert.Equal(t, 18.4, ds.Trees[4].H) // blank height_m falls back to prediction
}

func TestReadDatasetMissingColumn(t *testing.T) {
	in := "plot_number,col,row,tree_no,diameter_p,height_m,crown_class\n1,1,1,1,25.4,18,1\n"
	_, err := readDataset(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"height_p"`)
}

func TestReadDatasetBadField(t *testing.T) {
	in := "plot_number,col,row,tree_no,diameter_p,height_m,height_p,crown_class\n1,1,1,1,notanumber,18,20,1\n"
	_, err := readDataset(strings.NewReader(in))
	require.Error(t, err)
}

func TestReadDatasetNonFinite(t *testing.T) {
	// a literal NaN parses as a float but would poison the height policy and
	// the integrator; reject it like any other bad field
	for _, bad := range []string{"NaN", "nan", "+Inf", "-Inf"} {
		in := "plot_number,col,row,tree_no,diameter_p,height_m,height_p,crown_class\n1,1,1,1,25.4,0," + bad + ",6\n"
		_, err := readDataset(strings.NewReader(in))
		require.Error(t, err, "height_p=%s", bad)
	}
}

func TestReadDatasetEmpty(t *testing.T) {
	_, err := readDataset(strings.NewReader(""))
	require.Error(t, err)
}
