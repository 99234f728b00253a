package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"statcheck/domain/core"
)

func TestReadCSV(t *testing.T) {
	csv := "before,after\n12,8\n15,7\n14,9\n10,6\n9,10\n11,7\n"

	data, err := NewDataReader("samples.csv").Read(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []string{"before", "after"}, data.Headers)

	before, err := data.Column("before")
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 15, 14, 10, 9, 11}, before.Values())

	after, err := data.Column("after")
	require.NoError(t, err)
	assert.Equal(t, 6, after.Size())
}

func TestReadCSVRaggedAndBlankCells(t *testing.T) {
	csv := "x,y\n1,\n2,5\n3\n"

	data, err := NewDataReader("ragged.csv").Read(strings.NewReader(csv))
	require.NoError(t, err)

	x, err := data.Column("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, x.Values())

	y, err := data.Column("y")
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, y.Values())
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		csv   string
		check func(t *testing.T, err error)
	}{
		{
			name: "Non-numeric cell",
			csv:  "x\n1\nbanana\n",
			check: func(t *testing.T, err error) {
				assert.True(t, core.IsParseError(err), "got %v", err)
			},
		},
		{
			name: "Header only",
			csv:  "x,y\n",
			check: func(t *testing.T, err error) {
				assert.True(t, core.IsParseError(err), "got %v", err)
			},
		},
		{
			name: "All cells blank",
			csv:  "x,y\n,\n,\n",
			check: func(t *testing.T, err error) {
				assert.True(t, core.IsParseError(err), "got %v", err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDataReader("bad.csv").Read(strings.NewReader(tt.csv))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "weight"))
	for i, v := range []float64{12, 15, 14, 10, 9, 11} {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	data, err := NewDataReader("weights.xlsx").Read(&buf)
	require.NoError(t, err)

	weights, err := data.Column("weight")
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 15, 14, 10, 9, 11}, weights.Values())
}

func TestColumnNotFound(t *testing.T) {
	data, err := NewDataReader("s.csv").Read(strings.NewReader("x\n1\n2\n"))
	require.NoError(t, err)

	_, err = data.Column("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}
