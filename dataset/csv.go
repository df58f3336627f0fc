// Package dataset loads labeled tabular data for classification.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/logit-ml/logit/pkg/errors"
)

// Dataset holds a feature matrix with its paired label vector and
// per-sample identifiers.
type Dataset struct {
	IDs    []string
	X      *mat.Dense
	Y      *mat.VecDense
	Labels []float64 // distinct label values in order of first appearance
}

// NSamples returns the number of rows.
func (d *Dataset) NSamples() int {
	r, _ := d.X.Dims()
	return r
}

// NFeatures returns the number of feature columns.
func (d *Dataset) NFeatures() int {
	_, c := d.X.Dims()
	return c
}

// LoadCSV reads a labeled dataset from a CSV file. Column 0 is a sample
// identifier, column 1 the label, and columns 2 onward the features.
// A header row is detected by a non-numeric label cell and skipped.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening dataset %s", path)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses a labeled dataset from CSV content with the same column
// layout as LoadCSV.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parsing csv")
	}
	if len(records) == 0 {
		return nil, errors.NewValueError("ReadCSV", "no rows")
	}

	// header row: label column does not parse as a number
	if len(records[0]) >= 2 {
		if _, err := strconv.ParseFloat(records[0][1], 64); err != nil {
			records = records[1:]
		}
	}
	if len(records) == 0 {
		return nil, errors.NewValueError("ReadCSV", "no data rows after header")
	}

	nCols := len(records[0])
	if nCols < 3 {
		return nil, errors.NewValueError("ReadCSV", "need at least id, label and one feature column")
	}
	nFeatures := nCols - 2

	ds := &Dataset{
		IDs: make([]string, len(records)),
		X:   mat.NewDense(len(records), nFeatures, nil),
		Y:   mat.NewVecDense(len(records), nil),
	}

	seen := make(map[float64]bool)
	for i, record := range records {
		if len(record) != nCols {
			return nil, errors.Newf("row %d has %d columns, expected %d", i, len(record), nCols)
		}

		ds.IDs[i] = record[0]

		label, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: parsing label %q", i, record[1])
		}
		ds.Y.SetVec(i, label)
		if !seen[label] {
			seen[label] = true
			ds.Labels = append(ds.Labels, label)
		}

		for j := 0; j < nFeatures; j++ {
			v, err := strconv.ParseFloat(record[j+2], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d: parsing feature %d %q", i, j, record[j+2])
			}
			ds.X.Set(i, j, v)
		}
	}

	return ds, nil
}

// Binarize maps the dataset's labels onto {0, 1} in place, assigning 0 to
// positive and 1 to negative. It fails unless exactly two distinct label
// values are present.
func (d *Dataset) Binarize(positive, negative float64) error {
	if len(d.Labels) != 2 {
		return errors.Newf("dataset has %d distinct labels, expected 2", len(d.Labels))
	}

	for i := 0; i < d.Y.Len(); i++ {
		switch d.Y.AtVec(i) {
		case positive:
			d.Y.SetVec(i, 0)
		case negative:
			d.Y.SetVec(i, 1)
		default:
			return errors.Newf("label %v is neither %v nor %v", d.Y.AtVec(i), positive, negative)
		}
	}
	d.Labels = []float64{0, 1}
	return nil
}
