package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
)

// table is one CSV file: a size column followed by one column per label.
type table struct {
	labels []string
	sizes  []int
	rows   [][]float64
}

func (t *table) add(size int, values []float64) {
	t.sizes = append(t.sizes, size)
	t.rows = append(t.rows, values)
}

// relative divides every value by the first column. Rows where the first
// column is zero have no ratio and are NaN throughout.
func (t *table) relative() *table {
	rel := &table{labels: t.labels}
	for i, row := range t.rows {
		values := make([]float64, len(row))
		for j, v := range row {
			if row[0] == 0 {
				values[j] = math.NaN()
				continue
			}
			values[j] = v / row[0]
		}
		rel.add(t.sizes[i], values)
	}
	return rel
}

func (t *table) writeFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	err = t.write(csv.NewWriter(f))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (t *table) write(w *csv.Writer) error {
	header := append([]string{"size"}, t.labels...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, row := range t.rows {
		record := make([]string, 0, len(row)+1)
		record = append(record, strconv.Itoa(t.sizes[i]))
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	w.Flush()
	return w.Error()
}
