package benchrun

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// resultColumns is the CSV column contract shared with the plotting
// tooling. Elapsed is serialized as fractional seconds.
var resultColumns = []string{
	"n", "m", "k", "false_pos", "probes", "empirical_p", "theory_p", "elapsed_s",
}

// WriteResults encodes results as CSV, header row first.
func WriteResults(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultColumns); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.N),
			strconv.Itoa(r.M),
			strconv.Itoa(r.K),
			strconv.Itoa(r.FalsePos),
			strconv.Itoa(r.Probes),
			strconv.FormatFloat(r.EmpiricalP, 'f', 6, 64),
			strconv.FormatFloat(r.TheoryP, 'f', 6, 64),
			strconv.FormatFloat(r.Elapsed.Seconds(), 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadResults decodes a CSV produced by [WriteResults].
func ReadResults(r io.Reader) ([]Result, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("benchrun: reading csv header: %w", err)
	}
	if len(header) != len(resultColumns) {
		return nil, fmt.Errorf("benchrun: unexpected csv header %q", header)
	}
	for i, col := range resultColumns {
		if header[i] != col {
			return nil, fmt.Errorf("benchrun: unexpected csv header %q", header)
		}
	}

	var results []Result
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return results, nil
		}
		if err != nil {
			return nil, fmt.Errorf("benchrun: reading csv row: %w", err)
		}
		res, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
}

func parseRow(row []string) (Result, error) {
	var (
		r    Result
		errs []error
	)
	atoi := func(s string) int {
		v, err := strconv.Atoi(s)
		errs = append(errs, err)
		return v
	}
	atof := func(s string) float64 {
		v, err := strconv.ParseFloat(s, 64)
		errs = append(errs, err)
		return v
	}
	r.N = atoi(row[0])
	r.M = atoi(row[1])
	r.K = atoi(row[2])
	r.FalsePos = atoi(row[3])
	r.Probes = atoi(row[4])
	r.EmpiricalP = atof(row[5])
	r.TheoryP = atof(row[6])
	r.Elapsed = time.Duration(atof(row[7]) * float64(time.Second))
	for _, err := range errs {
		if err != nil {
			return Result{}, fmt.Errorf("benchrun: parsing csv row %v: %w", row, err)
		}
	}
	return r, nil
}
