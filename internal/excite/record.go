// Package excite loads and synthesizes the excitation records driving the
// response pipeline: ground acceleration histories or applied force traces,
// uniformly sampled.
package excite

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Record is a uniformly sampled excitation.
type Record struct {
	Name    string
	Dt      float64
	Samples []float64
}

// Duration returns the record length in seconds.
func (r *Record) Duration() float64 {
	return float64(len(r.Samples)) * r.Dt
}

// Validate checks the record can drive a run.
func (r *Record) Validate() error {
	if r.Dt <= 0 || math.IsNaN(r.Dt) || math.IsInf(r.Dt, 0) {
		return fmt.Errorf("record %s: sample step must be positive, got %g", r.Name, r.Dt)
	}
	if len(r.Samples) == 0 {
		return fmt.Errorf("record %s: no samples", r.Name)
	}
	return nil
}

// Load reads a record from a text file. Two layouts are accepted: a single
// value per line, which needs the sample step passed in, and two columns of
// time and value, comma or whitespace separated, from which the step is
// taken. Comment lines start with '#'; a leading header line is skipped.
func Load(path string, dt float64) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	rec := &Record{Name: name, Dt: dt}

	var times []float64
	twoColumn := false
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var fields []string
		if strings.ContainsRune(text, ',') {
			fields = strings.Split(text, ",")
		} else {
			fields = strings.Fields(text)
		}

		var vals []float64
		ok := true
		for _, fld := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(fld), 64)
			if err != nil {
				ok = false
				break
			}
			vals = append(vals, v)
		}
		if !ok {
			// A non-numeric line is only tolerated as a header.
			if len(rec.Samples) == 0 {
				continue
			}
			return nil, fmt.Errorf("%s:%d: cannot parse %q", path, line, text)
		}

		switch len(vals) {
		case 1:
			rec.Samples = append(rec.Samples, vals[0])
		default:
			twoColumn = true
			times = append(times, vals[0])
			rec.Samples = append(rec.Samples, vals[1])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rec.Samples) == 0 {
		return nil, fmt.Errorf("%s: no samples found", path)
	}

	if twoColumn {
		if len(times) < 2 {
			return nil, fmt.Errorf("%s: need at least two rows to infer the sample step", path)
		}
		step := times[1] - times[0]
		if step <= 0 {
			return nil, fmt.Errorf("%s: time column is not increasing", path)
		}
		for i := 2; i < len(times); i++ {
			if math.Abs(times[i]-times[i-1]-step) > 1e-3*step {
				return nil, fmt.Errorf("%s: row %d breaks uniform sampling", path, i+1)
			}
		}
		rec.Dt = step
	} else if dt <= 0 {
		return nil, fmt.Errorf("%s: single-column record needs an explicit sample step", path)
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Resample returns the record interpolated linearly onto a new step. The
// duration is preserved up to the last sample that fits.
func Resample(r *Record, dt float64) (*Record, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if dt <= 0 || math.IsNaN(dt) {
		return nil, fmt.Errorf("resample step must be positive, got %g", dt)
	}
	if dt == r.Dt {
		out := &Record{Name: r.Name, Dt: r.Dt, Samples: make([]float64, len(r.Samples))}
		copy(out.Samples, r.Samples)
		return out, nil
	}

	span := float64(len(r.Samples)-1) * r.Dt
	n := int(span/dt) + 1
	out := &Record{Name: r.Name, Dt: dt, Samples: make([]float64, n)}
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		pos := t / r.Dt
		j := int(pos)
		if j >= len(r.Samples)-1 {
			out.Samples[i] = r.Samples[len(r.Samples)-1]
			continue
		}
		frac := pos - float64(j)
		out.Samples[i] = r.Samples[j]*(1-frac) + r.Samples[j+1]*frac
	}
	return out, nil
}
