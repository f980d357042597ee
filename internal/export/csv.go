// Package export writes computed responses and spectra to the formats the
// CLI hands out: CSV and JSON streams plus PNG plots.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/quakesim/internal/response"
	"github.com/san-kum/quakesim/internal/spectrum"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}

// HistoryCSV writes the response tracks as time,disp,vel,accel,force rows.
func HistoryCSV(w io.Writer, h *response.History) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "disp", "vel", "accel", "force"}); err != nil {
		return err
	}
	for i := 0; i < h.Len(); i++ {
		row := []string{
			formatFloat(h.Time(i)),
			formatFloat(h.Disp[i]),
			formatFloat(h.Vel[i]),
			formatFloat(h.Accel[i]),
			formatFloat(h.Force[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SpectrumCSV writes one row per period with all five spectral ordinates.
func SpectrumCSV(w io.Writer, points []spectrum.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"period", "sd", "sv", "sa", "psv", "psa"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			formatFloat(p.Period),
			formatFloat(p.Sd),
			formatFloat(p.Sv),
			formatFloat(p.Sa),
			formatFloat(p.PSv),
			formatFloat(p.PSa),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
