package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/quakesim/internal/metrics"
	"github.com/san-kum/quakesim/internal/response"
	"github.com/san-kum/quakesim/internal/sdof"
)

type ExportData struct {
	Record    string             `json:"record"`
	Scheme    string             `json:"scheme"`
	Rho       float64            `json:"rho"`
	Dt        float64            `json:"dt"`
	Samples   int                `json:"samples"`
	Stiffness float64            `json:"stiffness"`
	Mass      float64            `json:"mass"`
	Damping   float64            `json:"damping"`
	Period    float64            `json:"period"`
	Times     []float64          `json:"times"`
	Disp      []float64          `json:"disp"`
	Vel       []float64          `json:"vel"`
	Accel     []float64          `json:"accel"`
	Force     []float64          `json:"force"`
	Peaks     map[string]float64 `json:"peaks"`
	Notices   []string           `json:"notices,omitempty"`
}

// HistoryJSON writes the full run, system and tracks included, as one
// indented JSON document.
func HistoryJSON(w io.Writer, record string, sys sdof.System, h *response.History) error {
	times := make([]float64, h.Len())
	for i := range times {
		times[i] = h.Time(i)
	}
	notices := make([]string, len(h.Notices))
	for i, n := range h.Notices {
		notices[i] = n.String()
	}

	data := ExportData{
		Record:    record,
		Scheme:    h.Scheme,
		Rho:       h.Rho,
		Dt:        h.Dt,
		Samples:   h.Len(),
		Stiffness: sys.K,
		Mass:      sys.M,
		Damping:   sys.Ksi,
		Period:    sys.Period(),
		Times:     times,
		Disp:      h.Disp,
		Vel:       h.Vel,
		Accel:     h.Accel,
		Force:     h.Force,
		Peaks: map[string]float64{
			"disp":  metrics.Peak(h.Disp),
			"vel":   metrics.Peak(h.Vel),
			"accel": metrics.Peak(h.Accel),
			"force": metrics.Peak(h.Force),
		},
		Notices: notices,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
