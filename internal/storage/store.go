package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/quakesim/internal/metrics"
	"github.com/san-kum/quakesim/internal/response"
	"github.com/san-kum/quakesim/internal/sdof"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Record    string             `json:"record"`
	Scheme    string             `json:"scheme"`
	Rho       float64            `json:"rho"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Samples   int                `json:"samples"`
	Stiffness float64            `json:"stiffness"`
	Mass      float64            `json:"mass"`
	Damping   float64            `json:"damping"`
	Peaks     map[string]float64 `json:"peaks"`
	Notices   []string           `json:"notices,omitempty"`
}

// Tracks is the sampled response read back from a run directory.
type Tracks struct {
	Times []float64
	Disp  []float64
	Vel   []float64
	Accel []float64
	Force []float64
}

func (s *Store) Save(record string, sys sdof.System, h *response.History) (string, error) {
	runID := fmt.Sprintf("%s_%d", h.Scheme, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	notices := make([]string, len(h.Notices))
	for i, n := range h.Notices {
		notices[i] = n.String()
	}

	meta := RunMetadata{
		ID:        runID,
		Record:    record,
		Scheme:    h.Scheme,
		Rho:       h.Rho,
		Timestamp: time.Now(),
		Dt:        h.Dt,
		Samples:   h.Len(),
		Stiffness: sys.K,
		Mass:      sys.M,
		Damping:   sys.Ksi,
		Peaks: map[string]float64{
			"disp":  metrics.Peak(h.Disp),
			"vel":   metrics.Peak(h.Vel),
			"accel": metrics.Peak(h.Accel),
			"force": metrics.Peak(h.Force),
		},
		Notices: notices,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "history.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "disp", "vel", "accel", "force"}); err != nil {
		return "", err
	}

	for i := 0; i < h.Len(); i++ {
		row := []string{
			strconv.FormatFloat(h.Time(i), 'g', 12, 64),
			strconv.FormatFloat(h.Disp[i], 'g', 12, 64),
			strconv.FormatFloat(h.Vel[i], 'g', 12, 64),
			strconv.FormatFloat(h.Accel[i], 'g', 12, 64),
			strconv.FormatFloat(h.Force[i], 'g', 12, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTracks(runID string) (*Tracks, error) {
	csvPath := filepath.Join(s.baseDir, runID, "history.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	tr := &Tracks{}
	for i := 1; i < len(records); i++ {
		row := records[i]
		if len(row) < 5 {
			return nil, fmt.Errorf("run %s: history row %d has %d columns, want 5", runID, i, len(row))
		}
		vals := make([]float64, 5)
		for j := range vals {
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: history row %d: %w", runID, i, err)
			}
			vals[j] = v
		}
		tr.Times = append(tr.Times, vals[0])
		tr.Disp = append(tr.Disp, vals[1])
		tr.Vel = append(tr.Vel, vals[2])
		tr.Accel = append(tr.Accel, vals[3])
		tr.Force = append(tr.Force, vals[4])
	}

	return tr, nil
}
