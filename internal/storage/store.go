// Package storage persists evaluation runs for later inspection and export.
// Each run is a directory holding metadata.json (the inputs and aggregate
// flags) and results.csv (one row per configuration).
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Kemerd/aircraft-tug-physics/internal/scenario"
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
	ID         string             `json:"id"`
	Simulator  string             `json:"simulator"`
	Timestamp  time.Time          `json:"timestamp"`
	Inputs     map[string]float64 `json:"inputs"`
	Surface    string             `json:"surface,omitempty"`
	Balanced   *bool              `json:"balanced,omitempty"`
	BestConfig string             `json:"best_config,omitempty"`
}

var leverHeader = []string{"config", "f2", "torque", "x1"}

var tugHeader = []string{
	"config", "rolling", "grade", "total_pull", "handle_force",
	"motor_torque_lbft", "motor_torque_nm", "motor_torque_kgcm",
	"motor_power_hp", "motor_power_w", "effort", "feasible",
}

// SaveLever writes a lever evaluation run and returns its id.
func (s *Store) SaveLever(report scenario.LeverReport, inputArm, arm2 float64) (string, error) {
	balanced := report.Balanced
	meta := RunMetadata{
		ID:        fmt.Sprintf("lever_%d", time.Now().Unix()),
		Simulator: "lever",
		Timestamp: time.Now(),
		Inputs: map[string]float64{
			"f1":        report.F1,
			"input_arm": inputArm,
			"arm2":      arm2,
		},
		Balanced: &balanced,
	}

	rows := make([][]string, 0, len(report.Results))
	for _, r := range report.Results {
		rows = append(rows, []string{
			r.ConfigID,
			formatFloat(r.F2),
			formatFloat(r.Torque),
			formatFloat(r.X1),
		})
	}

	return meta.ID, s.write(meta, leverHeader, rows)
}

// SaveTug writes a tug evaluation run and returns its id.
func (s *Store) SaveTug(report scenario.TugReport, handleArm, aircraftArm float64) (string, error) {
	meta := RunMetadata{
		ID:        fmt.Sprintf("tug_%d", time.Now().Unix()),
		Simulator: "tug",
		Timestamp: time.Now(),
		Inputs: map[string]float64{
			"weight_lb":    report.WeightLb,
			"incline_deg":  report.InclineDeg,
			"handle_arm":   handleArm,
			"aircraft_arm": aircraftArm,
		},
		Surface: report.Surface.Name,
	}
	if report.BestIndex >= 0 && report.BestIndex < len(report.Results) {
		meta.BestConfig = report.Results[report.BestIndex].ConfigID
	}

	rows := make([][]string, 0, len(report.Results))
	for _, r := range report.Results {
		rows = append(rows, []string{
			r.ConfigID,
			formatFloat(r.Rolling),
			formatFloat(r.Grade),
			formatFloat(r.TotalPull),
			formatFloat(r.HandleForce),
			formatFloat(r.MotorTorqueLbFt),
			formatFloat(r.MotorTorqueNm),
			formatFloat(r.MotorTorqueKgCm),
			formatFloat(r.MotorPowerHP),
			formatFloat(r.MotorPowerW),
			r.Effort.String(),
			strconv.FormatBool(r.FeasibleByHuman),
		})
	}

	return meta.ID, s.write(meta, tugHeader, rows)
}

func (s *Store) write(meta RunMetadata, header []string, rows [][]string) error {
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "results.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
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
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadResults returns the CSV header and the per-configuration rows.
func (s *Store) LoadResults(runID string) ([]string, [][]string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "results.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("run %s has no results", runID)
	}
	return records[0], records[1:], nil
}

// ExportJSON writes a run's metadata and rows as a single JSON document.
func ExportJSON(w *json.Encoder, meta *RunMetadata, header []string, rows [][]string) error {
	results := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		m := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				m[col] = row[i]
			}
		}
		results = append(results, m)
	}
	return w.Encode(struct {
		Meta    *RunMetadata        `json:"meta"`
		Results []map[string]string `json:"results"`
	}{meta, results})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
