package storage

import (
	"bytes"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/Kemerd/aircraft-tug-physics/internal/rig"
	"github.com/Kemerd/aircraft-tug-physics/internal/scenario"
	"github.com/Kemerd/aircraft-tug-physics/internal/surface"
)

func leverReport(t *testing.T) scenario.LeverReport {
	t.Helper()
	set, err := rig.DefaultLeverSet()
	if err != nil {
		t.Fatal(err)
	}
	report, err := scenario.EvaluateLevers(200, set)
	if err != nil {
		t.Fatal(err)
	}
	return report
}

func tugReport(t *testing.T) scenario.TugReport {
	t.Helper()
	set, err := rig.DefaultTugSet()
	if err != nil {
		t.Fatal(err)
	}
	report, err := scenario.EvaluateTug(3000, surface.Presets[1], 0, set)
	if err != nil {
		t.Fatal(err)
	}
	return report
}

func TestSaveAndLoadLeverRun(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	report := leverReport(t)
	id, err := st.SaveLever(report, 3.0, 1.5)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Simulator != "lever" {
		t.Errorf("expected simulator lever, got %s", meta.Simulator)
	}
	if meta.Inputs["f1"] != 200 {
		t.Errorf("expected f1 200, got %.1f", meta.Inputs["f1"])
	}
	if meta.Balanced == nil {
		t.Fatal("expected balanced flag")
	}

	header, rows, err := st.LoadResults(id)
	if err != nil {
		t.Fatalf("load results failed: %v", err)
	}
	if header[0] != "config" || header[1] != "f2" {
		t.Errorf("unexpected header: %v", header)
	}
	if len(rows) != len(report.Results) {
		t.Fatalf("expected %d rows, got %d", len(report.Results), len(rows))
	}

	f2, err := strconv.ParseFloat(rows[0][1], 64)
	if err != nil {
		t.Fatal(err)
	}
	if diff := f2 - report.Results[0].F2; diff > 1e-5 || diff < -1e-5 {
		t.Errorf("row f2 %.6f does not match result %.6f", f2, report.Results[0].F2)
	}
}

func TestSaveAndLoadTugRun(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	report := tugReport(t)
	id, err := st.SaveTug(report, 3.0, 1.5)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Surface != "Asphalt" {
		t.Errorf("expected surface Asphalt, got %s", meta.Surface)
	}
	if meta.BestConfig == "" {
		t.Error("expected best config to be recorded")
	}

	header, rows, err := st.LoadResults(id)
	if err != nil {
		t.Fatalf("load results failed: %v", err)
	}
	if len(header) != 12 {
		t.Errorf("expected 12 columns, got %d", len(header))
	}
	if len(rows) != 6 {
		t.Errorf("expected 6 rows, got %d", len(rows))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}

	if _, err := st.SaveLever(leverReport(t), 3.0, 1.5); err != nil {
		t.Fatal(err)
	}
	if _, err := st.SaveTug(tugReport(t), 3.0, 1.5); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/path/for/test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("expected empty list for missing dir, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	id, err := st.SaveTug(tugReport(t), 3.0, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	meta, err := st.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	header, rows, err := st.LoadResults(id)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportJSON(json.NewEncoder(&buf), meta, header, rows); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc struct {
		Meta    RunMetadata         `json:"meta"`
		Results []map[string]string `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if doc.Meta.ID != id {
		t.Errorf("expected id %s, got %s", id, doc.Meta.ID)
	}
	if len(doc.Results) != 6 {
		t.Errorf("expected 6 results, got %d", len(doc.Results))
	}
	if doc.Results[0]["config"] == "" {
		t.Error("expected config column in exported results")
	}
}

func TestSaveIDsDifferBySimulator(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	lid, err := st.SaveLever(leverReport(t), 3.0, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	tid, err := st.SaveTug(tugReport(t), 3.0, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if lid == tid {
		t.Errorf("run ids should differ: %s", lid)
	}
}
