package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/ivp/internal/dynamo"
)

func sampleResult() *dynamo.Result {
	return &dynamo.Result{
		Problem:    "decay",
		Method:     "euler",
		Y0:         1,
		Times:      []float64{0, 0.1, 0.2},
		Trajectory: dynamo.Trajectory{1, 0.9, 0.81},
		Exact:      []float64{1, 0.9048374180359595, 0.8187307530779818},
		Metrics: map[string]float64{
			"final_error": 0.0087307530779818,
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(sampleResult(), map[string]float64{"rate": 1})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Problem != "decay" || meta.Method != "euler" {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Points != 3 || meta.T1 != 0.2 {
		t.Errorf("expected 3 points ending at 0.2, got %d ending at %v", meta.Points, meta.T1)
	}
	if meta.Params["rate"] != 1 {
		t.Errorf("expected rate 1, got %v", meta.Params["rate"])
	}

	result, err := st.LoadResult(runID)
	if err != nil {
		t.Fatalf("load result failed: %v", err)
	}

	want := sampleResult()
	if len(result.Trajectory) != 3 || len(result.Exact) != 3 {
		t.Fatalf("expected 3 samples, got %d/%d", len(result.Trajectory), len(result.Exact))
	}
	for i := range want.Trajectory {
		if result.Trajectory[i] != want.Trajectory[i] || result.Exact[i] != want.Exact[i] || result.Times[i] != want.Times[i] {
			t.Errorf("sample %d not preserved exactly", i)
		}
	}
}

func TestStoreWithoutExact(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	r := sampleResult()
	r.Exact = nil
	runID, err := st.Save(r, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.LoadResult(runID)
	if err != nil {
		t.Fatalf("load result failed: %v", err)
	}
	if loaded.Exact != nil {
		t.Errorf("expected no exact values, got %v", loaded.Exact)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := st.Save(sampleResult(), nil); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(sampleResult(), nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{metadataFile, trajectoryFile} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, "run-1", sampleResult()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.ID != "run-1" || data.Points != 3 || len(data.Trajectory) != 3 {
		t.Errorf("unexpected export: %+v", data)
	}
}
