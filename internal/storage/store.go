package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/ivp/internal/dynamo"
)

const (
	metadataFile   = "metadata.json"
	trajectoryFile = "trajectory.csv"
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
	Problem   string             `json:"problem"`
	Method    string             `json:"method"`
	Timestamp time.Time          `json:"timestamp"`
	Y0        float64            `json:"y0"`
	T0        float64            `json:"t0"`
	T1        float64            `json:"t1"`
	Points    int                `json:"points"`
	Params    map[string]float64 `json:"params,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(result *dynamo.Result, params map[string]float64) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%s_%d", result.Problem, result.Method, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Problem:   result.Problem,
		Method:    result.Method,
		Timestamp: now,
		Y0:        result.Y0,
		Points:    len(result.Times),
		Params:    params,
		Metrics:   result.Metrics,
	}
	if len(result.Times) > 0 {
		meta.T0 = result.Times[0]
		meta.T1 = result.Times[len(result.Times)-1]
	}

	if err := writeMetadata(filepath.Join(runDir, metadataFile), &meta); err != nil {
		return "", err
	}
	if err := writeTrajectory(filepath.Join(runDir, trajectoryFile), result); err != nil {
		return "", err
	}

	return runID, nil
}

func writeMetadata(path string, meta *RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeTrajectory(path string, result *dynamo.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "y", "exact", "error"}); err != nil {
		return err
	}

	hasExact := len(result.Exact) == len(result.Trajectory)
	for i := range result.Trajectory {
		row := []string{formatFloat(result.Times[i]), formatFloat(result.Trajectory[i]), "", ""}
		if hasExact {
			row[2] = formatFloat(result.Exact[i])
			row[3] = formatFloat(math.Abs(result.Trajectory[i] - result.Exact[i]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadResult rebuilds a result from a stored run. Exact is nil when the
// run was saved without an exact solution.
func (s *Store) LoadResult(runID string) (*dynamo.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, trajectoryFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	result := &dynamo.Result{
		Problem:    meta.Problem,
		Method:     meta.Method,
		Y0:         meta.Y0,
		Times:      make([]float64, 0, len(records)),
		Trajectory: make(dynamo.Trajectory, 0, len(records)),
		Metrics:    meta.Metrics,
	}
	exact := make([]float64, 0, len(records))

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", trajectoryFile, i+1, err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", trajectoryFile, i+1, err)
		}
		result.Times = append(result.Times, t)
		result.Trajectory = append(result.Trajectory, y)

		if len(record) > 2 && record[2] != "" {
			if e, err := strconv.ParseFloat(record[2], 64); err == nil {
				exact = append(exact, e)
			}
		}
	}

	if len(exact) == len(result.Trajectory) {
		result.Exact = exact
	}
	return result, nil
}
