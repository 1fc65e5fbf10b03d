package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/ivp/internal/dynamo"
)

type ExportData struct {
	ID         string             `json:"id,omitempty"`
	Problem    string             `json:"problem"`
	Method     string             `json:"method"`
	Y0         float64            `json:"y0"`
	Points     int                `json:"points"`
	Times      []float64          `json:"times"`
	Trajectory []float64          `json:"trajectory"`
	Exact      []float64          `json:"exact,omitempty"`
	Metrics    map[string]float64 `json:"metrics"`
}

func newExportData(id string, result *dynamo.Result) ExportData {
	return ExportData{
		ID:         id,
		Problem:    result.Problem,
		Method:     result.Method,
		Y0:         result.Y0,
		Points:     len(result.Times),
		Times:      result.Times,
		Trajectory: result.Trajectory,
		Exact:      result.Exact,
		Metrics:    result.Metrics,
	}
}

func WriteJSON(w io.Writer, id string, result *dynamo.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(id, result))
}

func ExportJSON(path, id string, result *dynamo.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, id, result)
}
