package export

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/epicycles/internal/epicycle"
	"github.com/san-kum/epicycles/internal/metrics"
	"gopkg.in/yaml.v3"
)

// CoefficientData is the machine-readable result of analyzing a drawing.
type CoefficientData struct {
	Points         int                    `json:"points" yaml:"points"`
	Epicycles      int                    `json:"epicycles" yaml:"epicycles"`
	Terms          []epicycle.Coefficient `json:"terms" yaml:"terms"`
	Error          metrics.ErrorStats     `json:"error" yaml:"error"`
	CapturedEnergy float64                `json:"captured_energy" yaml:"captured_energy"`
	Metrics        map[string]float64     `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// NewCoefficientData analyzes how well set reproduces samples. Terms holds
// the first top coefficients (all when top <= 0).
func NewCoefficientData(samples []epicycle.Point, set epicycle.CoefficientSet, top int) (CoefficientData, error) {
	stats, err := metrics.ReconstructionError(samples, set)
	if err != nil {
		return CoefficientData{}, err
	}
	captured, err := metrics.CapturedEnergy(samples, set)
	if err != nil {
		return CoefficientData{}, err
	}

	terms := set.All()
	if top > 0 && top < len(terms) {
		terms = terms[:top]
	}
	return CoefficientData{
		Points:         len(samples),
		Epicycles:      set.Len(),
		Terms:          terms,
		Error:          stats,
		CapturedEnergy: captured,
	}, nil
}

// EncodeCoefficients writes data as indented JSON.
func EncodeCoefficients(w io.Writer, data CoefficientData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCoefficients writes data to path, as YAML for .yaml/.yml paths and
// JSON otherwise.
func WriteCoefficients(path string, data CoefficientData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(file)
		if err := enc.Encode(data); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		if err := EncodeCoefficients(file, data); err != nil {
			return err
		}
	}
	return file.Close()
}
