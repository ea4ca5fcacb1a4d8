// Package storage persists analysis runs: metadata with per-member force
// envelopes as JSON, sampled diagrams as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"beamlab/internal/member"
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

type MemberSummary struct {
	Name      string  `json:"name"`
	Length    float64 `json:"length"`
	MaxShear  float64 `json:"max_shear"`
	MinShear  float64 `json:"min_shear"`
	MaxMoment float64 `json:"max_moment"`
	MinMoment float64 `json:"min_moment"`
	MaxAxial  float64 `json:"max_axial"`
	MinAxial  float64 `json:"min_axial"`
}

type RunMetadata struct {
	ID        string          `json:"id"`
	Model     string          `json:"model"`
	Timestamp time.Time       `json:"timestamp"`
	Samples   int             `json:"samples"`
	Members   []MemberSummary `json:"members"`
}

// SampleRow is one sampled position of one member.
type SampleRow struct {
	Member     string
	X          float64
	Shear      float64
	Moment     float64
	Axial      float64
	Slope      float64
	Deflection float64
}

var csvHeader = []string{"member", "x", "shear", "moment", "axial", "slope", "deflection"}

// Save writes a run directory with metadata and samples and returns the
// run id.
func (s *Store) Save(model string, samples int, summaries []MemberSummary, rows []SampleRow) (string, error) {
	runID := fmt.Sprintf("%s_%d", sanitize(model), time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Model:     model,
		Timestamp: time.Now(),
		Samples:   samples,
		Members:   summaries,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, r := range rows {
		rec := []string{
			r.Member,
			fmtFloat(r.X),
			fmtFloat(r.Shear),
			fmtFloat(r.Moment),
			fmtFloat(r.Axial),
			fmtFloat(r.Slope),
			fmtFloat(r.Deflection),
		}
		if err := w.Write(rec); err != nil {
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
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
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

// LoadSamples reads the sampled diagrams back, keyed by member name.
func (s *Store) LoadSamples(runID string) (map[string][]SampleRow, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	byMember := make(map[string][]SampleRow)
	for i, rec := range records {
		if i == 0 || len(rec) < len(csvHeader) {
			continue
		}
		row := SampleRow{Member: rec[0]}
		vals := make([]float64, 6)
		ok := true
		for j := 0; j < 6; j++ {
			v, err := strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		row.X, row.Shear, row.Moment = vals[0], vals[1], vals[2]
		row.Axial, row.Slope, row.Deflection = vals[3], vals[4], vals[5]
		byMember[row.Member] = append(byMember[row.Member], row)
	}
	return byMember, nil
}

// Summarize builds the stored envelope summary for a member.
func Summarize(m *member.Member) MemberSummary {
	e := m.Envelope()
	return MemberSummary{
		Name:      m.Name(),
		Length:    m.Length(),
		MaxShear:  e.MaxShear,
		MinShear:  e.MinShear,
		MaxMoment: e.MaxMoment,
		MinMoment: e.MinMoment,
		MaxAxial:  e.MaxAxial,
		MinAxial:  e.MinAxial,
	}
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}

func sanitize(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
