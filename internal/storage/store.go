// Package storage persists generated runs under a data directory, one
// subdirectory per run holding metadata.json and series.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
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
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Length     int       `json:"length"`
	Nodes      int       `json:"nodes"`
	R          []float64 `json:"r"`
	Sigma      float64   `json:"sigma"`
	Coupling   string    `json:"coupling"`
	Seed       int64     `json:"seed"`
	Attempts   int       `json:"attempts"`
	Degenerate bool      `json:"degenerate"`
	Adjacency  [][]int   `json:"adjacency"`
}

// Save writes metadata and the normalized series for one run and
// returns its generated run ID.
func (s *Store) Save(meta RunMetadata, series [][]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Coupling, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Length = len(series)
	if len(series) > 0 {
		meta.Nodes = len(series[0])
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

	csvPath := filepath.Join(runDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(series) == 0 {
		return runID, nil
	}

	header := make([]string, len(series[0]))
	for k := range header {
		header[k] = fmt.Sprintf("node%d", k+1)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	row := make([]string, len(series[0]))
	for _, vals := range series {
		for k, v := range vals {
			row[k] = strconv.FormatFloat(v, 'f', -1, 64)
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

// LoadSeries reads a stored series back as rows of node values.
func (s *Store) LoadSeries(runID string) ([][]float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
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

	if len(records) < 2 {
		return [][]float64{}, nil
	}

	series := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]float64, len(record))
		for k, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: bad value %q in %s: %w", field, runID, err)
			}
			row[k] = v
		}
		series = append(series, row)
	}

	return series, nil
}
