package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/sim"
)

// Store persists batch runs as one directory per run: metadata.json plus
// history.csv with the sampled energy and bridge series.
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
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	String1Hz       float64   `json:"string1_hz"`
	String2Hz       float64   `json:"string2_hz"`
	Damping         float64   `json:"damping"`
	BridgeStiffness float64   `json:"bridge_stiffness"`
	Dt              float64   `json:"dt"`
	Steps           int       `json:"steps"`
	FinalEnergy1    float64   `json:"final_energy1"`
	FinalEnergy2    float64   `json:"final_energy2"`
}

// Save writes one run. The run ID carries the nanosecond wall clock so
// back-to-back saves never collide.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Steps = result.Steps
	if n := len(result.Energy1); n > 0 {
		meta.FinalEnergy1 = result.Energy1[n-1]
		meta.FinalEnergy2 = result.Energy2[n-1]
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

	csvFile, err := os.Create(filepath.Join(runDir, "history.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "energy1", "energy2", "bridge_y"}); err != nil {
		return "", err
	}
	for i := range result.Times {
		row := []string{
			strconv.FormatFloat(result.Times[i], 'f', 9, 64),
			strconv.FormatFloat(result.Energy1[i], 'f', 9, 64),
			strconv.FormatFloat(result.Energy2[i], 'f', 9, 64),
			strconv.FormatFloat(result.BridgeY[i], 'f', 9, 64),
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

// History holds the sampled series loaded back from a run directory.
type History struct {
	Times   []float64
	Energy1 []float64
	Energy2 []float64
	BridgeY []float64
}

func (s *Store) LoadHistory(runID string) (*History, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "history.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	h := &History{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}
		vals := make([]float64, 4)
		ok := true
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		h.Times = append(h.Times, vals[0])
		h.Energy1 = append(h.Energy1, vals[1])
		h.Energy2 = append(h.Energy2, vals[2])
		h.BridgeY = append(h.BridgeY, vals[3])
	}

	return h, nil
}
