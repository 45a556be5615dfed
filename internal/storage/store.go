package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/pairpot/internal/curve"
)

const (
	metadataFile = "metadata.json"
	curvesFile   = "curves.csv"
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

type Metadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Timestamp time.Time          `json:"timestamp"`
	Title     string             `json:"title"`
	XLabel    string             `json:"x_label"`
	YLabel    string             `json:"y_label"`
	Series    []string           `json:"series"`
	Points    int                `json:"points"`
	Params    map[string]float64 `json:"params"`
	Labels    map[string]string  `json:"labels,omitempty"`
}

// Save writes set under a new id derived from kind. params holds numeric
// inputs, labels the non-numeric ones. All series must share the x values of
// the first one.
func (s *Store) Save(kind string, params map[string]float64, labels map[string]string, set curve.Set) (string, error) {
	if err := set.Validate(); err != nil {
		return "", err
	}
	x := set.Series[0].X
	names := make([]string, len(set.Series))
	for i, ser := range set.Series {
		if len(ser.X) != len(x) {
			return "", fmt.Errorf("series %s has %d points, want %d: %w", ser.Name, len(ser.X), len(x), curve.ErrMismatch)
		}
		names[i] = ser.Name
	}

	now := time.Now()
	id := fmt.Sprintf("%s_%d", kind, now.UnixNano())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := Metadata{
		ID:        id,
		Kind:      kind,
		Timestamp: now,
		Title:     set.Title,
		XLabel:    set.XLabel,
		YLabel:    set.YLabel,
		Series:    names,
		Points:    len(x),
		Params:    params,
		Labels:    labels,
	}
	if err := writeJSON(filepath.Join(dir, metadataFile), meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(dir, curvesFile))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"x"}, names...)); err != nil {
		return "", err
	}
	for i := range x {
		row := make([]string, 0, len(names)+1)
		row = append(row, strconv.FormatFloat(x[i], 'g', -1, 64))
		for _, ser := range set.Series {
			row = append(row, strconv.FormatFloat(ser.Y[i], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return id, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// List returns saved metadata, oldest first. Unreadable entries are skipped.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	out := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		out = append(out, *meta)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSet reads a saved curve set back. ±Inf and NaN survive the round trip.
func (s *Store) LoadSet(id string) (curve.Set, error) {
	meta, err := s.Load(id)
	if err != nil {
		return curve.Set{}, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, id, curvesFile))
	if err != nil {
		return curve.Set{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return curve.Set{}, err
	}
	if len(records) == 0 {
		return curve.Set{}, fmt.Errorf("%s: missing header", id)
	}

	header := records[0]
	rows := records[1:]
	x := make([]float64, len(rows))
	ys := make([][]float64, len(header)-1)
	for j := range ys {
		ys[j] = make([]float64, len(rows))
	}

	for i, rec := range rows {
		if len(rec) != len(header) {
			return curve.Set{}, fmt.Errorf("%s: row %d has %d fields, want %d", id, i+1, len(rec), len(header))
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return curve.Set{}, fmt.Errorf("%s: row %d: %w", id, i+1, err)
			}
			if j == 0 {
				x[i] = v
			} else {
				ys[j-1][i] = v
			}
		}
	}

	set := curve.Set{Title: meta.Title, XLabel: meta.XLabel, YLabel: meta.YLabel}
	for j, name := range header[1:] {
		set.Series = append(set.Series, curve.Series{Name: name, X: x, Y: ys[j]})
	}
	return set, nil
}
