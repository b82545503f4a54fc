package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ifct-tools/explorer-api/internal/category"
	"github.com/ifct-tools/explorer-api/internal/metrics"
	"github.com/ifct-tools/explorer-api/internal/models"
)

// stringColumns are the identifying columns of the source table. Every
// other header column is treated as numeric nutrient data.
var stringColumns = map[string]bool{
	"code": true,
	"name": true,
	"scie": true,
	"regn": true,
}

// sourceKey identifies one version of the backing file. A matching key
// means the cached Dataset is still valid.
type sourceKey struct {
	path    string
	size    int64
	modTime time.Time
}

// Loader reads and normalizes the composition CSV. The result is
// memoized per source identity (absolute path, size, mtime): repeated
// loads of an unchanged file return the same Dataset without touching
// disk again, and a changed file triggers exactly one re-read on the
// next request.
type Loader struct {
	logger *slog.Logger

	mu     sync.RWMutex
	key    sourceKey
	cached *Dataset
}

// NewLoader creates a loader with an empty cache.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load returns the Dataset for the file at path, reading and
// normalizing it only when the cache has no entry for the file's
// current identity. An unreadable source yields ErrSourceUnavailable.
func (l *Loader) Load(path string) (*Dataset, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %s: %v", ErrSourceUnavailable, path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		metrics.DatasetLoadsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	key := sourceKey{path: abs, size: info.Size(), modTime: info.ModTime()}

	l.mu.RLock()
	if l.cached != nil && l.key == key {
		ds := l.cached
		l.mu.RUnlock()
		return ds, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Another request may have loaded it while we waited for the lock.
	if l.cached != nil && l.key == key {
		return l.cached, nil
	}

	start := time.Now()
	ds, err := readFile(abs)
	if err != nil {
		metrics.DatasetLoadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	l.key = key
	l.cached = ds

	metrics.DatasetLoadsTotal.WithLabelValues("success").Inc()
	metrics.DatasetRecords.Set(float64(ds.Len()))

	l.logger.Info("dataset loaded",
		"path", abs,
		"records", ds.Len(),
		"snapshot_id", ds.SnapshotID(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return ds, nil
}

// readFile parses and normalizes the CSV at path.
func readFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	ds, err := parseTable(f)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrSourceUnavailable, path, err)
	}
	return ds, nil
}

// parseTable reads a header row plus one row per record and applies the
// normalization rules: the category is derived from the code prefix and
// every blank or unparseable numeric cell becomes 0.
func parseTable(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, col := range header {
		header[i] = strings.ToLower(strings.TrimSpace(col))
	}

	records := make([]models.FoodRecord, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(records)+2, err)
		}

		rec := models.FoodRecord{
			Nutrients: make(map[string]float64),
		}
		for i, col := range header {
			var cell string
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}

			switch col {
			case "code":
				rec.Code = cell
			case "name":
				rec.Name = cell
			case "scie":
				rec.ScientificName = cell
			case "regn":
				rec.Region = cell
			default:
				rec.Nutrients[col] = parseNutrient(cell)
			}
		}
		rec.Category = category.Derive(rec.Code)
		records = append(records, rec)
	}

	return newDataset(uuid.New().String(), records), nil
}

// parseNutrient applies the shared missing-value policy: anything that
// is not a finite number reads as 0.
func parseNutrient(cell string) float64 {
	if cell == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
