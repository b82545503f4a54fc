// Package dataset loads the IFCT composition table and serves it as an
// immutable in-memory collection.
//
// Normalization fills every blank numeric cell with 0, so a stored zero
// is indistinguishable from "not measured". The source table behaves
// the same way; keeping the ambiguity is intentional.
package dataset

import (
	"errors"
	"sort"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/ifct-tools/explorer-api/internal/models"
)

var (
	// ErrSourceUnavailable indicates the backing CSV could not be read.
	ErrSourceUnavailable = errors.New("dataset source unavailable")

	// ErrSelectionNotFound indicates a name lookup outside the current
	// candidate set.
	ErrSelectionNotFound = errors.New("selection not found")
)

// AllCategories is the sentinel filter matching every record.
const AllCategories = "All"

// Dataset is the normalized food-composition table for one source
// snapshot. It is never mutated after construction; lookups are pure
// reads and safe for concurrent use.
type Dataset struct {
	snapshotID string
	records    []models.FoodRecord
	categories []string

	// nameFilter gives a fast negative answer for names that appear
	// nowhere in the table. A hit still requires a scan.
	nameFilter *bloom.BloomFilter
}

const nameFilterFalsePositiveRate = 0.01

func newDataset(snapshotID string, records []models.FoodRecord) *Dataset {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, rec := range records {
		if !seen[rec.Category] {
			seen[rec.Category] = true
			categories = append(categories, rec.Category)
		}
	}
	sort.Strings(categories)

	n := len(records)
	if n == 0 {
		n = 1 // bloom.NewWithEstimates rejects zero capacity
	}
	filter := bloom.NewWithEstimates(uint(n), nameFilterFalsePositiveRate)
	for _, rec := range records {
		filter.AddString(rec.Name)
	}

	return &Dataset{
		snapshotID: snapshotID,
		records:    records,
		categories: categories,
		nameFilter: filter,
	}
}

// SnapshotID identifies the load that produced this Dataset.
func (d *Dataset) SnapshotID() string {
	return d.snapshotID
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Categories returns every distinct derived category, alphabetically
// ordered. The AllCategories sentinel is not included.
func (d *Dataset) Categories() []string {
	out := make([]string, len(d.categories))
	copy(out, d.categories)
	return out
}

// Names returns the distinct display names within the category filter,
// in first-seen source order. AllCategories (or "") matches every
// record.
func (d *Dataset) Names(category string) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for i := range d.records {
		rec := &d.records[i]
		if !matches(rec, category) {
			continue
		}
		if !seen[rec.Name] {
			seen[rec.Name] = true
			names = append(names, rec.Name)
		}
	}
	return names
}

// Resolve returns the first record in source order whose name matches
// within the category filter. A name outside the candidate set yields
// ErrSelectionNotFound; there is no fallback record.
func (d *Dataset) Resolve(category, name string) (*models.FoodRecord, error) {
	if !d.nameFilter.TestString(name) {
		return nil, ErrSelectionNotFound
	}

	for i := range d.records {
		rec := &d.records[i]
		if matches(rec, category) && rec.Name == name {
			out := *rec
			return &out, nil
		}
	}
	return nil, ErrSelectionNotFound
}

func matches(rec *models.FoodRecord, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	return rec.Category == category
}
