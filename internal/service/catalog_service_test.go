package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ifct-tools/explorer-api/internal/dataset"
	"github.com/ifct-tools/explorer-api/pkg/logger"
)

const fixtureCSV = `code,name,scie,regn,enerc,protcnt,choavldf,fatce
A001,Bajra,Pennisetum typhoideum,All India,347.9,10.96,61.78,5.43
E053,Mango,Mangifera indica,North East,42,0.8,9.3,0.4
E054,Mango,Mangifera indica,South,50,0.9,11.1,0.5
P014,Rohu,Labeo rohita,All India,97,16.9,,2.9
`

func newTestService(t *testing.T) *CatalogService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ifct.csv")
	if err := os.WriteFile(path, []byte(fixtureCSV), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	loader := dataset.NewLoader(logger.New("error"))
	return NewCatalogService(loader, path)
}

func TestCatalogService_Categories(t *testing.T) {
	svc := newTestService(t)

	categories, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := []string{"All", "Cereals & Millets", "Fruits", "Marine Fish"}
	if !reflect.DeepEqual(categories, want) {
		t.Errorf("Categories() = %v, want %v", categories, want)
	}
}

func TestCatalogService_Items(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{"all items", "All", []string{"Bajra", "Mango", "Rohu"}},
		{"fruits dedupes mango", "Fruits", []string{"Mango"}},
		{"unknown category is empty", "Sugars", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, err := svc.Items(context.Background(), tc.category)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if !reflect.DeepEqual(items, tc.want) {
				t.Errorf("Items(%q) = %v, want %v", tc.category, items, tc.want)
			}
		})
	}
}

func TestCatalogService_Record(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Record(context.Background(), "Fruits", "Mango")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if rec.Code != "E053" {
		t.Errorf("expected first Mango (E053), got %q", rec.Code)
	}

	_, err = svc.Record(context.Background(), "Fruits", "Rohu")
	if !errors.Is(err, dataset.ErrSelectionNotFound) {
		t.Errorf("expected ErrSelectionNotFound, got: %v", err)
	}
}

func TestCatalogService_Profile(t *testing.T) {
	svc := newTestService(t)

	profile, err := svc.Profile(context.Background(), "All", "Rohu")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if profile.Category != "Marine Fish" {
		t.Errorf("expected category 'Marine Fish', got %q", profile.Category)
	}
	if profile.Energy.Display != "97 kcal" {
		t.Errorf("expected energy display '97 kcal', got %q", profile.Energy.Display)
	}
}

func TestCatalogService_MissingSource(t *testing.T) {
	loader := dataset.NewLoader(logger.New("error"))
	svc := NewCatalogService(loader, filepath.Join(t.TempDir(), "missing.csv"))

	_, err := svc.Categories(context.Background())
	if !errors.Is(err, dataset.ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable from Categories, got: %v", err)
	}

	_, err = svc.Profile(context.Background(), "All", "Rohu")
	if !errors.Is(err, dataset.ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable from Profile, got: %v", err)
	}

	status := svc.Status(context.Background())
	if status.Loaded {
		t.Error("expected unloaded status for a missing source")
	}
	if status.Error == "" {
		t.Error("expected an error message in the status")
	}
}

func TestCatalogService_Status(t *testing.T) {
	svc := newTestService(t)

	status := svc.Status(context.Background())
	if !status.Loaded {
		t.Fatal("expected loaded status")
	}
	if status.Records != 4 {
		t.Errorf("expected 4 records, got %d", status.Records)
	}
	if status.SnapshotID == "" {
		t.Error("expected a snapshot ID")
	}
}
