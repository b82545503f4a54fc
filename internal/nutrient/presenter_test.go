package nutrient

import (
	"testing"

	"github.com/ifct-tools/explorer-api/internal/models"
)

func testRecord(nutrients map[string]float64) *models.FoodRecord {
	return &models.FoodRecord{
		Code:           "P014",
		Name:           "Rohu",
		ScientificName: "Labeo rohita",
		Region:         "All India",
		Category:       "Marine Fish",
		Nutrients:      nutrients,
	}
}

func TestBuildProfile_Header(t *testing.T) {
	rec := testRecord(map[string]float64{"enerc": 97, "protcnt": 16.9})

	profile := BuildProfile(rec)

	if profile.Name != "Rohu" {
		t.Errorf("expected name 'Rohu', got %q", profile.Name)
	}
	if profile.Category != "Marine Fish" {
		t.Errorf("expected category 'Marine Fish', got %q", profile.Category)
	}
	if profile.Energy.Display != "97 kcal" {
		t.Errorf("expected energy display '97 kcal', got %q", profile.Energy.Display)
	}
}

func TestBuildProfile_EnergyTruncation(t *testing.T) {
	rec := testRecord(map[string]float64{"enerc": 347.9})

	profile := BuildProfile(rec)

	// The headline energy metric truncates, it does not round.
	if profile.Energy.Display != "347 kcal" {
		t.Errorf("expected energy display '347 kcal', got %q", profile.Energy.Display)
	}
	if profile.Energy.Value != 347.9 {
		t.Errorf("expected raw energy 347.9, got %v", profile.Energy.Value)
	}
}

func TestBuildProfile_TabOrder(t *testing.T) {
	profile := BuildProfile(testRecord(nil))

	want := []string{"Macros", "Minerals", "Vitamins", "Fats", "Amino Acids", "Bioactives"}
	if len(profile.Tabs) != len(want) {
		t.Fatalf("expected %d tabs, got %d", len(want), len(profile.Tabs))
	}
	for i, title := range want {
		if profile.Tabs[i].Title != title {
			t.Errorf("tab %d: expected %q, got %q", i, title, profile.Tabs[i].Title)
		}
	}
}

func TestBuildProfile_VitaminComposites(t *testing.T) {
	tests := []struct {
		name      string
		nutrients map[string]float64
		label     string
		want      float64
	}{
		{
			name:      "vitamin D is ergocalciferol plus cholecalciferol",
			nutrients: map[string]float64{"ergcal": 1.2, "chocal": 14.3},
			label:     "Vitamin D2+D3",
			want:      15.5,
		},
		{
			name:      "vitamin E is vite plus tocopherol fraction",
			nutrients: map[string]float64{"vite": 0.5, "tocpha": 0.25},
			label:     "Vitamin E",
			want:      0.75,
		},
		{
			name:      "vitamin K is K1 plus K2",
			nutrients: map[string]float64{"vitk1": 3.1, "vitk2": 0.9},
			label:     "Vitamin K",
			want:      4.0,
		},
		{
			name:      "absent source fields default to zero",
			nutrients: map[string]float64{},
			label:     "Vitamin D2+D3",
			want:      0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			profile := BuildProfile(testRecord(tc.nutrients))

			metric, ok := findMetric(profile.Tabs[2].Metrics, tc.label)
			if !ok {
				t.Fatalf("metric %q not found in vitamins tab", tc.label)
			}
			if metric.Value != tc.want {
				t.Errorf("expected %q = %v, got %v", tc.label, tc.want, metric.Value)
			}
		})
	}
}

func TestBuildProfile_MacroPieSeries(t *testing.T) {
	rec := testRecord(map[string]float64{
		"protcnt":  16.9,
		"choavldf": 0,
		"fatce":    2.9,
	})

	profile := BuildProfile(rec)

	macros := profile.Tabs[0]
	if len(macros.Charts) != 1 {
		t.Fatalf("expected 1 macro chart, got %d", len(macros.Charts))
	}

	pie := macros.Charts[0]
	if pie.Kind != ChartPie {
		t.Errorf("expected pie chart, got %q", pie.Kind)
	}
	wantValues := []float64{16.9, 0, 2.9}
	for i, v := range wantValues {
		if pie.Values[i] != v {
			t.Errorf("pie value %d: expected %v, got %v", i, v, pie.Values[i])
		}
	}
}

func TestBuildProfile_AminoRadar(t *testing.T) {
	rec := testRecord(map[string]float64{"lys": 52.3, "trp": 9.8})

	profile := BuildProfile(rec)

	amino := profile.Tabs[4]
	if len(amino.Charts) != 1 {
		t.Fatalf("expected 1 amino chart, got %d", len(amino.Charts))
	}

	radar := amino.Charts[0]
	if radar.Kind != ChartRadar {
		t.Errorf("expected radar chart, got %q", radar.Kind)
	}
	if len(radar.Labels) != 10 {
		t.Errorf("expected 10 amino acids, got %d", len(radar.Labels))
	}

	// Unmeasured acids chart as 0 alongside the measured ones.
	byLabel := make(map[string]float64)
	for i, label := range radar.Labels {
		byLabel[label] = radar.Values[i]
	}
	if byLabel["Lys"] != 52.3 {
		t.Errorf("expected Lys 52.3, got %v", byLabel["Lys"])
	}
	if byLabel["Arg"] != 0 {
		t.Errorf("expected Arg 0, got %v", byLabel["Arg"])
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  string
	}{
		{16.9, "g", "16.9 g"},
		{0, "mg", "0 mg"},
		{27.35, "mg", "27.35 mg"},
		{100, "µg", "100 µg"},
	}

	for _, tc := range tests {
		if got := formatValue(tc.value, tc.unit); got != tc.want {
			t.Errorf("formatValue(%v, %q) = %q, want %q", tc.value, tc.unit, got, tc.want)
		}
	}
}

func TestBuildProfile_Pure(t *testing.T) {
	rec := testRecord(map[string]float64{"enerc": 97, "ergcal": 1.2, "chocal": 14.3})

	first := BuildProfile(rec)
	second := BuildProfile(rec)

	if first.Energy != second.Energy {
		t.Error("expected identical energy metrics for the same record")
	}
	if len(first.Tabs) != len(second.Tabs) {
		t.Error("expected identical tab structure for the same record")
	}
}

func findMetric(metrics []Metric, label string) (Metric, bool) {
	for _, m := range metrics {
		if m.Label == label {
			return m, true
		}
	}
	return Metric{}, false
}
