// Package nutrient assembles a food record's raw values into the six
// grouped views a dashboard renders: macros, minerals, vitamins, fats,
// amino acids, and bioactives.
//
// Assembly is pure and stateless: the same record always yields the
// same Profile. Normalization upstream guarantees every value is
// present, so no missing-value handling happens here.
package nutrient

import (
	"strconv"

	"github.com/ifct-tools/explorer-api/internal/models"
)

// Metric is one headline value with its formatted display string.
type Metric struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Display string  `json:"display"`
}

// Row is one line of a detail table.
type Row struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Table is a titled list of rows sharing one unit.
type Table struct {
	Title string `json:"title"`
	Unit  string `json:"unit"`
	Rows  []Row  `json:"rows"`
}

// Chart kinds understood by the dashboard front end.
const (
	ChartPie   = "pie"
	ChartBar   = "bar"
	ChartRadar = "radar"
)

// Series is the data for one chart.
type Series struct {
	Title  string    `json:"title"`
	Kind   string    `json:"kind"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// GroupView is one tab of the profile.
type GroupView struct {
	Title   string   `json:"title"`
	Metrics []Metric `json:"metrics,omitempty"`
	Tables  []Table  `json:"tables,omitempty"`
	Charts  []Series `json:"charts,omitempty"`
}

// Profile is the full rendered view of one food record.
type Profile struct {
	Code           string      `json:"code"`
	Name           string      `json:"name"`
	ScientificName string      `json:"scie"`
	Region         string      `json:"regn"`
	Category       string      `json:"category"`
	Energy         Metric      `json:"energy"`
	Tabs           []GroupView `json:"tabs"`
}

// BuildProfile renders a record into its grouped presentation views.
func BuildProfile(rec *models.FoodRecord) *Profile {
	return &Profile{
		Code:           rec.Code,
		Name:           rec.Name,
		ScientificName: rec.ScientificName,
		Region:         rec.Region,
		Category:       rec.Category,
		Energy:         energyMetric(rec),
		Tabs: []GroupView{
			macrosView(rec),
			mineralsView(rec),
			vitaminsView(rec),
			fatsView(rec),
			aminoAcidsView(rec),
			bioactivesView(rec),
		},
	}
}

// energyMetric truncates kcal to a whole number, matching how the
// dashboard headline displays it.
func energyMetric(rec *models.FoodRecord) Metric {
	v := rec.Nutrient("enerc")
	return Metric{
		Label:   "Energy",
		Value:   v,
		Unit:    "kcal",
		Display: strconv.Itoa(int(v)) + " kcal",
	}
}

func macrosView(rec *models.FoodRecord) GroupView {
	return GroupView{
		Title:   "Macros",
		Metrics: metricsFor(rec, macroMetrics),
		Tables:  []Table{tableFor(rec, "Carbohydrate Breakdown", "g", carbBreakdown)},
		Charts: []Series{seriesFor(rec, "Macro Split", ChartPie, []FieldSpec{
			{Label: "Protein", Key: "protcnt"},
			{Label: "Carbs", Key: "choavldf"},
			{Label: "Fat", Key: "fatce"},
		})},
	}
}

func mineralsView(rec *models.FoodRecord) GroupView {
	return GroupView{
		Title: "Minerals",
		Charts: []Series{
			seriesFor(rec, "Macro Minerals (mg)", ChartBar, macroMinerals),
			seriesFor(rec, "Trace Elements (mg)", ChartBar, traceElements),
		},
	}
}

func vitaminsView(rec *models.FoodRecord) GroupView {
	metrics := metricsFor(rec, waterSolubleVitamins)
	metrics = append(metrics, metricFor(rec, retinol))
	for _, c := range fatSolubleComposites {
		total := rec.Nutrient(c.KeyA) + rec.Nutrient(c.KeyB)
		metrics = append(metrics, Metric{
			Label:   c.Label,
			Value:   total,
			Unit:    c.Unit,
			Display: formatValue(total, c.Unit),
		})
	}

	return GroupView{
		Title:   "Vitamins",
		Metrics: metrics,
		Tables:  []Table{tableFor(rec, "B Vitamins", "mg", bVitamins)},
	}
}

func fatsView(rec *models.FoodRecord) GroupView {
	return GroupView{
		Title:   "Fats",
		Metrics: metricsFor(rec, lipidHealth),
		Charts:  []Series{seriesFor(rec, "Fat Composition", ChartRadar, fattyAcids)},
	}
}

func aminoAcidsView(rec *models.FoodRecord) GroupView {
	return GroupView{
		Title:  "Amino Acids",
		Charts: []Series{seriesFor(rec, "Essential Amino Acids (mg/g N)", ChartRadar, aminoAcids)},
	}
}

func bioactivesView(rec *models.FoodRecord) GroupView {
	return GroupView{
		Title:   "Bioactives",
		Metrics: metricsFor(rec, bioactiveMetrics),
		Tables:  []Table{tableFor(rec, "Specific Phenolics", "mg", phenolics)},
	}
}

func metricFor(rec *models.FoodRecord, spec FieldSpec) Metric {
	v := rec.Nutrient(spec.Key)
	return Metric{
		Label:   spec.Label,
		Value:   v,
		Unit:    spec.Unit,
		Display: formatValue(v, spec.Unit),
	}
}

func metricsFor(rec *models.FoodRecord, specs []FieldSpec) []Metric {
	out := make([]Metric, 0, len(specs))
	for _, spec := range specs {
		out = append(out, metricFor(rec, spec))
	}
	return out
}

func tableFor(rec *models.FoodRecord, title, unit string, specs []FieldSpec) Table {
	rows := make([]Row, 0, len(specs))
	for _, spec := range specs {
		rows = append(rows, Row{Label: spec.Label, Value: rec.Nutrient(spec.Key)})
	}
	return Table{Title: title, Unit: unit, Rows: rows}
}

func seriesFor(rec *models.FoodRecord, title, kind string, specs []FieldSpec) Series {
	labels := make([]string, 0, len(specs))
	values := make([]float64, 0, len(specs))
	for _, spec := range specs {
		labels = append(labels, spec.Label)
		values = append(values, rec.Nutrient(spec.Key))
	}
	return Series{Title: title, Kind: kind, Labels: labels, Values: values}
}

// formatValue renders "<number> <unit>" with no trailing zeros on the
// number.
func formatValue(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + unit
}
