package models

// FoodRecord represents one food item from the composition table.
// All nutrient values are per 100 g edible portion, normalized so that
// a missing measurement reads as 0.
type FoodRecord struct {
	Code           string             `json:"code"`
	Name           string             `json:"name"`
	ScientificName string             `json:"scie"`
	Region         string             `json:"regn"`
	Category       string             `json:"category"`
	Nutrients      map[string]float64 `json:"nutrients"`
}

// Nutrient returns the value for a nutrient key. Keys absent from the
// source table read as 0, the same policy the normalizer applies to
// blank cells.
func (r *FoodRecord) Nutrient(key string) float64 {
	return r.Nutrients[key]
}
