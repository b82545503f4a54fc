// Package category derives food group labels from IFCT item codes.
// The first letter of a code designates its group, e.g. "A001" is a
// cereal and "P014" a marine fish.
package category

import "unicode"

// Fallback is assigned to codes whose prefix is not in the group table.
const Fallback = "Other"

// groupByPrefix is the fixed IFCT 2017 code-prefix to group mapping.
var groupByPrefix = map[rune]string{
	'A': "Cereals & Millets",
	'B': "Grain Legumes",
	'C': "Green Leafy Veg",
	'D': "Other Veg",
	'E': "Fruits",
	'F': "Roots & Tubers",
	'G': "Condiments & Spices",
	'H': "Nuts & Oil Seeds",
	'I': "Sugars",
	'J': "Mushrooms",
	'K': "Misc",
	'L': "Milk & Dairy",
	'M': "Egg Products",
	'N': "Poultry",
	'O': "Animal Meat",
	'P': "Marine Fish",
	'Q': "Marine Shellfish",
	'R': "Marine Mollusks",
	'S': "Freshwater Fish",
}

// Derive maps an item code to its group label via the first character,
// case-insensitively. Unrecognized prefixes and empty codes map to
// Fallback.
func Derive(code string) string {
	for _, c := range code {
		if label, ok := groupByPrefix[unicode.ToUpper(c)]; ok {
			return label
		}
		break
	}
	return Fallback
}
