package nutrient

// FieldSpec binds a display label to a source column and its unit.
type FieldSpec struct {
	Label string
	Key   string
	Unit  string
}

// The grouping tables below are fixed, hand-enumerated views over the
// IFCT column set. Values are per 100 g edible portion.

var macroMetrics = []FieldSpec{
	{Label: "Protein", Key: "protcnt", Unit: "g"},
	{Label: "Carbs (Avail)", Key: "choavldf", Unit: "g"},
	{Label: "Total Fat", Key: "fatce", Unit: "g"},
	{Label: "Fiber", Key: "fibtg", Unit: "g"},
}

var carbBreakdown = []FieldSpec{
	{Label: "Starch", Key: "starch", Unit: "g"},
	{Label: "Total Sugars", Key: "fsugar", Unit: "g"},
	{Label: "Soluble Fiber", Key: "fibsol", Unit: "g"},
	{Label: "Insoluble Fiber", Key: "fibins", Unit: "g"},
}

var macroMinerals = []FieldSpec{
	{Label: "Calcium", Key: "ca", Unit: "mg"},
	{Label: "Magnesium", Key: "mg", Unit: "mg"},
	{Label: "Phosphorus", Key: "p", Unit: "mg"},
	{Label: "Sodium", Key: "na", Unit: "mg"},
	{Label: "Potassium", Key: "k", Unit: "mg"},
}

var traceElements = []FieldSpec{
	{Label: "Iron", Key: "fe", Unit: "mg"},
	{Label: "Zinc", Key: "zn", Unit: "mg"},
	{Label: "Copper", Key: "cu", Unit: "mg"},
	{Label: "Manganese", Key: "mn", Unit: "mg"},
}

var waterSolubleVitamins = []FieldSpec{
	{Label: "Vitamin C", Key: "vitc", Unit: "mg"},
	{Label: "Total Folates", Key: "folsum", Unit: "µg"},
}

var bVitamins = []FieldSpec{
	{Label: "Thiamin (B1)", Key: "thia", Unit: "mg"},
	{Label: "Riboflavin (B2)", Key: "ribf", Unit: "mg"},
	{Label: "Niacin (B3)", Key: "nia", Unit: "mg"},
	{Label: "Pantothenic (B5)", Key: "pantac", Unit: "mg"},
	{Label: "Vitamin B6", Key: "vitb6c", Unit: "mg"},
}

// Fat-soluble vitamin totals are summed from two source columns at
// presentation time; they are not stored in the table.
var fatSolubleComposites = []struct {
	Label string
	KeyA  string
	KeyB  string
	Unit  string
}{
	{Label: "Vitamin D2+D3", KeyA: "ergcal", KeyB: "chocal", Unit: "µg"},
	{Label: "Vitamin E", KeyA: "vite", KeyB: "tocpha", Unit: "mg"},
	{Label: "Vitamin K", KeyA: "vitk1", KeyB: "vitk2", Unit: "µg"},
}

var retinol = FieldSpec{Label: "Vitamin A (Retinol)", Key: "retol", Unit: "µg"}

var fattyAcids = []FieldSpec{
	{Label: "Saturated (SFA)", Key: "fasat", Unit: "g"},
	{Label: "Monounsat (MUFA)", Key: "fams", Unit: "g"},
	{Label: "Polyunsat (PUFA)", Key: "fapu", Unit: "g"},
}

var lipidHealth = []FieldSpec{
	{Label: "Cholesterol", Key: "cholc", Unit: "mg"},
	{Label: "Omega-3 (Alpha-Linolenic)", Key: "ala", Unit: "mg"},
}

var aminoAcids = []FieldSpec{
	{Label: "Arg", Key: "arg", Unit: "mg/g N"},
	{Label: "His", Key: "his", Unit: "mg/g N"},
	{Label: "Ile", Key: "ile", Unit: "mg/g N"},
	{Label: "Leu", Key: "leu", Unit: "mg/g N"},
	{Label: "Lys", Key: "lys", Unit: "mg/g N"},
	{Label: "Met", Key: "met", Unit: "mg/g N"},
	{Label: "Phe", Key: "phe", Unit: "mg/g N"},
	{Label: "Thr", Key: "thr", Unit: "mg/g N"},
	{Label: "Trp", Key: "trp", Unit: "mg/g N"},
	{Label: "Val", Key: "val", Unit: "mg/g N"},
}

var bioactiveMetrics = []FieldSpec{
	{Label: "Total Polyphenols", Key: "polyph", Unit: "mg"},
	{Label: "Phytate", Key: "phytac", Unit: "mg"},
	{Label: "Total Oxalates", Key: "oxalt", Unit: "mg"},
	{Label: "Saponins", Key: "sapon", Unit: "mg"},
}

var phenolics = []FieldSpec{
	{Label: "Gallic Acid", Key: "gallac", Unit: "mg"},
	{Label: "Quercetin", Key: "querce", Unit: "mg"},
}
