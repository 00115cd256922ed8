package atom

// vdwRadius is a map from chemical element to van der Waals radius, in
// Ångström. Values ported from goChem's symbolVdwrad table
// (other_examples/rmera-gochem__atomicdata.go in the retrieval pack),
// sourced there from 10.1021/j100785a001 and 10.1021/jp8111556, with
// metal radii from 10.1023/A:1011625728803. Only the "bio-element" rows
// relevant to protein structures are carried over.
var vdwRadius = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
}

// VdwRadius returns the van der Waals radius for element, or
// DefaultVdwRadius if the element is not in the table.
func VdwRadius(element string) float64 {
	if r, ok := vdwRadius[element]; ok {
		return r
	}
	return DefaultVdwRadius
}
