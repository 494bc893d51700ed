package unit

// Convert converts an amount between two units of the same volume or weight
// family using their scale factors. ok is false for cross-family requests and
// for count/other units, which have no universal relationship.
func Convert(amount float64, from, to Unit) (float64, bool) {
	if from.Family() != to.Family() {
		return 0, false
	}
	fromScale, err := from.ScaleFactor()
	if err != nil {
		return 0, false
	}
	toScale, err := to.ScaleFactor()
	if err != nil {
		return 0, false
	}
	return amount * fromScale / toScale, true
}

// SameFamily returns every unit sharing u's family, in picker order. Count
// and other units have no siblings, so the result is just u itself.
func SameFamily(u Unit) []Unit {
	var kinds []Kind
	switch u.Family() {
	case FamilyVolume:
		kinds = volumeKinds
	case FamilyWeight:
		kinds = weightKinds
	default:
		return []Unit{u}
	}
	units := make([]Unit, len(kinds))
	for i, k := range kinds {
		units[i] = Unit{Kind: k}
	}
	return units
}
