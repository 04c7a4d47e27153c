package facility

import "cmp"

// Resolves a facility from its numerical code. Upstream PRI parsing already
// divided the raw priority by 8 - this only validates the quotient. Any
// integer is accepted; codes outside 0-23 fail with InvalidFacilityCodeError.
func FromNumericalCode(code int) (matched Facility, err error) {
	matched, exists := facilityFromCode[code]
	if !exists {
		err = &InvalidFacilityCodeError{Code: code}
		return
	}
	return
}

// Resolves a facility from its textual label. An empty label means the caller
// had no facility configured and returns nil without error. Matching is exact
// and case-sensitive - no trimming, no case-folding - and any other unmatched
// label fails with InvalidFacilityLabelError.
func FromLabel(label string) (matched *Facility, err error) {
	if label == "" {
		return
	}

	found, exists := facilityFromLabel[label]
	if !exists {
		err = &InvalidFacilityLabelError{Label: label}
		return
	}

	matched = &found
	return
}

// Three-way comparison on numerical code - a strict total order, since codes
// are unique
func Compare(a, b Facility) int {
	return cmp.Compare(a.code, b.code)
}

// All facilities in ascending numerical code order
func All() []Facility {
	all := make([]Facility, len(facilities))
	copy(all, facilities[:])
	return all
}
