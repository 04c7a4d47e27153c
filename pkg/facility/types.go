// Syslog facility classification as defined in RFC 5424, with textual labels
// per RFC 5427. The canonical set of 24 facilities is fixed at package
// initialization and read-only afterward - safe for unsynchronized concurrent
// reads.
package facility

import "fmt"

// Immutable facility value - one per valid numerical code, obtained through
// FromNumericalCode or FromLabel
type Facility struct {
	code  int
	label string
}

// Syslog facility numerical code (0-23)
func (f Facility) NumericalCode() int {
	return f.code
}

// Syslog facility textual label - uppercase, never empty
func (f Facility) Label() string {
	return f.label
}

func (f Facility) String() string {
	return f.label
}

// Numerical code outside the valid 0-23 range
type InvalidFacilityCodeError struct {
	Code int
}

func (e *InvalidFacilityCodeError) Error() string {
	return fmt.Sprintf("invalid facility '%d'", e.Code)
}

// Non-empty label not matching any known facility
type InvalidFacilityLabelError struct {
	Label string
}

func (e *InvalidFacilityLabelError) Error() string {
	return fmt.Sprintf("invalid facility '%s'", e.Label)
}
