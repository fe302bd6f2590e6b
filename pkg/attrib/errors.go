package attrib

import "fmt"

// MalformedAttributeError is returned by Parse when a raw attribute string
// doesn't contain a '=' separator.
type MalformedAttributeError struct {
	Raw string
}

// Error implements the error interface.
func (e *MalformedAttributeError) Error() string {
	return fmt.Sprintf("malformed attribute: %q", e.Raw)
}
