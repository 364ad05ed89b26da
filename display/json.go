package display

import "encoding/json"

// MarshalJSON marshals v with two-space indentation, the format every
// headsmith command and output file uses.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
