package models

import (
	"encoding/json"
	"fmt"
)

// FormNumber is a numeric form field kept as the raw text the client sent, so
// the ledger can tell an empty field from an unparseable one. It decodes from
// a JSON string or a JSON number; null decodes to empty.
type FormNumber string

// UnmarshalJSON implements json.Unmarshaler.
func (n *FormNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = FormNumber(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected a number or a string: %w", err)
	}
	*n = FormNumber(num.String())
	return nil
}

// String returns the raw text.
func (n FormNumber) String() string { return string(n) }
