package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. In-process events already carry T;
// events read back from the dead-letter file carry generic JSON maps and are
// converted through a JSON round trip.
func DecodePayload[T any](input any) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var out T
	data, err := json.Marshal(input)
	if err != nil {
		return out, fmt.Errorf("encode payload %T: %w", input, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode payload as %T: %w", out, err)
	}
	return out, nil
}
