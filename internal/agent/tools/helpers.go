package tools

import (
	"encoding/json"
	"fmt"
	"time"
)

// decodeInput maps loosely typed function-call args onto a typed struct.
func decodeInput(input map[string]interface{}, out interface{}) error {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	if err := json.Unmarshal(inputBytes, out); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	return nil
}

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
