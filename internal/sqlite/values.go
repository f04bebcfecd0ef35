package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID generates a UUID v7 identifier for a newly persisted resource.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}
	return id.String(), nil
}

// nowString returns the timestamp format stored in the database.
func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// stringValue extracts a string entry from a values map.
func stringValue(values map[string]any, key string) (string, bool) {
	v, ok := values[key].(string)
	return v, ok
}

// intValue extracts an int entry from a values map.
func intValue(values map[string]any, key string) (int, bool) {
	v, ok := values[key].(int)
	return v, ok
}

// boolValue extracts a bool entry from a values map.
func boolValue(values map[string]any, key string) (bool, bool) {
	v, ok := values[key].(bool)
	return v, ok
}
