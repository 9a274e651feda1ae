package repository

import (
	"encoding/json"
	"time"
)

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// jsonOrEmpty marshals v to JSON for storage, returning "" for nil or
// unmarshalable values. Stored structured fields are best-effort copies
// of the model's output, never load-bearing for correctness.
func jsonOrEmpty(v interface{}) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// unmarshalOrNil decodes a stored JSON column into out, treating empty
// strings and decode failures as absent.
func unmarshalOrNil(s string, out interface{}) bool {
	if s == "" {
		return false
	}
	return json.Unmarshal([]byte(s), out) == nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
