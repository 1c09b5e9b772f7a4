package service

import "strings"

const unknownID = "unknown"

// RequireEntityWithID rejects a nil entity with missing, and an entity whose
// extracted identifier is blank with missingID. A panicking accessor counts
// as a blank identifier. Pure; never touches the store.
func RequireEntityWithID[T any](entity *T, id func(*T) string, missing, missingID error) error {
	if entity == nil {
		return missing
	}
	if strings.TrimSpace(extractID(entity, id)) == "" {
		return missingID
	}
	return nil
}

// RequireText rejects a blank (empty or whitespace-only) value with missing.
func RequireText(value string, missing error) error {
	if strings.TrimSpace(value) == "" {
		return missing
	}
	return nil
}

// SafeID extracts an identifier for diagnostics. It never panics; a nil
// entity, failing accessor, or blank identifier yields "unknown".
func SafeID[T any](entity *T, id func(*T) string) string {
	if entity == nil {
		return unknownID
	}
	v := strings.TrimSpace(extractID(entity, id))
	if v == "" {
		return unknownID
	}
	return v
}

// extractID calls the accessor, treating a panic as a blank identifier.
func extractID[T any](entity *T, id func(*T) string) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	return id(entity)
}
