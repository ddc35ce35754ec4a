//go:build unit || e2e

package testutil

// Field sets key in a DTO map; a nil value removes the key so the field is absent from the JSON body.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
