// Normalize loose configuration values before decoding.
package normalize

import (
	"strings"
)

// Boolean sanitizes for mapstructure.
//
// Returns "true" or "false" for yes/no and on/off, in any case.
// Other values are returned as is for mapstructure validation.
func Boolean(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "on":
		return "true"
	case "n", "no", "off":
		return "false"
	default:
		return v
	}
}
