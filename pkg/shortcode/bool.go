// Package shortcode scans and parses WordPress-style [tag attr=value]...[/tag] shortcodes.
package shortcode

import "strings"

// ToBoolean coerces an attribute value to a bool. "true", "1", "yes" and "on"
// are true in any case; everything else, including the empty string, is false.
func ToBoolean(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
