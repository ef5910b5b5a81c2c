package util

import "strings"

var truthyValues = map[string]struct{}{
	"true": {},
	"1":    {},
	"yes":  {},
	"on":   {},
}

// Truthy reports whether an environment style value means "enabled".
// Matching ignores case and surrounding whitespace.
func Truthy(s string) bool {
	_, ok := truthyValues[strings.ToLower(strings.TrimSpace(s))]
	return ok
}
