// Package env reads raw process environment variables for the few knobs that
// must be resolved before the typed config is loaded (logger output format,
// port overrides injected by the platform).
package env

import "os"

// Get returns the variable's value, or fallback when it is unset or empty.
// An explicitly empty variable counts as unset so platform templating that
// leaves `VAR=` behind does not clobber defaults.
func Get(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
