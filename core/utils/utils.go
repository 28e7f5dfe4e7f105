// Package utils provides minimal slice helpers shared across packages.
//
// Overview:
//   - Responsibility: Small string-slice utilities
//   - Key Types: None
//   - Concurrency Model: All functions are pure and safe for concurrent use
//   - Error Semantics: No errors
//   - Performance Notes: One map allocation per call
//
// Usage:
//
//	dups := utils.Duplicates([]string{"Gui", "Cli", "Gui"}) // ["Gui"]
package utils

// Duplicates returns every string that occurs more than once, in order of
// its second occurrence, each reported once.
func Duplicates(slice []string) []string {
	seen := make(map[string]int)
	var result []string

	for _, item := range slice {
		seen[item]++
		if seen[item] == 2 {
			result = append(result, item)
		}
	}

	return result
}
