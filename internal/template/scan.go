package template

import (
	"regexp"
	"sort"
)

// variablePattern matches the simple substitution form {{ name }}.
// Identifiers are word characters only; filters, attribute access, and
// control-flow tags are the engine's business and are not scanned.
var variablePattern = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// ScanVariables returns the distinct variable names referenced via the
// simple substitution syntax in text. Order and duplicate counts are not
// preserved.
func ScanVariables(text string) map[string]struct{} {
	names := make(map[string]struct{})
	for _, m := range variablePattern.FindAllStringSubmatch(text, -1) {
		names[m[1]] = struct{}{}
	}
	return names
}

// SortedVariables is ScanVariables flattened to a sorted slice, for callers
// that present the result to a user.
func SortedVariables(text string) []string {
	return sortedNames(ScanVariables(text))
}

// sortedNames flattens a name set into a sorted slice for stable output.
func sortedNames(names map[string]struct{}) []string {
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
