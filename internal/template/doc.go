// Package template implements the resolution core of veneer: recursive
// fragment inclusion, variable-usage scanning, and per-file rendering.
//
// Rendering a file is a linear pipeline:
//
//	Read -> ResolveFragments -> ScanVariables -> diagnose -> Substitute
//
// Fragment expansion completes fully before usage scanning, so variables
// introduced by included fragments are diagnosed like any other. The final
// substitution is delegated to pongo2; this package never evaluates
// template control flow itself.
package template
