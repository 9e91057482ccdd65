// Package sanitizer provides small string transforms and the helpers to chain
// them into pipelines.
//
// Transforms are plain func(T) T values. Apply runs a list of them once,
// Compose stores the list as a reusable pipeline:
//
//	normalizeName := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.CapitalizeWordsIn(language.BrazilianPortuguese),
//	)
//
//	normalizeName("  joão silva ") // "João Silva"
//
// None of the helpers returns an error and none of them panics on empty or
// irregular input. The package holds no global state.
package sanitizer
