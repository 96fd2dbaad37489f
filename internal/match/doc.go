// Package match ranks registered type names against an unknown one so that
// warnings can suggest what the document author probably meant.
//
// Key functions:
//   - Fold: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: returns the closest candidates above a similarity threshold
package match
