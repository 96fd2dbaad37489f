// Package diagnostic provides structured warnings and notes collected while
// converting a JSON tree.
//
// Key capabilities:
//   - Unknown class warnings with "did you mean" suggestions
//   - Constructor failure warnings
//   - Notes for properties dropped because their expression did not compile
package diagnostic
