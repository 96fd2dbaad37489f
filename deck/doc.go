// Package deck adapts hydrated JSON to the prop conventions of a deck-style
// visualization component.
//
// It is a client of package hydrate: it supplies a default configuration
// (view classes, coordinate-system and GL enumerations) and normalizes a few
// top-level props of the hydrated result:
//
//   - initialViewState seeds viewState
//   - map and mapStyle collapse into a single map object with a default style
//
// Converter additionally remembers the last initialViewState it saw, so that
// re-sending an unchanged document does not reset a view the user has moved.
package deck
