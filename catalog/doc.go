// Package catalog declares classes in data rather than Go code.
//
// A configuration document names the classes a JSON tree may instantiate and
// the kind of each of their properties. Every declared class is built as an
// Instance, which records the class name and its resolved props.
//
// # Document Overview
//
//	typeKey: "@type"            # optional, must be a string
//	classes:                    # required mapping
//	  ScatterplotLayer:
//	    props:
//	      getPosition: accessor
//	      radiusScale: value
//	      onHover: function
//	  MapView: {}
//	enumerations:
//	  COORDINATE_SYSTEM:
//	    LNGLAT: 1
//	constants:                  # usable by name from expressions
//	  a: 2
//
// Go callers can register real constructors on top of a document with
// Document.Configuration.
package catalog
