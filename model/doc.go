// Package model defines the data types produced by document analysis.
//
// Every field that crosses the API boundary is a plain Go string, bool,
// int or float64 so the JSON encoding never leaks library-specific
// wrapper types to consumers.
package model
