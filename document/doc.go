// Package document opens PDF bytes and extracts per-page plain text and
// image placement information.
//
// Text is recovered from the page content streams in the order the PDF
// encodes it (no visual reflow). The extraction understands the common
// text-showing and text-positioning operators; exotic encodings degrade to
// whatever the string literals contain.
package document
