// Package images enumerates the raster images embedded in a PDF, decodes
// them and re-encodes each bitmap as PNG for transport.
//
// A corrupt or unsupported image never aborts extraction of the remaining
// images: each image yields an explicit per-item Outcome, either a decoded
// Extracted or a Skipped diagnostic.
package images
