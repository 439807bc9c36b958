package model

// BBox is an image's bounding box on a page, in page coordinate space
// (PDF points, origin at the lower-left corner).
type BBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewBBox creates a bounding box from coordinates.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// IsZero reports whether the box carries no placement information.
func (b BBox) IsZero() bool {
	return b == BBox{}
}
