package coordinates

import "image"

// FlipToBottomLeft converts a top-left-origin screen point to the
// bottom-left-origin system used by window-level geometry APIs.
// primaryHeight is the primary display's height; zero means
// no display is attached and the input passes through unchanged.
func FlipToBottomLeft(p image.Point, primaryHeight int) image.Point {
	if primaryHeight <= 0 {
		return p
	}

	return image.Point{X: p.X, Y: primaryHeight - p.Y}
}

// FlipToTopLeft converts a bottom-left-origin point back into the core's
// top-left-origin screen coordinates. The flip is its own inverse.
func FlipToTopLeft(p image.Point, primaryHeight int) image.Point {
	return FlipToBottomLeft(p, primaryHeight)
}

// FlipRectToBottomLeft converts a top-left-origin rectangle. With no display
// the input is returned unchanged.
func FlipRectToBottomLeft(r image.Rectangle, primaryHeight int) image.Rectangle {
	if primaryHeight <= 0 {
		return r
	}

	return image.Rect(
		r.Min.X,
		primaryHeight-r.Max.Y,
		r.Max.X,
		primaryHeight-r.Min.Y,
	)
}

// NormalizeToLocalCoordinates converts screen-absolute coordinates to
// window-local coordinates for an overlay positioned at the screen origin.
func NormalizeToLocalCoordinates(screenBounds image.Rectangle) image.Rectangle {
	return image.Rect(0, 0, screenBounds.Dx(), screenBounds.Dy())
}

// ConvertToAbsoluteCoordinates converts window-local coordinates to
// screen-absolute coordinates.
func ConvertToAbsoluteCoordinates(
	localPoint image.Point,
	screenBounds image.Rectangle,
) image.Point {
	return image.Point{
		X: localPoint.X + screenBounds.Min.X,
		Y: localPoint.Y + screenBounds.Min.Y,
	}
}

// ClampFloat clamps a float64 value between minVal and maxVal.
func ClampFloat(value, minVal, maxVal float64) float64 {
	if value < minVal {
		return minVal
	}

	if value > maxVal {
		return maxVal
	}

	return value
}

// ClampInt clamps an int value between minVal and maxVal.
func ClampInt(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}

	if value > maxVal {
		return maxVal
	}

	return value
}
