package element_test

import (
	"image"
	"testing"

	"github.com/saucesteals/silk/internal/domain/element"
)

func TestComputeVisibilityFullyVisible(t *testing.T) {
	viewport := image.Rect(0, 0, 1200, 800)

	vis := element.ComputeVisibility(image.Rect(100, 100, 200, 150), viewport)

	if !vis.InViewport {
		t.Error("element inside the viewport should be in viewport")
	}

	if vis.Reason != element.ReasonFullyVisible {
		t.Errorf("Reason = %q, expected fully_visible", vis.Reason)
	}

	if vis.PercentVisible < 0.99 || vis.PercentVisible > 1 {
		t.Errorf("PercentVisible = %f, expected within [0.99, 1]", vis.PercentVisible)
	}

	if vis.RequiresScroll != nil {
		t.Error("fully visible elements need no scroll")
	}
}

func TestComputeVisibilityPartiallyVisible(t *testing.T) {
	viewport := image.Rect(0, 0, 1200, 800)

	// Half the element hangs below the viewport edge.
	vis := element.ComputeVisibility(image.Rect(550, 750, 650, 850), viewport)

	if vis.InViewport {
		t.Error("partially visible element should not count as in viewport")
	}

	if vis.Reason != element.ReasonPartiallyVisible {
		t.Errorf("Reason = %q, expected partially_visible", vis.Reason)
	}

	if vis.PercentVisible <= 0 || vis.PercentVisible >= 0.99 {
		t.Errorf("PercentVisible = %f, expected within (0, 0.99)", vis.PercentVisible)
	}

	if vis.RequiresScroll == nil || vis.RequiresScroll.Direction != element.ScrollDown {
		t.Errorf("RequiresScroll = %+v, expected a downward estimate", vis.RequiresScroll)
	}
}

func TestComputeVisibilityOffscreenSides(t *testing.T) {
	viewport := image.Rect(0, 100, 1200, 900)

	tests := []struct {
		name      string
		elem      image.Rectangle
		reason    element.VisibilityReason
		direction element.ScrollDirection
	}{
		{
			name:      "below",
			elem:      image.Rect(800, 2400, 840, 2420),
			reason:    element.ReasonBelowViewport,
			direction: element.ScrollDown,
		},
		{
			name:      "above",
			elem:      image.Rect(100, -500, 140, -480),
			reason:    element.ReasonAboveViewport,
			direction: element.ScrollUp,
		},
		{
			name:      "right",
			elem:      image.Rect(3000, 480, 3040, 520),
			reason:    element.ReasonRightOfViewport,
			direction: element.ScrollRight,
		},
		{
			name:      "left",
			elem:      image.Rect(-400, 480, -360, 520),
			reason:    element.ReasonLeftOfViewport,
			direction: element.ScrollLeft,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			vis := element.ComputeVisibility(testCase.elem, viewport)

			if vis.InViewport {
				t.Error("offscreen element reported in viewport")
			}

			if vis.PercentVisible != 0 {
				t.Errorf("PercentVisible = %f, expected 0", vis.PercentVisible)
			}

			if vis.Reason != testCase.reason {
				t.Errorf("Reason = %q, expected %q", vis.Reason, testCase.reason)
			}

			if vis.RequiresScroll == nil {
				t.Fatal("offscreen element should carry a scroll estimate")
			}

			if vis.RequiresScroll.Direction != testCase.direction {
				t.Errorf("Direction = %q, expected %q",
					vis.RequiresScroll.Direction, testCase.direction)
			}

			if vis.RequiresScroll.EstimatedPixels <= 0 {
				t.Errorf("EstimatedPixels = %d, expected positive",
					vis.RequiresScroll.EstimatedPixels)
			}
		})
	}
}

func TestComputeVisibilityScrollEstimateMagnitude(t *testing.T) {
	// Element center 2410, viewport center 500: the estimate is the center
	// distance on the primary axis.
	viewport := image.Rect(0, 100, 1200, 900)
	vis := element.ComputeVisibility(image.Rect(800, 2400, 840, 2420), viewport)

	if vis.RequiresScroll.EstimatedPixels != 1910 {
		t.Errorf("EstimatedPixels = %d, expected 1910", vis.RequiresScroll.EstimatedPixels)
	}
}

func TestComputeVisibilityZeroSize(t *testing.T) {
	vis := element.ComputeVisibility(image.Rect(10, 10, 10, 30), image.Rect(0, 0, 100, 100))

	if vis.Reason != element.ReasonZeroSize {
		t.Errorf("Reason = %q, expected zero_size", vis.Reason)
	}

	if vis.InViewport || vis.PercentVisible != 0 {
		t.Error("zero-size element should be invisible")
	}
}

func TestScrollDeltaToCenter(t *testing.T) {
	viewport := image.Rect(0, 100, 1200, 900)

	deltaX, deltaY := element.ScrollDeltaToCenter(image.Rect(800, 2400, 840, 2420), viewport)

	if deltaY != 1910 {
		t.Errorf("deltaY = %d, expected 1910", deltaY)
	}

	if deltaX != 220 {
		t.Errorf("deltaX = %d, expected 220", deltaX)
	}
}
