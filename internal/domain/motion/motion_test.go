package motion_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/saucesteals/silk/internal/domain/motion"
)

func newGenerator(seed int64) *motion.Generator {
	return motion.NewGenerator(motion.DefaultParams(), rand.New(rand.NewSource(seed)))
}

func TestPathShape(t *testing.T) {
	start := motion.PointF{X: 100, Y: 100}
	end := motion.PointF{X: 900, Y: 500}

	for seed := int64(0); seed < 20; seed++ {
		steps := newGenerator(seed).Path(start, end, 10)

		// Sample count is distance/8 clamped to [20, 80]; overshoot appends
		// one correction step.
		if len(steps) < 20 || len(steps) > 81 {
			t.Fatalf("seed %d: len(steps) = %d, expected within [20, 81]", seed, len(steps))
		}

		last := steps[len(steps)-1].Point
		if last != end {
			t.Fatalf("seed %d: last point = %+v, expected exactly %+v", seed, last, end)
		}

		first := steps[0].Point
		if math.Hypot(first.X-start.X, first.Y-start.Y) > 120 {
			t.Fatalf("seed %d: first step %+v too far from start", seed, first)
		}
	}
}

func TestPathPerpendicularBound(t *testing.T) {
	start := motion.PointF{X: 100, Y: 100}
	end := motion.PointF{X: 900, Y: 500}

	distance := math.Hypot(end.X-start.X, end.Y-start.Y)

	// Control points sit at most randomness*distance off the line; the
	// convex-hull property keeps the curve within 3/4 of that, overshoot
	// adds a few pixels along the line. Use the control-point bound.
	bound := 0.3*distance + 8

	dirX := (end.X - start.X) / distance
	dirY := (end.Y - start.Y) / distance

	for seed := int64(0); seed < 20; seed++ {
		for _, step := range newGenerator(seed).Path(start, end, 10) {
			relX := step.Point.X - start.X
			relY := step.Point.Y - start.Y

			perpendicular := math.Abs(relX*dirY - relY*dirX)
			if perpendicular > bound {
				t.Fatalf("seed %d: point %+v strays %.1fpx from the line (bound %.1f)",
					seed, step.Point, perpendicular, bound)
			}
		}
	}
}

func TestPathTimingFollowsFitts(t *testing.T) {
	start := motion.PointF{X: 100, Y: 100}
	end := motion.PointF{X: 900, Y: 500}
	targetWidth := 10.0

	params := motion.DefaultParams()
	distance := math.Hypot(end.X-start.X, end.Y-start.Y)
	expected := params.FittsA + params.FittsB*math.Log2(2*distance/targetWidth)

	for seed := int64(0); seed < 20; seed++ {
		steps := newGenerator(seed).Path(start, end, targetWidth)

		var total time.Duration
		for _, step := range steps {
			if step.Delay < 0 {
				t.Fatalf("seed %d: negative delay %v", seed, step.Delay)
			}
			total += step.Delay
		}

		seconds := total.Seconds()
		if seconds < expected*0.88 || seconds > expected*1.12 {
			t.Fatalf("seed %d: total %fs outside jittered Fitts envelope around %fs",
				seed, seconds, expected)
		}
	}
}

func TestPathTimingBell(t *testing.T) {
	steps := newGenerator(7).Path(motion.PointF{}, motion.PointF{X: 800}, 10)

	mid := steps[len(steps)/2].Delay
	edge := steps[0].Delay

	// The sine weight peaks mid-path, so a mid-trajectory step carries a
	// longer delay than the first step.
	if mid <= edge {
		t.Errorf("mid-step delay %v should exceed edge-step delay %v", mid, edge)
	}
}

func TestPathZeroDistance(t *testing.T) {
	point := motion.PointF{X: 42, Y: 42}

	steps := newGenerator(1).Path(point, point, 10)

	if len(steps) != 1 {
		t.Fatalf("len(steps) = %d, expected 1", len(steps))
	}

	if steps[0].Point != point {
		t.Errorf("step point = %+v, expected %+v", steps[0].Point, point)
	}

	if steps[0].Delay != 0 {
		t.Errorf("delay = %v, expected 0", steps[0].Delay)
	}
}

func TestPathShortDistance(t *testing.T) {
	start := motion.PointF{X: 10, Y: 10}
	end := motion.PointF{X: 12, Y: 10}

	steps := newGenerator(1).Path(start, end, 10)

	if len(steps) != 1 || steps[0].Point != end {
		t.Fatalf("short move should collapse to a single terminal step, got %+v", steps)
	}
}

func TestPathMinimumTime(t *testing.T) {
	// A tiny travel over a huge target drives the Fitts term negative; the
	// total still floors at the minimum movement time.
	steps := newGenerator(3).Path(motion.PointF{}, motion.PointF{X: 4}, 400)

	var total time.Duration
	for _, step := range steps {
		total += step.Delay
	}

	if total < 18*time.Millisecond {
		t.Errorf("total %v below the movement-time floor", total)
	}
}
