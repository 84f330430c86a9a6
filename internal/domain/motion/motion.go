// Package motion generates humanized pointer trajectories: cubic Bézier
// curves with occasional overshoot and Fitts's-law-derived step timing.
//
// The generator is a pure function from (start, end, target width) to a
// finite step sequence; it posts no events. Callers feed the steps to the
// input dispatcher one by one, sleeping each step's delay.
package motion

import (
	"math"
	"math/rand"
	"time"
)

// PointF is a sub-pixel screen coordinate.
type PointF struct {
	X float64
	Y float64
}

// Step is one pointer position and the delay to wait before moving to it.
type Step struct {
	Point PointF
	Delay time.Duration
}

// Params tunes the trajectory generator.
type Params struct {
	// Randomness scales the perpendicular control-point offset as a fraction
	// of the travel distance.
	Randomness float64

	// FittsA and FittsB are the intercept and slope of the Fitts's-law
	// movement time T = a + b*log2(2D/W), in seconds.
	FittsA float64
	FittsB float64

	// MinSteps and MaxSteps bound the sample count.
	MinSteps int
	MaxSteps int

	// OvershootProbability is the chance the trajectory overshoots the
	// target and corrects back.
	OvershootProbability float64
}

// DefaultParams returns the tuned defaults.
func DefaultParams() Params {
	return Params{
		Randomness:           0.3,
		FittsA:               0.05,
		FittsB:               0.15,
		MinSteps:             20,
		MaxSteps:             80,
		OvershootProbability: 0.2,
	}
}

const (
	// shortDistance is the travel below which the curve collapses to a
	// single terminal step.
	shortDistance = 3.0

	// stepsPerPixel divides the distance to pick the sample count.
	stepsPerPixel = 8.0

	// minMovementTime floors the total Fitts time.
	minMovementTime = 20 * time.Millisecond

	// timingJitter is the relative jitter applied to the Fitts time.
	timingJitter = 0.1

	// baseStepWeight keeps endpoint steps from degenerating to zero delay
	// under the sine-easing bell.
	baseStepWeight = 0.3

	// overshootMin and overshootMax bound the overshoot extension in pixels.
	overshootMin = 2.0
	overshootMax = 6.0
)

// Generator produces humanized trajectories. A seeded rand.Rand makes the
// output reproducible in tests.
type Generator struct {
	params Params
	rng    *rand.Rand
}

// NewGenerator creates a generator with the given parameters and random
// source. A nil rng falls back to a time-seeded source.
func NewGenerator(params Params, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Generator{params: params, rng: rng}
}

// Path traces a plausible human pointer trajectory from start to end against
// a target of the given width. The returned sequence always ends exactly at
// end; for very short distances it is a single terminal step.
func (g *Generator) Path(start, end PointF, targetWidth float64) []Step {
	distance := hypot(start, end)

	if distance < shortDistance {
		return []Step{{Point: end}}
	}

	steps := g.sampleCurve(start, end, distance)
	steps = g.maybeOvershoot(steps, start, end)
	g.distributeTime(steps, distance, targetWidth)

	return steps
}

// sampleCurve samples the cubic Bézier B(t) with interior control points
// offset perpendicular to the straight line.
func (g *Generator) sampleCurve(start, end PointF, distance float64) []Step {
	sampleCount := int(distance / stepsPerPixel)
	if sampleCount < g.params.MinSteps {
		sampleCount = g.params.MinSteps
	}
	if sampleCount > g.params.MaxSteps {
		sampleCount = g.params.MaxSteps
	}

	control1 := g.controlPoint(start, end, distance, 0.2, 0.4)
	control2 := g.controlPoint(start, end, distance, 0.6, 0.8)

	steps := make([]Step, 0, sampleCount+1)
	for i := 1; i <= sampleCount; i++ {
		t := float64(i) / float64(sampleCount)
		steps = append(steps, Step{Point: bezier(start, control1, control2, end, t)})
	}

	// Close any floating point gap so the final step lands exactly on end.
	steps[len(steps)-1].Point = end

	return steps
}

// controlPoint places an interior control point at a random along-line
// fraction in [tMin, tMax], offset perpendicular by up to
// distance * randomness.
func (g *Generator) controlPoint(start, end PointF, distance, tMin, tMax float64) PointF {
	t := tMin + g.rng.Float64()*(tMax-tMin)
	base := PointF{
		X: start.X + (end.X-start.X)*t,
		Y: start.Y + (end.Y-start.Y)*t,
	}

	// Unit perpendicular to the straight line.
	perpX := -(end.Y - start.Y) / distance
	perpY := (end.X - start.X) / distance

	offset := (g.rng.Float64()*2 - 1) * distance * g.params.Randomness

	return PointF{X: base.X + perpX*offset, Y: base.Y + perpY*offset}
}

// maybeOvershoot occasionally replaces the last sampled point with an
// extrapolation past the endpoint, then corrects back to the exact end.
func (g *Generator) maybeOvershoot(steps []Step, start, end PointF) []Step {
	if g.rng.Float64() >= g.params.OvershootProbability {
		return steps
	}

	distance := hypot(start, end)
	if distance == 0 {
		return steps
	}

	extension := overshootMin + g.rng.Float64()*(overshootMax-overshootMin)
	dirX := (end.X - start.X) / distance
	dirY := (end.Y - start.Y) / distance

	steps[len(steps)-1].Point = PointF{
		X: end.X + dirX*extension,
		Y: end.Y + dirY*extension,
	}

	return append(steps, Step{Point: end})
}

// distributeTime spreads the Fitts's-law movement time across the steps with
// a sine-easing bell: each step's share is baseStepWeight plus a sine that
// peaks mid-path, so mid-trajectory steps get the longest delays and the
// endpoint steps the shortest.
func (g *Generator) distributeTime(steps []Step, distance, targetWidth float64) {
	total := g.movementTime(distance, targetWidth)

	n := len(steps)
	if n == 1 {
		steps[0].Delay = total

		return
	}

	weights := make([]float64, n)
	var weightSum float64

	for i := range weights {
		weights[i] = baseStepWeight + math.Sin(math.Pi*float64(i)/float64(n-1))
		weightSum += weights[i]
	}

	for i := range steps {
		steps[i].Delay = time.Duration(float64(total) * weights[i] / weightSum)
	}
}

// movementTime computes the jittered Fitts's-law time for the travel.
// The overshoot extension is deliberately not included in the distance.
func (g *Generator) movementTime(distance, targetWidth float64) time.Duration {
	if targetWidth <= 0 {
		targetWidth = 1
	}

	seconds := g.params.FittsA + g.params.FittsB*math.Log2(2*distance/targetWidth)
	seconds *= 1 + (g.rng.Float64()*2-1)*timingJitter

	total := time.Duration(seconds * float64(time.Second))
	if total < minMovementTime {
		total = minMovementTime
	}

	return total
}

// bezier evaluates the cubic Bézier curve at t.
func bezier(p0, p1, p2, p3 PointF, t float64) PointF {
	u := 1 - t

	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t

	return PointF{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func hypot(a, b PointF) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
