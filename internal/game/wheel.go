package game

// OutcomeKind distinguishes the two segment flavors.
type OutcomeKind string

const (
	OutcomePoints   OutcomeKind = "points"
	OutcomeSurprise OutcomeKind = "surprise"
)

// Outcome is the single result of one spin: either a point value for a
// question, or a concrete surprise key.
type Outcome struct {
	Kind     OutcomeKind
	Points   int
	Surprise SurpriseKey
}

// Segment is one angular slice of the wheel. Start/End are degrees in
// [0, 360); a segment with Start > End wraps through the 360/0 boundary.
type Segment struct {
	Start, End float64
	Kind       OutcomeKind
	Points     int
}

// segments partition the full circle into ten 36-degree slices, two of
// them surprises. Angles are in the pointer's frame of reference.
var segments = []Segment{
	{Start: 270, End: 306, Kind: OutcomePoints, Points: 10},
	{Start: 306, End: 342, Kind: OutcomePoints, Points: 20},
	{Start: 342, End: 18, Kind: OutcomeSurprise},
	{Start: 18, End: 54, Kind: OutcomePoints, Points: 30},
	{Start: 54, End: 90, Kind: OutcomePoints, Points: 50},
	{Start: 90, End: 126, Kind: OutcomePoints, Points: 70},
	{Start: 126, End: 162, Kind: OutcomePoints, Points: 100},
	{Start: 162, End: 198, Kind: OutcomePoints, Points: 20},
	{Start: 198, End: 234, Kind: OutcomePoints, Points: 10},
	{Start: 234, End: 270, Kind: OutcomeSurprise},
}

// boundaryEps absorbs floating-point wobble at segment edges. The scan
// checks segments in order, so an angle within eps of a shared edge still
// resolves to exactly one segment.
const boundaryEps = 0.1

// fallbackPoints is the lowest-tier outcome used whenever resolution
// cannot produce anything better: surprises disabled, no surprise key
// enabled, or an angle no segment claims. The turn always resolves.
const fallbackPoints = 10

// Wheel resolves spins into outcomes under one game's configuration.
type Wheel struct {
	cfg Config
	rng Rand
}

// NewWheel returns a wheel bound to the given config and random source.
func NewWheel(cfg Config, rng Rand) *Wheel {
	return &Wheel{cfg: cfg, rng: rng}
}

// Spin draws a uniformly random resting angle and resolves it. With
// surprises disabled, or with every surprise key switched off, a surprise
// segment yields the lowest-tier point outcome instead.
func (w *Wheel) Spin() Outcome {
	return w.ResolveAngle(w.rng.Float64() * 360)
}

// ResolveAngle maps a resting angle to its outcome.
func (w *Wheel) ResolveAngle(angle float64) Outcome {
	seg := segmentAt(angle)
	if seg.Kind == OutcomePoints {
		return Outcome{Kind: OutcomePoints, Points: seg.Points}
	}
	if !w.cfg.SurprisesEnabled {
		return Outcome{Kind: OutcomePoints, Points: fallbackPoints}
	}
	key, ok := w.drawSurprise()
	if !ok {
		return Outcome{Kind: OutcomePoints, Points: fallbackPoints}
	}
	return Outcome{Kind: OutcomeSurprise, Surprise: key}
}

// segmentAt finds the segment containing the normalized angle. The scan
// order and eps tolerance guarantee a single winner; the first segment is
// the defensive fallback for an angle nothing claims.
func segmentAt(angle float64) Segment {
	a := normDeg(angle)
	for _, seg := range segments {
		if seg.Start > seg.End {
			// Wraps through the 360/0 boundary.
			if a >= seg.Start-boundaryEps || a <= seg.End+boundaryEps {
				return seg
			}
		} else if a >= seg.Start-boundaryEps && a <= seg.End+boundaryEps {
			return seg
		}
	}
	return segments[0]
}

// drawSurprise performs the second, independent weighted draw over the
// enabled surprise keys. Returns false when no key is enabled.
func (w *Wheel) drawSurprise() (SurpriseKey, bool) {
	total := 0
	for _, key := range AllSurprises {
		if w.cfg.surpriseEnabled(key) {
			total += surpriseWeights[key]
		}
	}
	if total == 0 {
		return "", false
	}

	r := w.rng.Float64() * float64(total)
	for _, key := range AllSurprises {
		if !w.cfg.surpriseEnabled(key) {
			continue
		}
		r -= float64(surpriseWeights[key])
		if r <= 0 {
			return key, true
		}
	}
	// Float underflow at the top of the range; the draw still resolves.
	for i := len(AllSurprises) - 1; i >= 0; i-- {
		if w.cfg.surpriseEnabled(AllSurprises[i]) {
			return AllSurprises[i], true
		}
	}
	return "", false
}

func normDeg(deg float64) float64 {
	d := deg
	for d < 0 {
		d += 360
	}
	for d >= 360 {
		d -= 360
	}
	return d
}
