package game

import (
	"math"
	"testing"
)

func allEnabled() Config {
	return Config{
		TeamCount:        2,
		QuestionCount:    10,
		OptionCount:      4,
		TimeMode:         TimeUnlimited,
		SurprisesEnabled: true,
	}
}

func TestSegmentsPartitionCircle(t *testing.T) {
	// Sum of arcs must cover the full circle exactly.
	total := 0.0
	for _, seg := range segments {
		arc := seg.End - seg.Start
		if seg.Start > seg.End {
			arc += 360
		}
		total += arc
	}
	if math.Abs(total-360) > 1e-9 {
		t.Fatalf("segment arcs sum to %v, want 360", total)
	}

	// Away from the eps-tolerant edges, exactly one segment claims each
	// angle.
	for deg := 0.0; deg < 360; deg += 0.5 {
		onEdge := false
		for _, seg := range segments {
			if math.Abs(normDeg(deg-seg.Start)) <= boundaryEps || math.Abs(normDeg(deg-seg.End)) <= boundaryEps {
				onEdge = true
			}
		}
		if onEdge {
			continue
		}

		claims := 0
		for _, seg := range segments {
			if seg.Start > seg.End {
				if deg >= seg.Start || deg < seg.End {
					claims++
				}
			} else if deg >= seg.Start && deg < seg.End {
				claims++
			}
		}
		if claims != 1 {
			t.Fatalf("angle %v claimed by %d segments", deg, claims)
		}
	}
}

func TestResolveEveryAngle(t *testing.T) {
	w := NewWheel(allEnabled(), &scriptRand{floats: []float64{0}})
	for deg := 0.0; deg < 360; deg += 0.05 {
		out := w.ResolveAngle(deg)
		switch out.Kind {
		case OutcomePoints:
			if out.Points <= 0 {
				t.Fatalf("angle %v: non-positive points %d", deg, out.Points)
			}
		case OutcomeSurprise:
			if !out.Surprise.Known() {
				t.Fatalf("angle %v: unknown surprise %q", deg, out.Surprise)
			}
		default:
			t.Fatalf("angle %v: unknown outcome kind %q", deg, out.Kind)
		}
	}
}

func TestResolveKnownSegments(t *testing.T) {
	w := NewWheel(allEnabled(), &scriptRand{floats: []float64{0}})
	cases := []struct {
		angle  float64
		points int
	}{
		{280, 10},
		{310, 20},
		{30, 30},
		{60, 50},
		{100, 70},
		{140, 100},
		{170, 20},
		{210, 10},
	}
	for _, tc := range cases {
		out := w.ResolveAngle(tc.angle)
		if out.Kind != OutcomePoints || out.Points != tc.points {
			t.Errorf("angle %v: got %+v, want %d points", tc.angle, out, tc.points)
		}
	}

	// Both surprise arcs, including the one wrapping through 0.
	for _, angle := range []float64{350, 5, 250} {
		out := w.ResolveAngle(angle)
		if out.Kind != OutcomeSurprise {
			t.Errorf("angle %v: got %+v, want a surprise", angle, out)
		}
	}
}

func TestSurprisesDisabledNeverSurprise(t *testing.T) {
	cfg := allEnabled()
	cfg.SurprisesEnabled = false
	w := NewWheel(cfg, &scriptRand{floats: []float64{0}})

	for deg := 0.0; deg < 360; deg += 0.25 {
		out := w.ResolveAngle(deg)
		if out.Kind == OutcomeSurprise {
			t.Fatalf("angle %v resolved to a surprise with surprises disabled", deg)
		}
	}

	// A surprise arc substitutes the lowest tier.
	if out := w.ResolveAngle(0); out.Points != fallbackPoints {
		t.Errorf("disabled surprise arc: got %d points, want %d", out.Points, fallbackPoints)
	}
}

func TestSurpriseDrawWeights(t *testing.T) {
	// Total weight is 21; the draw walks AllSurprises in order.
	cases := []struct {
		f    float64
		want SurpriseKey
	}{
		{0.0 / 21, SurpriseDoublePoints},
		{4.5 / 21, SurpriseGift},
		{6.5 / 21, SurpriseGold},
		{18.5 / 21, SurpriseBomb},
		{19.5 / 21, SurpriseEraser},
		{20.5 / 21, SurpriseVirus},
	}
	for _, tc := range cases {
		w := NewWheel(allEnabled(), &scriptRand{floats: []float64{angleFloat(350), tc.f}})
		out := w.Spin()
		if out.Kind != OutcomeSurprise || out.Surprise != tc.want {
			t.Errorf("draw %v: got %+v, want %s", tc.f, out, tc.want)
		}
	}
}

func TestSurpriseDrawRespectsSettings(t *testing.T) {
	cfg := allEnabled()
	cfg.Surprises = map[SurpriseKey]bool{SurpriseGold: true}

	w := NewWheel(cfg, &scriptRand{floats: []float64{angleFloat(350), 0.9}})
	out := w.Spin()
	if out.Kind != OutcomeSurprise || out.Surprise != SurpriseGold {
		t.Fatalf("got %+v, want gold (only enabled key)", out)
	}
}

func TestEmptyEnabledSetFallsBack(t *testing.T) {
	cfg := allEnabled()
	cfg.Surprises = map[SurpriseKey]bool{}

	w := NewWheel(cfg, &scriptRand{floats: []float64{angleFloat(350), 0.5}})
	out := w.Spin()
	if out.Kind != OutcomePoints || out.Points != fallbackPoints {
		t.Fatalf("got %+v, want %d-point fallback", out, fallbackPoints)
	}
}
