package game

// scriptRand replays fixed sequences so tests can steer every draw. Each
// exhausted sequence repeats its last value, which keeps scenario setup
// short.
type scriptRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi]
	if r.fi < len(r.floats)-1 {
		r.fi++
	}
	return v
}

func (r *scriptRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii]
	if r.ii < len(r.ints)-1 {
		r.ii++
	}
	return v % n
}

// angleFloat converts a target resting angle into the Float64 value that
// makes Wheel.Spin land there.
func angleFloat(deg float64) float64 { return deg / 360 }
