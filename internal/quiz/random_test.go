package quiz

// scriptedRandom returns the scripted ints in order, then n-1 once they run out.
// It never shuffles, so answers keep the order they were built in.
type scriptedRandom struct {
	ints  []int
	float float64
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return n - 1
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		return n - 1
	}
	return v
}

func (r *scriptedRandom) Float64() float64 {
	return r.float
}

func (r *scriptedRandom) Shuffle(n int, swap func(i, j int)) {}
