package main

import (
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/pboyd/cacheflush"
)

// sizes returns up to steps array sizes in bytes, spaced geometrically from lo
// to hi. Sizes are multiples of 4 and don't repeat.
func sizes(lo, hi, steps int) []int {
	lo = roundSize(lo)
	hi = roundSize(hi)
	if steps < 2 || hi <= lo {
		return []int{lo}
	}

	ratio := math.Pow(float64(hi)/float64(lo), 1/float64(steps-1))

	out := make([]int, 0, steps)
	for i := 0; i < steps; i++ {
		size := int(math.Round(float64(lo)*math.Pow(ratio, float64(i)))) &^ 3
		if i == steps-1 {
			size = hi
		}
		if len(out) > 0 && size <= out[len(out)-1] {
			continue
		}
		out = append(out, size)
	}
	return out
}

// roundSize rounds size down to a whole number of int32s, at least one.
func roundSize(size int) int {
	if size < 4 {
		return 4
	}
	return size &^ 3
}

func median(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	s := slices.Clone(samples)
	slices.Sort(s)

	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}

// sink keeps the compiler from dropping the searches.
var sink int

// measure returns the median time in nanoseconds of one lookup for each
// searcher in an array of size bytes.
func measure(size, trials int, warm bool, rng *rand.Rand) []float64 {
	a := make([]int32, size/4)
	for i := range a {
		a[i] = int32(i * 2)
	}

	samples := make([][]float64, len(searchers))
	for i := range samples {
		samples[i] = make([]float64, trials)
	}

	for trial := 0; trial < trials; trial++ {
		key := int32(rng.Intn(len(a)*2 + 1))

		for i, s := range searchers {
			if !warm {
				cacheflush.FlushSlice(a)
			}

			start := time.Now()
			sink += s.search(a, key)
			samples[i][trial] = float64(time.Since(start).Nanoseconds())
		}
	}

	medians := make([]float64, len(searchers))
	for i := range samples {
		medians[i] = median(samples[i])
	}
	return medians
}
