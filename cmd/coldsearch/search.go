package main

import "slices"

// searcher finds the index of the first element >= key in a sorted slice.
type searcher struct {
	name   string
	search func(a []int32, key int32) int
}

var searchers = []searcher{
	{name: "std", search: stdSearch},
	{name: "branchless", search: branchlessSearch},
}

func stdSearch(a []int32, key int32) int {
	i, _ := slices.BinarySearch(a, key)
	return i
}

// branchlessSearch halves the range without an unpredictable branch: the
// comparison only decides how far base moves.
func branchlessSearch(a []int32, key int32) int {
	n := len(a)
	if n == 0 {
		return 0
	}

	base := 0
	for n > 1 {
		half := n / 2
		if a[base+half] < key {
			base += half
		}
		n -= half
	}
	if a[base] < key {
		base++
	}
	return base
}
