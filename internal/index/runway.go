package index

import (
	"cmp"
	"slices"
	"sort"
)

// RunwayIndex orders airports by longest runway so that every airport
// meeting a length requirement forms a contiguous suffix.
type RunwayIndex struct {
	sorted  []*CachedAirport
	lengths []int
	longest map[int32]int
}

func NewRunwayIndex(airports []*CachedAirport) *RunwayIndex {
	sorted := slices.Clone(airports)
	slices.SortStableFunc(sorted, func(a, b *CachedAirport) int {
		if c := cmp.Compare(a.LongestRunway, b.LongestRunway); c != 0 {
			return c
		}
		return cmp.Compare(a.Airport.ID, b.Airport.ID)
	})

	lengths := make([]int, len(sorted))
	longest := make(map[int32]int, len(sorted))
	for i, a := range sorted {
		lengths[i] = a.LongestRunway
		longest[a.Airport.ID] = a.LongestRunway
	}
	return &RunwayIndex{sorted: sorted, lengths: lengths, longest: longest}
}

func (r *RunwayIndex) Len() int {
	return len(r.sorted)
}

// FirstIndexWithRunwayAtLeast returns the smallest i with a longest runway
// of at least feet, or Len() when no airport qualifies.
func (r *RunwayIndex) FirstIndexWithRunwayAtLeast(feet int) int {
	return sort.SearchInts(r.lengths, feet)
}

// Qualifying returns the airports with a runway of at least feet. The slice
// aliases the index and must not be modified.
func (r *RunwayIndex) Qualifying(feet int) []*CachedAirport {
	return r.sorted[r.FirstIndexWithRunwayAtLeast(feet):]
}

// LongestRunway returns an airport's longest runway in feet.
func (r *RunwayIndex) LongestRunway(airportID int32) (int, bool) {
	l, ok := r.longest[airportID]
	return l, ok
}
