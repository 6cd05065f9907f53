package index

import (
	"infinite-experiment/routeplanner/internal/geo"

	"github.com/dhconnelly/rtreego"
)

const (
	treeMinChildren = 25
	treeMaxChildren = 50
)

// SpatialIndex is an R-tree over airport positions, bulk-loaded once.
// Queries are safe for concurrent use since the tree is never modified.
type SpatialIndex struct {
	tree *rtreego.Rtree
}

func NewSpatialIndex(airports []*CachedAirport) *SpatialIndex {
	objs := make([]rtreego.Spatial, len(airports))
	for i, a := range airports {
		objs[i] = NewSpatialEntry(a)
	}
	// NewTree bulk-loads (OMT) when given more than treeMaxChildren
	// objects; smaller sets fit in the root leaf.
	return &SpatialIndex{tree: rtreego.NewTree(2, treeMinChildren, treeMaxChildren, objs...)}
}

func (s *SpatialIndex) Len() int {
	return s.tree.Size()
}

// EntryFilter accepts or rejects entries during a search.
type EntryFilter func(*SpatialEntry) bool

// LocateWithinEnvelope returns every entry inside env that passes all
// filters.
func (s *SpatialIndex) LocateWithinEnvelope(env geo.Envelope, filters ...EntryFilter) []*SpatialEntry {
	return s.appendWithinEnvelope(nil, env, filters)
}

// LocateWithinRange returns entries inside the range envelopes around
// (lat, lon), which may be more than one box near the antimeridian.
func (s *SpatialIndex) LocateWithinRange(lat, lon float64, rangeNM int, filters ...EntryFilter) []*SpatialEntry {
	var out []*SpatialEntry
	for _, env := range geo.RangeEnvelopes(lat, lon, rangeNM) {
		out = s.appendWithinEnvelope(out, env, filters)
	}
	return out
}

func (s *SpatialIndex) appendWithinEnvelope(out []*SpatialEntry, env geo.Envelope, filters []EntryFilter) []*SpatialEntry {
	bb, err := rtreego.NewRectFromPoints(
		rtreego.Point{env.MinLat, env.MinLon},
		rtreego.Point{env.MaxLat, env.MaxLon},
	)
	if err != nil {
		return out
	}

	var treeFilters []rtreego.Filter
	if len(filters) > 0 {
		treeFilters = append(treeFilters, func(_ []rtreego.Spatial, obj rtreego.Spatial) (bool, bool) {
			e := obj.(*SpatialEntry)
			for _, f := range filters {
				if !f(e) {
					return true, false
				}
			}
			return false, false
		})
	}

	for _, obj := range s.tree.SearchIntersect(bb, treeFilters...) {
		e := obj.(*SpatialEntry)
		if env.Contains(e.Airport.Latitude, e.Airport.Longitude) {
			out = append(out, e)
		}
	}
	return out
}
