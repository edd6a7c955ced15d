package streetnames

import (
	"math"

	"github.com/paulmach/orb"
)

// Road is the set of connected segments sharing one identity seed, together with its classification.
// It is rebuilt from the network each time it is needed and never persisted
type Road struct {
	NameSeed NameSeed
	// Segments and Nodes hold unique ids in discovery order
	Segments []SegmentID
	Nodes    []NodeID
	// EndNodes is empty for closed loops, has one element for P-shaped roads and two for linear ones
	EndNodes []NodeID
	// SelfIntersects is true if the road crosses itself or forms a P-shape
	SelfIntersects bool
	// SharpestAngleDeg is the sharpest turn the road makes at any interior node
	SharpestAngleDeg float64
	Length           float64
	// LaneLength is the sum over segments of length multiplied by vehicle lanes
	LaneLength float64
	Category   RoadCategory
	Features   RoadFeature

	segmentSet map[SegmentID]struct{}
	nodeSet    map[NodeID]struct{}
}

// HasSegment reports whether segment belongs to the road
func (road *Road) HasSegment(id SegmentID) bool {
	_, ok := road.segmentSet[id]
	return ok
}

// HasNode reports whether node belongs to the road
func (road *Road) HasNode(id NodeID) bool {
	_, ok := road.nodeSet[id]
	return ok
}

// IsEndNode reports whether node terminates the road
func (road *Road) IsEndNode(id NodeID) bool {
	for _, endNodeID := range road.EndNodes {
		if endNodeID == id {
			return true
		}
	}
	return false
}

// MeanOrientationAngle returns lane-length weighted orientation of the road: 0 is horizontal, 90 is vertical
func (road *Road) MeanOrientationAngle(net NetworkQuery) float64 {
	horizontal := orb.Point{1, 0}
	orientation := 0.0
	laneLength := 0.0
	for _, segmentID := range road.Segments {
		segment := net.Segment(segmentID)
		angle := angleDeg(segmentOrientation(net, segment), horizontal)
		if angle > 90.0 {
			angle = 180.0 - angle
		}
		segmentLaneLength := segmentTotalLaneLength(segment)
		orientation += angle * segmentLaneLength
		laneLength += segmentLaneLength
	}
	if laneLength == 0 {
		return 0
	}
	return orientation / laneLength
}

// SetNameSeed overwrites identity seed of the road and of every member segment in the network
func (road *Road) SetNameSeed(net NetworkQuery, seed NameSeed) {
	road.NameSeed = seed
	for _, segmentID := range road.Segments {
		net.SetNameSeed(segmentID, seed)
	}
}

func (road *Road) calculateLengths(net NetworkQuery) {
	road.Length = 0
	road.LaneLength = 0
	for _, segmentID := range road.Segments {
		segment := net.Segment(segmentID)
		road.Length += segment.Length
		road.LaneLength += segmentTotalLaneLength(segment)
	}
}

// straightLineDistance returns planar distance between two nodes
func straightLineDistance(net NetworkQuery, first, second NodeID) float64 {
	return math.Sqrt(distanceSquared(net.Node(first).Position, net.Node(second).Position))
}
