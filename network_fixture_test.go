package streetnames

import (
	"sort"

	"github.com/paulmach/orb"
)

// testNetwork is an in-memory NetworkQuery. Terrain height comes from ground function, water from boxes
type testNetwork struct {
	segments []Segment
	nodes    []Node
	seeds    []NameSeed
	ground   func(p orb.Point) float64
	water    []orb.Bound
}

func newTestNetwork() *testNetwork {
	return &testNetwork{}
}

func (net *testNetwork) HeightAt(p orb.Point) float64 {
	if net.ground == nil {
		return 0
	}
	return net.ground(p)
}

func (net *testNetwork) HasWater(p orb.Point) bool {
	for _, bound := range net.water {
		if bound.Contains(p) {
			return true
		}
	}
	return false
}

func (net *testNetwork) IsValidSegment(id SegmentID) bool {
	return int(id) < len(net.segments)
}

func (net *testNetwork) Segment(id SegmentID) Segment {
	return net.segments[id]
}

func (net *testNetwork) Node(id NodeID) Node {
	return net.nodes[id]
}

func (net *testNetwork) NameSeed(id SegmentID) NameSeed {
	return net.seeds[id]
}

func (net *testNetwork) SetNameSeed(id SegmentID, seed NameSeed) {
	net.seeds[id] = seed
}

func (net *testNetwork) ClosestSegments(p orb.Point, max int) []SegmentID {
	ids := make([]SegmentID, len(net.segments))
	for i := range net.segments {
		ids[i] = SegmentID(i)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return distanceSquared(p, net.segments[ids[i]].Middle) < distanceSquared(p, net.segments[ids[j]].Middle)
	})
	if len(ids) > max {
		ids = ids[:max]
	}
	return ids
}

// addNode adds node standing on the ground
func (net *testNetwork) addNode(x, y float64) NodeID {
	p := orb.Point{x, y}
	return net.addNodeWithElevation(p, net.HeightAt(p))
}

func (net *testNetwork) addNodeWithElevation(p orb.Point, elevation float64) NodeID {
	id := NodeID(len(net.nodes))
	net.nodes = append(net.nodes, Node{
		ID:        id,
		Position:  p,
		Elevation: elevation,
		Segments:  []SegmentID{},
	})
	return id
}

// addSegment adds straight segment between two nodes
func (net *testNetwork) addSegment(start, end NodeID, seed NameSeed, lanes LaneProfile) SegmentID {
	from := net.nodes[start].Position
	to := net.nodes[end].Position
	direction := normalize(sub(to, from))
	id := net.addCurvedSegment(start, end, seed, lanes, direction, negate(direction), magnitude(sub(to, from)))
	net.segments[id].Straight = true
	return id
}

// addCurvedSegment adds non-straight segment with explicit end directions and length
func (net *testNetwork) addCurvedSegment(start, end NodeID, seed NameSeed, lanes LaneProfile, startDirection, endDirection orb.Point, length float64) SegmentID {
	from := net.nodes[start].Position
	to := net.nodes[end].Position
	id := SegmentID(len(net.segments))
	net.segments = append(net.segments, Segment{
		ID:             id,
		StartNode:      start,
		EndNode:        end,
		Length:         length,
		StartDirection: startDirection,
		EndDirection:   endDirection,
		Middle:         pointOnSegmentByFraction(from, to, 0.5),
		Bounds:         orb.Bound{Min: from, Max: from}.Extend(to),
		Straight:       false,
		Lanes:          lanes,
	})
	net.seeds = append(net.seeds, seed)
	net.nodes[start].Segments = append(net.nodes[start].Segments, id)
	net.nodes[end].Segments = append(net.nodes[end].Segments, id)
	return id
}

// addPolyline adds chain of straight segments through given points and returns them in order
func (net *testNetwork) addPolyline(seed NameSeed, lanes LaneProfile, points ...orb.Point) []SegmentID {
	ids := []SegmentID{}
	previous := net.addNode(points[0][0], points[0][1])
	for _, p := range points[1:] {
		current := net.addNode(p[0], p[1])
		ids = append(ids, net.addSegment(previous, current, seed, lanes))
		previous = current
	}
	return ids
}

// addRing adds closed ring through given points. Every segment turns by turnDeg between its ends
func (net *testNetwork) addRing(seed NameSeed, lanes LaneProfile, turnDeg float64, points ...orb.Point) []SegmentID {
	nodes := make([]NodeID, len(points))
	for i, p := range points {
		nodes[i] = net.addNode(p[0], p[1])
	}
	ids := []SegmentID{}
	for i := range nodes {
		start, end := nodes[i], nodes[(i+1)%len(nodes)]
		chord := sub(net.nodes[end].Position, net.nodes[start].Position)
		startDirection, endDirection := arcDirections(normalize(chord), turnDeg)
		length := magnitude(chord)
		if turnDeg > 0 {
			length *= 1.1
		}
		ids = append(ids, net.addCurvedSegment(start, end, seed, lanes, startDirection, endDirection, length))
	}
	return ids
}

// arcDirections returns end directions of an arc along chord turning by turnDeg
func arcDirections(chord orb.Point, turnDeg float64) (orb.Point, orb.Point) {
	half := degreesToRadians(turnDeg / 2)
	startDirection := rotate(chord, -half)
	arrival := rotate(chord, half)
	return startDirection, negate(arrival)
}

func rotate(v orb.Point, angle float64) orb.Point {
	return rotatedBound([]orb.Point{v}, angle).Min
}

var (
	minorUrbanLanes = LaneProfile{
		Road:                 true,
		Speed:                1.0,
		ForwardVehicleLanes:  1,
		BackwardVehicleLanes: 1,
		PedestrianLanes:      true,
		HalfWidth:            7.5,
		Pavement:             true,
	}
	oneWayUrbanLanes = LaneProfile{
		Road:                true,
		Speed:               1.0,
		ForwardVehicleLanes: 1,
		PedestrianLanes:     true,
		HalfWidth:           5.75,
		Pavement:            true,
	}
	majorUrbanLanes = LaneProfile{
		Road:                 true,
		Speed:                1.0,
		ForwardVehicleLanes:  2,
		BackwardVehicleLanes: 2,
		PedestrianLanes:      true,
		HalfWidth:            14,
		Pavement:             true,
	}
	minorRuralLanes = LaneProfile{
		Road:                 true,
		Speed:                1.0,
		ForwardVehicleLanes:  1,
		BackwardVehicleLanes: 1,
		HalfWidth:            3.5,
	}
	motorwayLanes = LaneProfile{
		Road:                true,
		Speed:               2.2,
		ForwardVehicleLanes: 2,
		HalfWidth:           7,
		HighwayRules:        true,
	}
)
