package streetnames

import "github.com/paulmach/orb"

// SegmentID identifies a segment of the road network
type SegmentID uint32

// NodeID identifies a node of the road network
type NodeID uint32

// NameSeed is shared by every segment of one named road. It doubles as the random seed for naming
type NameSeed uint16

// LaneProfile describes the static lane configuration of a segment
type LaneProfile struct {
	// Road is false for non-road assets (rail, power lines, ...). Such segments are never named
	Road bool
	// Speed is the average vehicle lane speed. 1.0 corresponds to 50 km/h
	Speed                float64
	ForwardVehicleLanes  int
	BackwardVehicleLanes int
	PedestrianLanes      bool
	// HalfWidth is half of the carriageway width including pavements (metres)
	HalfWidth    float64
	Pavement     bool
	HighwayRules bool
}

// VehicleLanes returns number of vehicle-capable lanes in both directions
func (lanes LaneProfile) VehicleLanes() int {
	return lanes.ForwardVehicleLanes + lanes.BackwardVehicleLanes
}

// HasForwardLanes reports whether there is at least one vehicle lane in forward direction
func (lanes LaneProfile) HasForwardLanes() bool {
	return lanes.ForwardVehicleLanes > 0
}

// HasBackwardLanes reports whether there is at least one vehicle lane in backward direction
func (lanes LaneProfile) HasBackwardLanes() bool {
	return lanes.BackwardVehicleLanes > 0
}

// Segment is a read-only snapshot of segment attributes
type Segment struct {
	ID        SegmentID
	StartNode NodeID
	EndNode   NodeID
	Length    float64
	// StartDirection is the unit direction leaving the start node into the segment.
	// EndDirection is the unit direction leaving the end node into the segment
	StartDirection orb.Point
	EndDirection   orb.Point
	Middle         orb.Point
	Bounds         orb.Bound
	Straight       bool
	Elevated       bool
	Underground    bool
	Lanes          LaneProfile
}

// Node is a read-only snapshot of node attributes
type Node struct {
	ID        NodeID
	Position  orb.Point
	Elevation float64
	Segments  []SegmentID
}

// Degree returns number of segments connected to the node
func (node Node) Degree() int {
	return len(node.Segments)
}

// IsDeadEnd reports whether the node terminates the network
func (node Node) IsDeadEnd() bool {
	return len(node.Segments) == 1
}

// IsCrossroad reports whether more than two segments meet at the node
func (node Node) IsCrossroad() bool {
	return len(node.Segments) > 2
}

// Terrain samples the ground around the network
type Terrain interface {
	// HeightAt returns terrain height at given planar position
	HeightAt(p orb.Point) float64
	// HasWater reports whether given planar position is covered by water
	HasWater(p orb.Point) bool
}

// NetworkQuery is the capability set the naming pipeline needs from a road network.
// Identity seeds may only be changed through SetNameSeed
type NetworkQuery interface {
	Terrain
	IsValidSegment(id SegmentID) bool
	Segment(id SegmentID) Segment
	Node(id NodeID) Node
	NameSeed(id SegmentID) NameSeed
	SetNameSeed(id SegmentID, seed NameSeed)
	// ClosestSegments returns up to max segments nearest to p, nearest first
	ClosestSegments(p orb.Point, max int) []SegmentID
}

// segmentTurningAngleDeg returns how much a segment turns between its two ends
func segmentTurningAngleDeg(segment Segment) float64 {
	return angleDeg(segment.StartDirection, negate(segment.EndDirection))
}

// angleDegBetweenSegmentsAtNode returns the turn made when passing from one segment to another through a shared node
func angleDegBetweenSegmentsAtNode(nodeID NodeID, first, second Segment) float64 {
	return angleDeg(directionAtNode(nodeID, first), negate(directionAtNode(nodeID, second)))
}

func directionAtNode(nodeID NodeID, segment Segment) orb.Point {
	if segment.StartNode == nodeID {
		return segment.StartDirection
	}
	return segment.EndDirection
}

// segmentTotalLaneLength returns segment length multiplied by the number of vehicle lanes
func segmentTotalLaneLength(segment Segment) float64 {
	return segment.Length * float64(segment.Lanes.VehicleLanes())
}

// segmentSlope returns absolute elevation change per length unit
func segmentSlope(net NetworkQuery, segment Segment) float64 {
	if segment.Length <= 0 {
		return 0
	}
	start := net.Node(segment.StartNode)
	end := net.Node(segment.EndNode)
	return abs(start.Elevation-end.Elevation) / segment.Length
}

// segmentOrientation returns unit vector from end node to start node
func segmentOrientation(net NetworkQuery, segment Segment) orb.Point {
	start := net.Node(segment.StartNode).Position
	end := net.Node(segment.EndNode).Position
	return normalize(sub(start, end))
}

// isSegmentOneWay reports whether vehicle lanes run in exactly one direction
func isSegmentOneWay(segment Segment) bool {
	return segment.Lanes.HasForwardLanes() != segment.Lanes.HasBackwardLanes()
}
