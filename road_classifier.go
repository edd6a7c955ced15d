package streetnames

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	shortRoadLength = 50.0
	longRoadLength  = 1600.0

	// roads above these sizes skip the more expensive analysis
	maxSegmentsForShapes     = 16
	maxSegmentsForTopography = 32

	loopMinTurnDeg       = 315.0
	multiLoopMinTurnDeg  = 405.0
	circleMinAspectRatio = 0.9

	crescentMaxAngleDeg      = 10.0
	crescentMinCurvedShare   = 0.5
	crescentMinTortuosity    = 1.05
	steepMinSlope            = 0.1
	steepMinHillyLengthShare = 0.5
)

// NewRoad discovers the road the segment belongs to and classifies it
func NewRoad(net NetworkQuery, segmentID SegmentID) *Road {
	road := DiscoverRoad(net, segmentID)
	ClassifyRoad(net, road)
	return road
}

// ClassifyRoad sets predominant category and features of a discovered road
func ClassifyRoad(net NetworkQuery, road *Road) {
	road.Features = FEATURE_NONE
	road.Category = determineCategory(net, road.Segments)

	if isRoadOneWay(net, road.Segments) {
		road.Features |= FEATURE_ONE_WAY
	}

	if road.Length < shortRoadLength {
		road.Features |= FEATURE_SHORT
	} else if road.Length > longRoadLength {
		road.Features |= FEATURE_LONG
	}

	segmentsNum := len(road.Segments)
	if segmentsNum <= maxSegmentsForShapes && road.Length <= longRoadLength {
		if shape := checkForLoops(net, road); shape.IsLoopShape() {
			road.Category = shape
			return
		}
	}

	if road.Category == CATEGORY_MOTORWAY {
		return
	}

	if segmentsNum <= maxSegmentsForTopography {
		road.Features |= analyseTopography(net, road)
		if !road.Features.Has(FEATURE_HILL) && isSteep(net, road) {
			road.Features |= FEATURE_HILL
		}
	}

	if segmentsNum <= maxSegmentsForShapes {
		if road.Category != CATEGORY_MAJOR_URBAN && road.Category != CATEGORY_MAJOR_RURAL && isDeadEnd(net, road) {
			road.Features |= FEATURE_DEADEND
		}
		if road.Category == CATEGORY_MINOR_URBAN && isCrescent(net, road) {
			road.Features |= FEATURE_CRESCENT
		}
	}

	hasBridge, hasTunnel, crossesWater := checkForBridgesAndTunnels(net, road)
	if hasBridge {
		road.Features |= FEATURE_INCLUDES_BRIDGE
	}
	if hasTunnel {
		road.Features |= FEATURE_INCLUDES_TUNNEL
	}
	if crossesWater {
		road.Features |= FEATURE_CROSSES_WATER
	}
}

// determineCategory returns category with the greatest accumulated length. Ties go to the category seen first
func determineCategory(net NetworkQuery, segmentIDs []SegmentID) RoadCategory {
	order := []RoadCategory{}
	lengths := make(map[RoadCategory]float64)
	for _, segmentID := range segmentIDs {
		segment := net.Segment(segmentID)
		category := ClassifySegment(segment.Lanes)
		if _, ok := lengths[category]; !ok {
			order = append(order, category)
		}
		lengths[category] += segment.Length
	}

	bestCategory := CATEGORY_NONE
	bestLength := 0.0
	for _, category := range order {
		if lengths[category] > bestLength {
			bestLength = lengths[category]
			bestCategory = category
		}
	}
	return bestCategory
}

func isRoadOneWay(net NetworkQuery, segmentIDs []SegmentID) bool {
	for _, segmentID := range segmentIDs {
		if !isSegmentOneWay(net.Segment(segmentID)) {
			return false
		}
	}
	return true
}

// checkForLoops returns loop shape category of a closed road or CATEGORY_NONE if the road is not closed
func checkForLoops(net NetworkQuery, road *Road) RoadCategory {
	if len(road.EndNodes) != 0 {
		return CATEGORY_NONE
	}

	combinedAngleDeg := 0.0
	for _, segmentID := range road.Segments {
		combinedAngleDeg += segmentTurningAngleDeg(net.Segment(segmentID))
	}

	if combinedAngleDeg < loopMinTurnDeg {
		return CATEGORY_SQUARE
	}
	if combinedAngleDeg > multiLoopMinTurnDeg {
		return CATEGORY_LOOP
	}
	if isCloseToCircle(net, road.Nodes) {
		return CATEGORY_CIRCLE
	}
	return CATEGORY_OVAL
}

// isCloseToCircle checks that bounding boxes of the nodes are close to a square both axis-aligned and
// rotated by 45 degrees
func isCloseToCircle(net NetworkQuery, nodeIDs []NodeID) bool {
	points := make([]orb.Point, 0, len(nodeIDs))
	for _, nodeID := range nodeIDs {
		points = append(points, net.Node(nodeID).Position)
	}
	if len(points) == 0 {
		return false
	}
	if boundAspectRatio(rotatedBound(points, 0)) < circleMinAspectRatio {
		return false
	}
	return boundAspectRatio(rotatedBound(points, math.Pi/4)) >= circleMinAspectRatio
}

// isDeadEnd reports whether exactly one node of the road terminates the network and the road does not
// pass through more than one crossroad
func isDeadEnd(net NetworkQuery, road *Road) bool {
	if road.SelfIntersects {
		return false
	}
	deadEnds := 0
	crossroads := 0
	for _, nodeID := range road.Nodes {
		node := net.Node(nodeID)
		if node.IsDeadEnd() {
			deadEnds++
		}
		if node.IsCrossroad() {
			crossroads++
		}
	}
	return deadEnds == 1 && crossroads < 2
}

func isCrescent(net NetworkQuery, road *Road) bool {
	if len(road.EndNodes) != 2 || road.SharpestAngleDeg > crescentMaxAngleDeg {
		return false
	}

	curvedLength := 0.0
	combinedLength := 0.0
	for _, segmentID := range road.Segments {
		segment := net.Segment(segmentID)
		combinedLength += segment.Length
		if !segment.Straight {
			curvedLength += segment.Length
		}
	}
	if combinedLength <= 0 || curvedLength/combinedLength < crescentMinCurvedShare {
		return false
	}

	distance := straightLineDistance(net, road.EndNodes[0], road.EndNodes[1])
	if distance <= 0 {
		return false
	}
	return combinedLength/distance > crescentMinTortuosity
}

// isSteep compares elevation range with road length and checks that most of the road is sloped
func isSteep(net NetworkQuery, road *Road) bool {
	minElevation, maxElevation := math.MaxFloat64, -math.MaxFloat64
	for _, nodeID := range road.Nodes {
		elevation := net.Node(nodeID).Elevation
		minElevation = math.Min(minElevation, elevation)
		maxElevation = math.Max(maxElevation, elevation)
	}

	hillyLength := 0.0
	totalLength := 0.0
	for _, segmentID := range road.Segments {
		segment := net.Segment(segmentID)
		totalLength += segment.Length
		if segmentSlope(net, segment) >= steepMinSlope {
			hillyLength += segment.Length
		}
	}
	if totalLength <= 0 {
		return false
	}
	slope := (maxElevation - minElevation) / totalLength
	return slope >= steepMinSlope && hillyLength/totalLength > steepMinHillyLengthShare
}

// checkForBridgesAndTunnels returns whether any segment is elevated or underground and whether
// such road sits over water at any of its nodes
func checkForBridgesAndTunnels(net NetworkQuery, road *Road) (hasBridge, hasTunnel, crossesWater bool) {
	for _, segmentID := range road.Segments {
		segment := net.Segment(segmentID)
		hasBridge = hasBridge || segment.Elevated
		hasTunnel = hasTunnel || segment.Underground
	}
	if !hasBridge && !hasTunnel {
		return
	}
	for _, nodeID := range road.Nodes {
		if net.HasWater(net.Node(nodeID).Position) {
			crossesWater = true
			break
		}
	}
	return
}
