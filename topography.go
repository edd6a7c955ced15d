package streetnames

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

const (
	topographyTestDistance = 80.0
	waterfrontMinShare     = 0.8
	hillMinLowestSample    = -8.0
	hillMaxMeanElevation   = -6.0
)

// topographySamples accumulates terrain samples taken around the nodes of a road
type topographySamples struct {
	waterFound bool
	// sideWaterNodes counts nodes having water on both sides
	sideWaterNodes int
	// relativeElevations holds sample heights relative to the ground height under the node
	relativeElevations []float64
}

// analyseTopography samples terrain around every node of the road and derives water and hill features
func analyseTopography(net NetworkQuery, road *Road) RoadFeature {
	samples := &topographySamples{}
	processed := make(map[NodeID]struct{}, len(road.Nodes))
	for _, segmentID := range road.Segments {
		segment := net.Segment(segmentID)
		ends := [2]struct {
			nodeID    NodeID
			direction orb.Point
		}{
			{segment.StartNode, segment.StartDirection},
			{segment.EndNode, segment.EndDirection},
		}
		for _, end := range ends {
			if _, ok := processed[end.nodeID]; ok {
				continue
			}
			processed[end.nodeID] = struct{}{}
			position := net.Node(end.nodeID).Position
			if samples.sampleNode(net, position, negate(end.direction), road.IsEndNode(end.nodeID)) {
				samples.sideWaterNodes++
			}
		}
	}

	features := FEATURE_NONE
	if samples.waterFound {
		features |= FEATURE_NEAR_WATER
	}
	if len(processed) > 0 && float64(samples.sideWaterNodes) >= waterfrontMinShare*float64(len(processed)) {
		features |= FEATURE_WATERFRONT
	}
	if samples.isHill() {
		features |= FEATURE_HILL
	}
	return features
}

// sampleNode samples both sides of the node perpendicular to outward direction. End nodes are also sampled
// ahead of the road, and the point ahead is sampled again as if it was an ordinary node.
// Returns true when water was found on both sides of the node
func (samples *topographySamples) sampleNode(terrain Terrain, position, outward orb.Point, isEndNode bool) bool {
	baseHeight := terrain.HeightAt(position)
	offset := scale(normalize(outward), topographyTestDistance)

	left := add(position, rotate90Clockwise(offset))
	right := add(position, rotate90CounterClockwise(offset))
	waterLeft := samples.sample(terrain, left, baseHeight)
	waterRight := samples.sample(terrain, right, baseHeight)

	if isEndNode {
		ahead := add(position, offset)
		samples.sample(terrain, ahead, baseHeight)
		samples.sampleNode(terrain, ahead, outward, false)
	}
	return waterLeft && waterRight
}

// sample records a single terrain sample. Water counts as level ground
func (samples *topographySamples) sample(terrain Terrain, p orb.Point, baseHeight float64) bool {
	if terrain.HasWater(p) {
		samples.waterFound = true
		samples.relativeElevations = append(samples.relativeElevations, 0)
		return true
	}
	samples.relativeElevations = append(samples.relativeElevations, terrain.HeightAt(p)-baseHeight)
	return false
}

// isHill checks that at least one sample lies 8 units below the road and the lowest half of samples
// is on average 6 units below it
func (samples *topographySamples) isHill() bool {
	if len(samples.relativeElevations) == 0 {
		return false
	}
	sort.Float64s(samples.relativeElevations)
	if samples.relativeElevations[0] > hillMinLowestSample {
		return false
	}
	lowestNum := int(math.Ceil(float64(len(samples.relativeElevations)) / 2.0))
	mean := 0.0
	for _, elevation := range samples.relativeElevations[:lowestNum] {
		mean += elevation
	}
	mean /= float64(lowestNum)
	return mean <= hillMaxMeanElevation
}
