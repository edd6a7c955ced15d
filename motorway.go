package streetnames

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

const (
	motorwayCandidatesNum      = 16
	motorwayMergeMinScore      = 0.75
	motorwayMinNodeThresholdSq = 64000.0
	motorwayNodeThresholdShare = 0.3125
)

// motorwayInfo is a summary of a motorway road used for similarity scoring
type motorwayInfo struct {
	seed     NameSeed
	endNodes []orb.Point
	// orientationAngle is in range [0; 90]: 0 is horizontal, 90 is vertical
	orientationAngle float64
	laneLength       float64
	length           float64
}

func newMotorwayInfo(net NetworkQuery, road *Road) motorwayInfo {
	info := motorwayInfo{
		seed:     road.NameSeed,
		endNodes: make([]orb.Point, 0, len(road.EndNodes)),
	}
	for _, nodeID := range road.EndNodes {
		info.endNodes = append(info.endNodes, net.Node(nodeID).Position)
	}
	if len(info.endNodes) > 1 {
		info.orientationAngle = road.MeanOrientationAngle(net)
		info.laneLength = road.LaneLength
		info.length = road.Length
	}
	return info
}

// similarity scores in range [0; 1] how likely two motorway stretches are parts of one motorway
func (info motorwayInfo) similarity(other motorwayInfo) float64 {
	if len(info.endNodes) < 2 || len(other.endNodes) < 2 {
		return 0
	}
	longest := math.Max(info.laneLength, other.laneLength)
	if longest <= 0 {
		return 0
	}
	score := math.Min(info.laneLength, other.laneLength) / longest

	orientationScore := 1.0 - abs(info.orientationAngle-other.orientationAngle)/90.0
	score *= orientationScore * orientationScore

	// Only two closest pairs of end nodes are compared
	distances := make([]float64, 0, len(info.endNodes))
	for _, node := range info.endNodes {
		best := math.MaxFloat64
		for _, otherNode := range other.endNodes {
			best = math.Min(best, distanceSquared(node, otherNode))
		}
		distances = append(distances, best)
	}
	sort.Float64s(distances)

	length := math.Min(info.length, other.length)
	threshold := math.Max(motorwayMinNodeThresholdSq, math.Pow(length*motorwayNodeThresholdShare, 2))
	for _, distance := range distances[:2] {
		score *= math.Max(0, 1.0-distance/threshold)
	}
	return score
}

// MotorwaySimilarity scores in range [0; 1] how likely two motorway roads are parts of one motorway.
// Roads with less than two end nodes always score 0
func MotorwaySimilarity(net NetworkQuery, road, other *Road) float64 {
	return newMotorwayInfo(net, road).similarity(newMotorwayInfo(net, other))
}

// matchMotorway looks for the most similar motorway stretch near the road and, if similar enough, moves
// the road (and its segments in the network) onto the identity seed of that stretch.
// Returns true when the seed has been merged
func matchMotorway(net NetworkQuery, road *Road, logger *zap.Logger) bool {
	origin := net.Segment(road.Segments[0])
	candidates := net.ClosestSegments(origin.Middle, motorwayCandidatesNum)

	info := newMotorwayInfo(net, road)
	bestScore := 0.0
	bestSeed := road.NameSeed
	for len(candidates) > 0 {
		candidateID := candidates[0]
		candidates = candidates[1:]
		if net.NameSeed(candidateID) == road.NameSeed {
			continue
		}

		other := NewRoad(net, candidateID)
		candidates = withoutRoadSegments(candidates, other)
		if other.Category != CATEGORY_MOTORWAY {
			continue
		}

		score := info.similarity(newMotorwayInfo(net, other))
		if score > bestScore {
			bestScore = score
			bestSeed = other.NameSeed
		}
	}

	if bestScore <= motorwayMergeMinScore {
		return false
	}
	logger.Debug("Merge motorway identity", zap.Uint16("old_seed", uint16(road.NameSeed)), zap.Uint16("new_seed", uint16(bestSeed)), zap.Float64("score", bestScore))
	road.SetNameSeed(net, bestSeed)
	return true
}

func withoutRoadSegments(candidates []SegmentID, road *Road) []SegmentID {
	kept := candidates[:0]
	for _, candidateID := range candidates {
		if !road.HasSegment(candidateID) {
			kept = append(kept, candidateID)
		}
	}
	return kept
}
