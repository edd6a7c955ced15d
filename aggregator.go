package streetnames

// DiscoverRoad reconstructs the road the given segment belongs to: every segment reachable through shared
// nodes while keeping the same identity seed. The segment must be valid.
//
// Only topology is filled in (segments, nodes, end nodes, self-intersection, sharpest angle and lengths);
// use NewRoad to classify it as well
func DiscoverRoad(net NetworkQuery, segmentID SegmentID) *Road {
	road := &Road{
		NameSeed:   net.NameSeed(segmentID),
		Segments:   []SegmentID{segmentID},
		Nodes:      []NodeID{},
		EndNodes:   []NodeID{},
		segmentSet: map[SegmentID]struct{}{segmentID: {}},
		nodeSet:    make(map[NodeID]struct{}),
	}

	toAnalyse := []SegmentID{segmentID}
	for len(toAnalyse) > 0 {
		currentID := toAnalyse[len(toAnalyse)-1]
		toAnalyse = toAnalyse[:len(toAnalyse)-1]

		current := net.Segment(currentID)
		for _, nodeID := range [2]NodeID{current.StartNode, current.EndNode} {
			if road.HasNode(nodeID) {
				continue
			}
			road.nodeSet[nodeID] = struct{}{}
			road.Nodes = append(road.Nodes, nodeID)

			others := sameRoadSegmentsAtNode(net, net.Node(nodeID), currentID, road.NameSeed)
			switch len(others) {
			case 0:
				road.EndNodes = append(road.EndNodes, nodeID)
			case 1:
				angle := angleDegBetweenSegmentsAtNode(nodeID, current, net.Segment(others[0]))
				if angle > road.SharpestAngleDeg {
					road.SharpestAngleDeg = angle
				}
			default:
				road.SelfIntersects = true
			}

			for _, otherID := range others {
				if road.HasSegment(otherID) {
					continue
				}
				road.segmentSet[otherID] = struct{}{}
				road.Segments = append(road.Segments, otherID)
				toAnalyse = append(toAnalyse, otherID)
			}
		}
	}
	road.calculateLengths(net)
	return road
}

// sameRoadSegmentsAtNode returns segments at node (other than current one) carrying given seed
func sameRoadSegmentsAtNode(net NetworkQuery, node Node, currentID SegmentID, seed NameSeed) []SegmentID {
	found := []SegmentID{}
	for _, segmentID := range node.Segments {
		if segmentID == currentID {
			continue
		}
		if net.NameSeed(segmentID) == seed {
			found = append(found, segmentID)
		}
	}
	return found
}
