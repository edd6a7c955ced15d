package streetnames

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// ImportFromOSMFile imports road network from file. Both XML (.osm, .xml) and PBF (.pbf) formats are supported
func ImportFromOSMFile(fileName string, cfg *OsmConfiguration, options ...func(*Parser)) (*OSMNetwork, error) {
	return NewParser(fileName, cfg, options...).ReadOSM()
}

// osmPiece is a part of a way between two network nodes
type osmPiece struct {
	way   *wayData
	nodes []osm.NodeID
}

// buildNetwork splits ways at junctions, projects geometry and indexes segments and nodes
func (data *OSMDataRaw) buildNetwork(parser *Parser) (*OSMNetwork, error) {
	st := time.Now()
	logger := parser.logger

	net := &OSMNetwork{
		cfg:       parser.cfg,
		nodeIndex: make(map[osm.NodeID]NodeID),
	}
	net.origin = data.centroid()

	pieces := data.splitWays()

	// Dense node identifiers in order of first appearance
	for _, piece := range pieces {
		for _, osmID := range [2]osm.NodeID{piece.nodes[0], piece.nodes[len(piece.nodes)-1]} {
			if _, ok := net.nodeIndex[osmID]; ok {
				continue
			}
			raw := data.nodes[osmID]
			point := orb.Point{raw.Lon, raw.Lat}
			id := NodeID(len(net.nodes))
			net.nodeIndex[osmID] = id
			net.nodes = append(net.nodes, osmNode{
				Node: Node{
					ID:        id,
					Position:  projectEquirectangular(net.origin, point),
					Elevation: raw.elevation,
					Segments:  []SegmentID{},
				},
				osmID:  osmID,
				point:  point,
				ground: raw.elevation,
			})
		}
	}

	for _, piece := range pieces {
		net.addSegment(data, piece, parser.straightTolerance)
	}
	net.elevateBridgeNodes(data, parser.layerHeight)

	for _, ring := range data.waterWays {
		if polygon, ok := data.projectRing(net.origin, ring); ok {
			net.water = append(net.water, polygon)
		}
	}

	net.buildIndices()
	logger.Info("Network built", zap.Int("segments", len(net.segments)), zap.Int("nodes", len(net.nodes)), zap.Int("water_areas", len(net.water)), zap.Duration("elapsed", time.Since(st)))
	return net, nil
}

// centroid returns mean WGS84 position of all known nodes
func (data *OSMDataRaw) centroid() orb.Point {
	if len(data.nodes) == 0 {
		return orb.Point{}
	}
	lon, lat := 0.0, 0.0
	for _, node := range data.nodes {
		lon += node.Lon
		lat += node.Lat
	}
	n := float64(len(data.nodes))
	return orb.Point{lon / n, lat / n}
}

// splitWays cuts ways at nodes used more than once (junctions and way ends). Closed pieces are cut in two
// so that every segment connects two different nodes
func (data *OSMDataRaw) splitWays() []osmPiece {
	useCount := make(map[osm.NodeID]int)
	for _, way := range data.ways {
		way.Nodes = data.knownNodes(way.Nodes)
		for i, nodeID := range way.Nodes {
			if i == 0 || i == len(way.Nodes)-1 {
				useCount[nodeID] += 2
			} else {
				useCount[nodeID]++
			}
		}
	}

	pieces := []osmPiece{}
	for _, way := range data.ways {
		if len(way.Nodes) < 2 {
			continue
		}
		current := []osm.NodeID{way.Nodes[0]}
		for _, nodeID := range way.Nodes[1:] {
			current = append(current, nodeID)
			if useCount[nodeID] > 1 {
				pieces = appendPiece(pieces, way, current)
				current = []osm.NodeID{nodeID}
			}
		}
	}
	return pieces
}

func appendPiece(pieces []osmPiece, way *wayData, nodes []osm.NodeID) []osmPiece {
	first, last := nodes[0], nodes[len(nodes)-1]
	if first != last {
		return append(pieces, osmPiece{way: way, nodes: nodes})
	}
	if len(nodes) < 3 {
		return pieces
	}
	middle := len(nodes) / 2
	return append(pieces,
		osmPiece{way: way, nodes: nodes[:middle+1]},
		osmPiece{way: way, nodes: nodes[middle:]},
	)
}

// knownNodes drops references to nodes missing in file
func (data *OSMDataRaw) knownNodes(nodeIDs []osm.NodeID) []osm.NodeID {
	known := make([]osm.NodeID, 0, len(nodeIDs))
	for _, nodeID := range nodeIDs {
		if _, ok := data.nodes[nodeID]; ok {
			known = append(known, nodeID)
		}
	}
	return known
}

func (net *OSMNetwork) addSegment(data *OSMDataRaw, piece osmPiece, straightTolerance float64) {
	geom := make(orb.LineString, 0, len(piece.nodes))
	projected := make(orb.LineString, 0, len(piece.nodes))
	for _, osmID := range piece.nodes {
		raw := data.nodes[osmID]
		point := orb.Point{raw.Lon, raw.Lat}
		geom = append(geom, point)
		projected = append(projected, projectEquirectangular(net.origin, point))
	}

	id := SegmentID(len(net.segments))
	startNode := net.nodeIndex[piece.nodes[0]]
	endNode := net.nodeIndex[piece.nodes[len(piece.nodes)-1]]
	lanes := piece.way.laneProfile()
	net.segments = append(net.segments, osmSegment{
		Segment: Segment{
			ID:             id,
			StartNode:      startNode,
			EndNode:        endNode,
			Length:         getLength(projected),
			StartDirection: leavingDirection(projected),
			EndDirection:   leavingDirection(reversed(projected)),
			Middle:         findMiddlePoint(projected),
			Bounds:         projected.Bound(),
			Straight:       isLineStraight(projected, straightTolerance),
			Elevated:       piece.way.isElevated(),
			Underground:    piece.way.isUnderground(),
			Lanes:          lanes,
		},
		wayID:  piece.way.ID,
		name:   piece.way.name,
		geom:   geom,
		oneway: lanes.HasForwardLanes() && !lanes.HasBackwardLanes(),
	})
	net.seeds = append(net.seeds, piece.way.nameSeed())
	net.nodes[startNode].Segments = append(net.nodes[startNode].Segments, id)
	net.nodes[endNode].Segments = append(net.nodes[endNode].Segments, id)
}

// elevateBridgeNodes lifts nodes which only touch bridge segments by `layer` steps
func (net *OSMNetwork) elevateBridgeNodes(data *OSMDataRaw, layerHeight float64) {
	layers := make(map[NodeID]int)
	for _, piece := range data.splitWaysLayers(net) {
		if current, ok := layers[piece.node]; !ok || piece.layer < current {
			layers[piece.node] = piece.layer
		}
	}
	for id := range net.nodes {
		node := &net.nodes[id]
		allElevated := len(node.Segments) > 0
		for _, segmentID := range node.Segments {
			allElevated = allElevated && net.segments[segmentID].Elevated
		}
		if !allElevated {
			continue
		}
		node.Elevation = node.ground + float64(max(layers[NodeID(id)], 1))*layerHeight
	}
}

type nodeLayer struct {
	node  NodeID
	layer int
}

// splitWaysLayers returns `layer` of the way for every network node of elevated ways
func (data *OSMDataRaw) splitWaysLayers(net *OSMNetwork) []nodeLayer {
	out := []nodeLayer{}
	for _, way := range data.ways {
		if !way.isElevated() {
			continue
		}
		for _, osmID := range way.Nodes {
			if id, ok := net.nodeIndex[osmID]; ok {
				out = append(out, nodeLayer{node: id, layer: way.layer})
			}
		}
	}
	return out
}

// projectRing returns water polygon for a closed ring of nodes. Rings with missing nodes are skipped
func (data *OSMDataRaw) projectRing(origin orb.Point, ring []osm.NodeID) (orb.Polygon, bool) {
	projected := make(orb.Ring, 0, len(ring))
	for _, osmID := range ring {
		raw, ok := data.nodes[osmID]
		if !ok {
			return nil, false
		}
		projected = append(projected, projectEquirectangular(origin, orb.Point{raw.Lon, raw.Lat}))
	}
	return orb.Polygon{projected}, true
}

func (net *OSMNetwork) buildIndices() {
	bound := orb.Bound{Min: orb.Point{-1, -1}, Max: orb.Point{1, 1}}
	for _, segment := range net.segments {
		bound = bound.Union(segment.Bounds)
	}
	for _, node := range net.nodes {
		bound = bound.Extend(node.Position)
	}
	bound = bound.Pad(1.0)

	net.segmentsTree = quadtree.New(bound)
	for _, segment := range net.segments {
		net.segmentsTree.Add(segmentPointer{id: segment.ID, point: segment.Middle})
	}
	net.nodesTree = quadtree.New(bound)
	for _, node := range net.nodes {
		net.nodesTree.Add(nodePointer{id: node.ID, point: node.Position})
	}
}

// leavingDirection returns unit direction from the first point of line towards the first distinct point
func leavingDirection(line orb.LineString) orb.Point {
	for i := 1; i < len(line); i++ {
		if direction := sub(line[i], line[0]); magnitude(direction) > 0 {
			return normalize(direction)
		}
	}
	return orb.Point{}
}

func reversed(line orb.LineString) orb.LineString {
	out := make(orb.LineString, len(line))
	for i := range line {
		out[len(line)-1-i] = line[i]
	}
	return out
}
