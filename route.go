package streetnames

import (
	"github.com/LdDl/ch"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

type vertexPair struct {
	from NodeID
	to   NodeID
}

// Router finds shortest paths over the network with contraction hierarchies
type Router struct {
	net   *OSMNetwork
	namer *Namer
	graph ch.Graph
	// edges keeps the cheapest segment for every pair of adjacent nodes
	edges map[vertexPair]SegmentID
}

// Route is a shortest path between two nodes
type Route struct {
	Cost     float64
	Nodes    []osm.NodeID
	Segments []SegmentID
	// Names lists road names along the path. Consecutive repeats and unnamed roads are skipped
	Names []string
}

// BuildRouter prepares contraction hierarchies over network. Each segment becomes one edge per
// allowed direction, weighted according to configured cost type
func BuildRouter(net *OSMNetwork, namer *Namer) (*Router, error) {
	router := &Router{
		net:   net,
		namer: namer,
		graph: ch.Graph{},
		edges: make(map[vertexPair]SegmentID),
	}
	for i := 0; i < net.NodesNum(); i++ {
		err := router.graph.CreateVertex(int64(i))
		if err != nil {
			return nil, errors.Wrapf(err, "Can't add vertex %d to graph", i)
		}
	}

	order := []vertexPair{}
	costs := make(map[vertexPair]float64)
	addEdge := func(pair vertexPair, segmentID SegmentID, cost float64) {
		if current, ok := costs[pair]; ok && current <= cost {
			return
		}
		if _, ok := costs[pair]; !ok {
			order = append(order, pair)
		}
		costs[pair] = cost
		router.edges[pair] = segmentID
	}
	for i := 0; i < net.SegmentsNum(); i++ {
		segmentID := SegmentID(i)
		segment := net.Segment(segmentID)
		if segment.StartNode == segment.EndNode {
			continue
		}
		cost := net.cfg.cost(segment.Length, segment.Lanes)
		addEdge(vertexPair{segment.StartNode, segment.EndNode}, segmentID, cost)
		if !net.IsOneWay(segmentID) {
			addEdge(vertexPair{segment.EndNode, segment.StartNode}, segmentID, cost)
		}
	}
	for _, pair := range order {
		err := router.graph.AddEdge(int64(pair.from), int64(pair.to), costs[pair])
		if err != nil {
			return nil, errors.Wrapf(err, "Can't add edge %d->%d to graph", pair.from, pair.to)
		}
	}
	router.graph.PrepareContractionHierarchies()
	return router, nil
}

// Route returns shortest path between two OSM nodes. Both must be network nodes (junctions or way ends)
func (router *Router) Route(from, to osm.NodeID) (Route, error) {
	source, ok := router.net.NodeByOSMID(from)
	if !ok {
		return Route{}, errors.Wrapf(ErrUnknownNode, "source %d", from)
	}
	target, ok := router.net.NodeByOSMID(to)
	if !ok {
		return Route{}, errors.Wrapf(ErrUnknownNode, "target %d", to)
	}
	if source == target {
		return Route{Nodes: []osm.NodeID{from}, Segments: []SegmentID{}, Names: []string{}}, nil
	}

	cost, path := router.graph.ShortestPath(int64(source), int64(target))
	if cost < 0 || len(path) == 0 {
		return Route{}, errors.Wrapf(ErrNoRoute, "%d -> %d", from, to)
	}

	route := Route{
		Cost:     cost,
		Nodes:    make([]osm.NodeID, 0, len(path)),
		Segments: make([]SegmentID, 0, len(path)-1),
		Names:    []string{},
	}
	for i, vertex := range path {
		route.Nodes = append(route.Nodes, router.net.OSMNodeID(NodeID(vertex)))
		if i == 0 {
			continue
		}
		segmentID := router.edges[vertexPair{NodeID(path[i-1]), NodeID(vertex)}]
		route.Segments = append(route.Segments, segmentID)
		if router.namer == nil {
			continue
		}
		name := router.namer.GenerateName(segmentID, ElevationContextOf(router.net.Segment(segmentID)))
		if name == "" || (len(route.Names) > 0 && route.Names[len(route.Names)-1] == name) {
			continue
		}
		route.Names = append(route.Names, name)
	}
	return route, nil
}
