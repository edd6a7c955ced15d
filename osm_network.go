package streetnames

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/quadtree"
	"github.com/paulmach/osm"
)

// osmSegment is a piece of an OSM way between two junctions
type osmSegment struct {
	Segment
	wayID osm.WayID
	name  string
	// geom is in WGS84
	geom   orb.LineString
	oneway bool
}

type osmNode struct {
	Node
	osmID osm.NodeID
	// point is in WGS84
	point orb.Point
	// ground is the terrain height under the node. Bridge nodes are elevated above it
	ground float64
}

type segmentPointer struct {
	id    SegmentID
	point orb.Point
}

func (pointer segmentPointer) Point() orb.Point {
	return pointer.point
}

type nodePointer struct {
	id    NodeID
	point orb.Point
}

func (pointer nodePointer) Point() orb.Point {
	return pointer.point
}

// OSMNetwork is a road network imported from OpenStreetMap data. Geometry is projected onto a local
// plane in meters around the data centroid.
//
// Terrain is flat between nodes: height of a point is the ground elevation of the nearest node
type OSMNetwork struct {
	cfg       *OsmConfiguration
	origin    orb.Point
	segments  []osmSegment
	nodes     []osmNode
	seeds     []NameSeed
	nodeIndex map[osm.NodeID]NodeID
	water     []orb.Polygon

	segmentsTree *quadtree.Quadtree
	nodesTree    *quadtree.Quadtree
}

// HeightAt returns ground elevation of the node nearest to p
func (net *OSMNetwork) HeightAt(p orb.Point) float64 {
	if len(net.nodes) == 0 {
		return 0
	}
	found := net.nodesTree.Find(p)
	if found == nil {
		return 0
	}
	return net.nodes[found.(nodePointer).id].ground
}

// HasWater reports whether p lies inside any water area
func (net *OSMNetwork) HasWater(p orb.Point) bool {
	for _, polygon := range net.water {
		if !polygon.Bound().Contains(p) {
			continue
		}
		if planar.PolygonContains(polygon, p) {
			return true
		}
	}
	return false
}

func (net *OSMNetwork) IsValidSegment(id SegmentID) bool {
	return int(id) < len(net.segments)
}

func (net *OSMNetwork) Segment(id SegmentID) Segment {
	return net.segments[id].Segment
}

func (net *OSMNetwork) Node(id NodeID) Node {
	return net.nodes[id].Node
}

func (net *OSMNetwork) NameSeed(id SegmentID) NameSeed {
	return net.seeds[id]
}

func (net *OSMNetwork) SetNameSeed(id SegmentID, seed NameSeed) {
	net.seeds[id] = seed
}

// ClosestSegments returns up to max segments whose middle points are nearest to p, nearest first
func (net *OSMNetwork) ClosestSegments(p orb.Point, max int) []SegmentID {
	if len(net.segments) == 0 || max <= 0 {
		return nil
	}
	found := net.segmentsTree.KNearest(nil, p, max)
	pointers := make([]segmentPointer, 0, len(found))
	for _, pointer := range found {
		pointers = append(pointers, pointer.(segmentPointer))
	}
	sort.Slice(pointers, func(i, j int) bool {
		di := distanceSquared(p, pointers[i].point)
		dj := distanceSquared(p, pointers[j].point)
		if di != dj {
			return di < dj
		}
		return pointers[i].id < pointers[j].id
	})
	ids := make([]SegmentID, len(pointers))
	for i, pointer := range pointers {
		ids[i] = pointer.id
	}
	return ids
}

// SegmentsNum returns number of segments
func (net *OSMNetwork) SegmentsNum() int {
	return len(net.segments)
}

// NodesNum returns number of nodes
func (net *OSMNetwork) NodesNum() int {
	return len(net.nodes)
}

// WayID returns OSM way the segment has been cut from
func (net *OSMNetwork) WayID(id SegmentID) osm.WayID {
	return net.segments[id].wayID
}

// TagName returns `name` tag of the way the segment has been cut from
func (net *OSMNetwork) TagName(id SegmentID) string {
	return net.segments[id].name
}

// Geometry returns WGS84 geometry of the segment
func (net *OSMNetwork) Geometry(id SegmentID) orb.LineString {
	return net.segments[id].geom
}

// IsOneWay reports whether the segment may be driven from start node to end node only
func (net *OSMNetwork) IsOneWay(id SegmentID) bool {
	return net.segments[id].oneway
}

// OSMNodeID returns OSM identifier of the node
func (net *OSMNetwork) OSMNodeID(id NodeID) osm.NodeID {
	return net.nodes[id].osmID
}

// NodeByOSMID returns network node for OSM node. Only junctions and way ends are network nodes
func (net *OSMNetwork) NodeByOSMID(osmID osm.NodeID) (NodeID, bool) {
	id, ok := net.nodeIndex[osmID]
	return id, ok
}

// NodePoint returns WGS84 position of the node
func (net *OSMNetwork) NodePoint(id NodeID) orb.Point {
	return net.nodes[id].point
}
