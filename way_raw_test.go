package streetnames

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestWay(id osm.WayID, tags ...string) *wayData {
	way := &wayData{ID: id, TagMap: osm.Tags{}}
	for i := 0; i+1 < len(tags); i += 2 {
		way.TagMap = append(way.TagMap, osm.Tag{Key: tags[i], Value: tags[i+1]})
	}
	way.processTags(zap.NewNop())
	way.processOneway(zap.NewNop())
	return way
}

func TestWayMaxSpeed(t *testing.T) {
	tests := []struct {
		value    string
		expected float64
	}{
		{"50", 50},
		{"50 km/h", 50},
		{"30 mph", 30 * mphToKmh},
		{"signals", -1},
	}
	for _, test := range tests {
		way := newTestWay(1, "highway", "residential", "maxspeed", test.value)
		assert.InDelta(t, test.expected, way.maxSpeed, 1e-9, test.value)
	}
}

func TestWayIntegerTags(t *testing.T) {
	way := newTestWay(1, "highway", "primary", "lanes", "4", "layer", "-1", "width", "12 m")
	assert.Equal(t, 4, way.lanes)
	assert.Equal(t, -1, way.layer)
	assert.Equal(t, 12.0, way.width)
	assert.Equal(t, -1, way.lanesForward)

	broken := newTestWay(2, "highway", "primary", "lanes", "many")
	assert.Equal(t, -1, broken.lanes)
}

func TestWayOneway(t *testing.T) {
	assert.True(t, newTestWay(1, "highway", "residential", "oneway", "yes").Oneway)
	assert.False(t, newTestWay(1, "highway", "residential").Oneway)
	assert.True(t, newTestWay(1, "highway", "motorway").Oneway)
	assert.True(t, newTestWay(1, "highway", "tertiary", "junction", "roundabout").Oneway)

	reversed := newTestWay(1, "highway", "residential", "oneway", "-1")
	assert.True(t, reversed.Oneway)
	assert.True(t, reversed.IsReversed)

	assert.False(t, newTestWay(1, "highway", "residential", "oneway", "reversible").Oneway)
}

func TestWayVehicleLanes(t *testing.T) {
	forward, backward := newTestWay(1, "highway", "primary", "lanes", "3").vehicleLanes()
	assert.Equal(t, 2, forward)
	assert.Equal(t, 1, backward)

	forward, backward = newTestWay(1, "highway", "primary", "lanes", "4", "lanes:forward", "3").vehicleLanes()
	assert.Equal(t, 3, forward)
	assert.Equal(t, 1, backward)

	forward, backward = newTestWay(1, "highway", "motorway", "lanes", "3").vehicleLanes()
	assert.Equal(t, 3, forward)
	assert.Equal(t, 0, backward)

	forward, backward = newTestWay(1, "highway", "footway").vehicleLanes()
	assert.Zero(t, forward+backward)

	forward, backward = newTestWay(1, "highway", "residential", "motor_vehicle", "no").vehicleLanes()
	assert.Zero(t, forward+backward)

	// explicit permission wins over highway type
	forward, _ = newTestWay(1, "highway", "pedestrian", "motor_vehicle", "yes", "lanes", "1").vehicleLanes()
	assert.Equal(t, 1, forward)
}

func TestWayPedestrianAccess(t *testing.T) {
	assert.False(t, newTestWay(1, "highway", "trunk", "sidewalk", "both").laneProfile().PedestrianLanes)
	assert.True(t, newTestWay(1, "highway", "trunk", "sidewalk", "both", "foot", "yes").laneProfile().PedestrianLanes)
	assert.True(t, newTestWay(1, "highway", "trunk", "sidewalk", "both", "foot", "designated").laneProfile().PedestrianLanes)
	assert.False(t, newTestWay(1, "highway", "residential", "access", "private").laneProfile().PedestrianLanes)

	forward, _ := newTestWay(1, "highway", "service", "access", "private").vehicleLanes()
	assert.Equal(t, 1, forward)
}

func TestWayLinkSpeed(t *testing.T) {
	assert.InDelta(t, 112.0/50.0, newTestWay(1, "highway", "motorway").laneProfile().Speed, 1e-9)
	assert.InDelta(t, linkMaxSpeed/50.0, newTestWay(1, "highway", "motorway_link").laneProfile().Speed, 1e-9)
	assert.InDelta(t, 1.6, newTestWay(1, "highway", "motorway_link", "maxspeed", "80").laneProfile().Speed, 1e-9)
}

func TestWayLaneProfileCategories(t *testing.T) {
	tests := []struct {
		tags     []string
		expected RoadCategory
	}{
		{[]string{"highway", "motorway"}, CATEGORY_MOTORWAY},
		{[]string{"highway", "motorway_link", "lanes", "1"}, CATEGORY_MINOR_RURAL},
		{[]string{"highway", "trunk"}, CATEGORY_MAJOR_RURAL},
		{[]string{"highway", "residential"}, CATEGORY_MINOR_URBAN},
		{[]string{"highway", "primary", "lanes", "4", "sidewalk", "both"}, CATEGORY_MAJOR_URBAN},
		{[]string{"highway", "unclassified"}, CATEGORY_MINOR_RURAL},
		{[]string{"highway", "living_street"}, CATEGORY_MAJOR_PEDESTRIAN},
		{[]string{"highway", "footway"}, CATEGORY_MINOR_PEDESTRIAN},
		{[]string{"highway", "pedestrian"}, CATEGORY_MAJOR_PEDESTRIAN},
		{[]string{"highway", "cycleway"}, CATEGORY_NONE},
	}
	for _, test := range tests {
		lanes := newTestWay(1, test.tags...).laneProfile()
		assert.Equal(t, test.expected, ClassifySegment(lanes), "%v", test.tags)
	}
}

func TestWayElevation(t *testing.T) {
	assert.True(t, newTestWay(1, "highway", "primary", "bridge", "viaduct").isElevated())
	assert.False(t, newTestWay(1, "highway", "primary", "bridge", "no").isElevated())
	assert.True(t, newTestWay(1, "highway", "primary", "tunnel", "yes").isUnderground())
	assert.False(t, newTestWay(1, "highway", "primary").isUnderground())
}

func TestWayNameSeed(t *testing.T) {
	first := newTestWay(1, "highway", "residential", "name", "High Street")
	second := newTestWay(2, "highway", "residential", "name", "High Street")
	other := newTestWay(3, "highway", "residential", "name", "Mill Lane")
	assert.Equal(t, first.nameSeed(), second.nameSeed())
	assert.NotEqual(t, first.nameSeed(), other.nameSeed())

	byRef := newTestWay(4, "highway", "motorway", "ref", "M1")
	assert.Equal(t, byRef.nameSeed(), newTestWay(5, "highway", "motorway", "ref", "M1").nameSeed())

	id := uint64(70000)
	anonymous := newTestWay(osm.WayID(id), "highway", "service")
	assert.Equal(t, NameSeed(id^id>>16), anonymous.nameSeed())
}
