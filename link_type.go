package streetnames

type LinkType uint16

const (
	LINK_MOTORWAY = LinkType(iota + 1)
	LINK_TRUNK
	LINK_PRIMARY
	LINK_SECONDARY
	LINK_TERTIARY
	LINK_RESIDENTIAL
	LINK_LIVING_STREET
	LINK_SERVICE
	LINK_CYCLEWAY
	LINK_FOOTWAY
	LINK_PEDESTRIAN
	LINK_TRACK
	LINK_UNCLASSIFIED
	LINK_UNDEFINED = LinkType(0)
)

func (iotaIdx LinkType) String() string {
	return [...]string{"undefined", "motorway", "trunk", "primary", "secondary", "tertiary", "residential", "living_street", "service", "cycleway", "footway", "pedestrian", "track", "unclassified"}[iotaIdx]
}

type linkComposition struct {
	linkType           LinkType
	linkConnectionType LinkConnectionType
}

const (
	// laneWidth is the carriageway width of one vehicle lane (metres)
	laneWidth = 3.5
	// sidewalkWidth is added to each side of a carriageway with pavements (metres)
	sidewalkWidth = 2.0
)

var (
	// motorways are implied one-way in OSM: each carriageway is mapped as a separate way
	onewayDefaultByLink = map[LinkType]bool{
		LINK_MOTORWAY:      true,
		LINK_TRUNK:         false,
		LINK_PRIMARY:       false,
		LINK_SECONDARY:     false,
		LINK_TERTIARY:      false,
		LINK_RESIDENTIAL:   false,
		LINK_LIVING_STREET: false,
		LINK_SERVICE:       false,
		LINK_CYCLEWAY:      false,
		LINK_FOOTWAY:       false,
		LINK_PEDESTRIAN:    false,
		LINK_TRACK:         false,
		LINK_UNCLASSIFIED:  false,
	}
	// number of vehicle lanes of a way (both directions) when `lanes` tag is absent
	defaultLanesByLinkType = map[LinkType]int{
		LINK_MOTORWAY:      3,
		LINK_TRUNK:         2,
		LINK_PRIMARY:       2,
		LINK_SECONDARY:     2,
		LINK_TERTIARY:      2,
		LINK_RESIDENTIAL:   2,
		LINK_LIVING_STREET: 2,
		LINK_SERVICE:       1,
		LINK_CYCLEWAY:      0,
		LINK_FOOTWAY:       0,
		LINK_PEDESTRIAN:    0,
		LINK_TRACK:         1,
		LINK_UNCLASSIFIED:  2,
	}
	// km/h, used when `maxspeed` tag is absent
	defaultSpeedByLinkType = map[LinkType]float64{
		LINK_MOTORWAY:      112,
		LINK_TRUNK:         96,
		LINK_PRIMARY:       80,
		LINK_SECONDARY:     60,
		LINK_TERTIARY:      50,
		LINK_RESIDENTIAL:   40,
		LINK_LIVING_STREET: 10,
		LINK_SERVICE:       20,
		LINK_CYCLEWAY:      15,
		LINK_FOOTWAY:       5,
		LINK_PEDESTRIAN:    5,
		LINK_TRACK:         30,
		LINK_UNCLASSIFIED:  60,
	}
	// ways driven under highway rules (no pedestrians, grade separated junctions)
	highwayRulesLinks = map[LinkType]struct{}{
		LINK_MOTORWAY: {},
		LINK_TRUNK:    {},
	}
	// ways assumed to have pavements even without `sidewalk` tag
	pavedLinks = map[LinkType]struct{}{
		LINK_TERTIARY:      {},
		LINK_RESIDENTIAL:   {},
		LINK_LIVING_STREET: {},
		LINK_SERVICE:       {},
		LINK_PEDESTRIAN:    {},
		LINK_FOOTWAY:       {},
	}
	// extra half-width of pedestrian areas without vehicle lanes
	pedestrianHalfWidthByLinkType = map[LinkType]float64{
		LINK_FOOTWAY:    1.5,
		LINK_CYCLEWAY:   1.5,
		LINK_PEDESTRIAN: 6.0,
	}
)
