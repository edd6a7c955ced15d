package streetnames

// ElevationContext selects which of the three name partitions a segment is named in
type ElevationContext uint8

const (
	ELEVATION_GROUND = ElevationContext(iota)
	ELEVATION_BRIDGE
	ELEVATION_TUNNEL
)

const elevationContextsNum = 3

func (iotaIdx ElevationContext) String() string {
	return [...]string{"ground", "bridge", "tunnel"}[iotaIdx]
}

// category returns the category forced by the context. Ground does not force one
func (iotaIdx ElevationContext) category() RoadCategory {
	switch iotaIdx {
	case ELEVATION_BRIDGE:
		return CATEGORY_BRIDGE
	case ELEVATION_TUNNEL:
		return CATEGORY_TUNNEL
	default:
		return CATEGORY_NONE
	}
}

// ElevationContextOf returns the context a segment is named in: bridge for elevated segments,
// tunnel for underground ones and ground otherwise
func ElevationContextOf(segment Segment) ElevationContext {
	if segment.Elevated {
		return ELEVATION_BRIDGE
	}
	if segment.Underground {
		return ELEVATION_TUNNEL
	}
	return ELEVATION_GROUND
}
