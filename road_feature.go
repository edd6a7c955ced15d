package streetnames

import "strings"

// RoadFeature is a set of independently combinable road attributes
type RoadFeature uint16

const (
	FEATURE_HILL = RoadFeature(1 << iota)
	FEATURE_DEADEND
	FEATURE_CRESCENT
	FEATURE_WATERFRONT
	FEATURE_NEAR_WATER
	FEATURE_INCLUDES_BRIDGE
	FEATURE_INCLUDES_TUNNEL
	FEATURE_CROSSES_WATER
	FEATURE_ONE_WAY
	FEATURE_SHORT
	FEATURE_LONG
)

// FEATURE_NONE is the empty feature set
const FEATURE_NONE = RoadFeature(0)

var featureNames = [...]string{"hill", "deadend", "crescent", "waterfront", "near_water", "includes_bridge", "includes_tunnel", "crosses_water", "one_way", "short", "long"}

// Has reports whether every flag of feature is present
func (f RoadFeature) Has(feature RoadFeature) bool {
	return f&feature == feature
}

func (f RoadFeature) String() string {
	if f == FEATURE_NONE {
		return "none"
	}
	names := []string{}
	for i, name := range featureNames {
		if f&(RoadFeature(1)<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// exclusionMarker negates a feature token in rule tables
const exclusionMarker = "NOT_"

var (
	featuresByName = map[string]RoadFeature{
		"HILL":            FEATURE_HILL,
		"DEADEND":         FEATURE_DEADEND,
		"CRESCENT":        FEATURE_CRESCENT,
		"WATERFRONT":      FEATURE_WATERFRONT,
		"NEAR_WATER":      FEATURE_NEAR_WATER,
		"WITH_BRIDGE":     FEATURE_INCLUDES_BRIDGE,
		"INCLUDES_BRIDGE": FEATURE_INCLUDES_BRIDGE,
		"WITH_TUNNEL":     FEATURE_INCLUDES_TUNNEL,
		"INCLUDES_TUNNEL": FEATURE_INCLUDES_TUNNEL,
		"CROSSES_WATER":   FEATURE_CROSSES_WATER,
		"ONE_WAY":         FEATURE_ONE_WAY,
		"SHORT":           FEATURE_SHORT,
		"LONG":            FEATURE_LONG,
	}
)

// getFeature parses a feature token. negated is true for tokens carrying the exclusion marker
func getFeature(str string) (feature RoadFeature, negated bool) {
	str = strings.ToUpper(strings.TrimSpace(str))
	if strings.HasPrefix(str, exclusionMarker) {
		negated = true
		str = strings.TrimPrefix(str, exclusionMarker)
	}
	return featuresByName[str], negated
}
