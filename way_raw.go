package streetnames

import (
	"hash/fnv"
	"regexp"
	"strconv"

	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// wayData is an OSM way reduced to the tags naming cares about
type wayData struct {
	name         string
	ref          string
	highway      string
	junction     string
	motorVehicle string
	motorcar     string
	access       string
	service      string
	foot         string
	sidewalk     string
	bridge       string
	tunnel       string
	TagMap       osm.Tags
	Nodes        []osm.NodeID

	lanesBackward      int
	lanesForward       int
	lanes              int
	layer              int
	maxSpeed           float64
	width              float64
	ID                 osm.WayID
	highwayType        HighwayType
	linkConnectionType LinkConnectionType
	linkType           LinkType
	Oneway             bool
	OnewayDefault      bool
	IsReversed         bool
}

var (
	mphRegExp    = regexp.MustCompile(`(\d+\.?\d*)\s*mph`)
	kmhRegExp    = regexp.MustCompile(`^(\d+\.?\d*)\s*(km/h|kmh|kph)?$`)
	numberRegExp = regexp.MustCompile(`-?\d+\.?\d*`)
)

const (
	mphToKmh = 1.609344
	// linkMaxSpeed caps default speed of slip roads and ramps (km/h)
	linkMaxSpeed = 60.0
)

// processTags flattens tags. Unparsable numeric values are logged and treated as absent (-1)
func (way *wayData) processTags(logger *zap.Logger) {
	way.name = way.TagMap.Find("name")
	way.ref = way.TagMap.Find("ref")
	way.highway = way.TagMap.Find("highway")
	way.highwayType = getHighwayType(way.highway)
	if composition, ok := linkTypeByHighway[way.highwayType]; ok {
		way.linkType = composition.linkType
		way.linkConnectionType = composition.linkConnectionType
	}

	way.lanes = way.parseIntTag("lanes", logger)
	way.lanesForward = way.parseIntTag("lanes:forward", logger)
	way.lanesBackward = way.parseIntTag("lanes:backward", logger)
	way.layer = way.parseIntTag("layer", logger)

	way.maxSpeed = -1.0
	maxSpeed := way.TagMap.Find("maxspeed")
	if maxSpeed != "" {
		if found := kmhRegExp.FindStringSubmatch(maxSpeed); found != nil {
			way.maxSpeed, _ = strconv.ParseFloat(found[1], 64)
		} else if found := mphRegExp.FindStringSubmatch(maxSpeed); found != nil {
			value, _ := strconv.ParseFloat(found[1], 64)
			way.maxSpeed = value * mphToKmh
		} else {
			logger.Debug("Unhandled `maxspeed` tag value", zap.String("value", maxSpeed), zap.Int64("way_id", int64(way.ID)))
		}
	}

	way.width = -1.0
	if width := numberRegExp.FindString(way.TagMap.Find("width")); width != "" {
		way.width, _ = strconv.ParseFloat(width, 64)
	}

	// Rest of tags
	way.junction = way.TagMap.Find("junction")
	way.motorVehicle = way.TagMap.Find("motor_vehicle")
	way.motorcar = way.TagMap.Find("motorcar")
	way.access = way.TagMap.Find("access")
	way.service = way.TagMap.Find("service")
	way.foot = way.TagMap.Find("foot")
	way.sidewalk = way.TagMap.Find("sidewalk")
	way.bridge = way.TagMap.Find("bridge")
	way.tunnel = way.TagMap.Find("tunnel")
}

func (way *wayData) parseIntTag(key string, logger *zap.Logger) int {
	text := way.TagMap.Find(key)
	if text == "" {
		return -1
	}
	value, err := strconv.Atoi(numberRegExp.FindString(text))
	if err != nil {
		logger.Debug("Tag value should be an integer", zap.String("key", key), zap.String("value", text), zap.Int64("way_id", int64(way.ID)))
		return -1
	}
	return value
}

// processOneway decides direction of traffic. Reversed one-way ways have their nodes reversed later
func (way *wayData) processOneway(logger *zap.Logger) {
	onewayText := way.TagMap.Find("oneway")
	switch onewayText {
	case "yes", "1", "true":
		way.Oneway = true
	case "no", "0", "false":
		way.Oneway = false
	case "-1", "reverse":
		way.Oneway = true
		way.IsReversed = true
	case "":
		if _, ok := junctionTypes[way.TagMap.Find("junction")]; ok {
			way.Oneway = true
		} else {
			way.Oneway = onewayDefaultByLink[way.linkType]
			way.OnewayDefault = true
		}
	default:
		// Reversible or alternating ways depend on time conditions
		if _, found := onewayReversible[onewayText]; !found {
			logger.Debug("Unhandled `oneway` tag value", zap.String("value", onewayText), zap.Int64("way_id", int64(way.ID)))
		}
		way.Oneway = false
	}
}

func (way *wayData) isElevated() bool {
	return !isNegativeTagValue(way.bridge)
}

func (way *wayData) isUnderground() bool {
	return !isNegativeTagValue(way.tunnel)
}

func (way *wayData) hasSidewalk() bool {
	return !isNegativeTagValue(way.sidewalk)
}

func (way *wayData) findIncludedAgent(agentType AgentType) bool {
	accessType, ok := agentsAccessIncludeValues[agentType]
	if !ok {
		return false
	}
	switch agentType {
	case AGENT_AUTO:
		// Check `motor_vehicle`
		if _, ok := accessType[ACCESS_MOTOR_VEHICLE][way.motorVehicle]; ok {
			return true
		}
		// Check `motorcar`
		if _, ok := accessType[ACCESS_MOTORCAR][way.motorcar]; ok {
			return true
		}
	case AGENT_WALK:
		// Check `foot`
		if _, ok := accessType[ACCESS_FOOT][way.foot]; ok {
			return true
		}
	default:
		return false
	}
	return false
}

// findExcludedAgent returns true if the way is closed for given agent
func (way *wayData) findExcludedAgent(agentType AgentType) bool {
	accessType, ok := agentsAccessExcludeValues[agentType]
	if !ok {
		return false
	}
	checks := map[AccessType]string{
		ACCESS_HIGHWAY:       way.highway,
		ACCESS_MOTOR_VEHICLE: way.motorVehicle,
		ACCESS_MOTORCAR:      way.motorcar,
		ACCESS_OSM_ACCESS:    way.access,
		ACCESS_SERVICE:       way.service,
		ACCESS_FOOT:          way.foot,
	}
	for access, values := range accessType {
		if _, ok := values[checks[access]]; ok {
			return true
		}
	}
	return false
}

// allowsAgent reports whether the way can be used by given agent. Explicit permission wins over exclusion
func (way *wayData) allowsAgent(agentType AgentType) bool {
	if way.findIncludedAgent(agentType) {
		return true
	}
	return !way.findExcludedAgent(agentType)
}

// vehicleLanes returns number of vehicle lanes in forward and backward direction
func (way *wayData) vehicleLanes() (forward, backward int) {
	if !way.allowsAgent(AGENT_AUTO) {
		return 0, 0
	}
	total := way.lanes
	if total <= 0 {
		total = defaultLanesByLinkType[way.linkType]
	}
	if total <= 0 {
		return 0, 0
	}
	if way.Oneway {
		if way.lanesForward > 0 {
			return way.lanesForward, 0
		}
		return total, 0
	}
	switch {
	case way.lanesForward > 0 && way.lanesBackward > 0:
		return way.lanesForward, way.lanesBackward
	case way.lanesForward > 0:
		return way.lanesForward, max(1, total-way.lanesForward)
	case way.lanesBackward > 0:
		return max(1, total-way.lanesBackward), way.lanesBackward
	}
	return max(1, (total+1)/2), max(1, total/2)
}

// laneProfile derives static lane configuration of the way
func (way *wayData) laneProfile() LaneProfile {
	speed := way.maxSpeed
	if speed <= 0 {
		speed = defaultSpeedByLinkType[way.linkType]
		if way.linkConnectionType == IS_LINK {
			speed = min(speed, linkMaxSpeed)
		}
	}
	forward, backward := way.vehicleLanes()
	_, paved := pavedLinks[way.linkType]
	pavement := paved || way.hasSidewalk()
	_, highwayRules := highwayRulesLinks[way.linkType]

	halfWidth := way.width / 2.0
	if way.width <= 0 {
		halfWidth = float64(forward+backward)*laneWidth/2.0 + pedestrianHalfWidthByLinkType[way.linkType]
		if pavement {
			halfWidth += sidewalkWidth
		}
	}

	return LaneProfile{
		Road:                 true,
		Speed:                speed / 50.0,
		ForwardVehicleLanes:  forward,
		BackwardVehicleLanes: backward,
		PedestrianLanes:      pavement && way.allowsAgent(AGENT_WALK),
		HalfWidth:            halfWidth,
		Pavement:             pavement,
		HighwayRules:         highwayRules,
	}
}

// nameSeed derives identity seed from `name` (or `ref` for unnamed ways). Ways with neither get a seed from their ID
func (way *wayData) nameSeed() NameSeed {
	key := way.name
	if key == "" {
		key = way.ref
	}
	if key == "" {
		id := uint64(way.ID)
		return NameSeed(id ^ id>>16 ^ id>>32 ^ id>>48)
	}
	hasher := fnv.New32a()
	hasher.Write([]byte(key))
	sum := hasher.Sum32()
	return NameSeed(sum ^ sum>>16)
}
