package streetnames

// AgentType is a kind of road user. Vehicle lanes of a way exist only for AGENT_AUTO and pedestrian lanes only for AGENT_WALK
type AgentType uint16

const (
	AGENT_AUTO = AgentType(iota + 1)
	AGENT_WALK
	AGENT_UNDEFINED = AgentType(0)
)

func (iotaIdx AgentType) String() string {
	return [...]string{"undefined", "auto", "walk"}[iotaIdx]
}

var (
	// explicit permission wins over any exclusion below
	agentsAccessIncludeValues = map[AgentType]map[AccessType]map[string]struct{}{
		AGENT_AUTO: {
			ACCESS_MOTOR_VEHICLE: {
				"yes": struct{}{},
			},
			ACCESS_MOTORCAR: {
				"yes": struct{}{},
			},
		},
		AGENT_WALK: {
			ACCESS_FOOT: {
				"yes":        struct{}{},
				"designated": struct{}{}, // designated footpaths along roads count as pavements
			},
		},
	}

	// Ways matching any of these values have no lanes for the agent. Service roads, living streets and
	// tracks keep their vehicle lanes. Private access only removes pedestrian lanes
	agentsAccessExcludeValues = map[AgentType]map[AccessType]map[string]struct{}{
		AGENT_AUTO: {
			ACCESS_HIGHWAY: {
				"cycleway":   struct{}{},
				"footway":    struct{}{},
				"pedestrian": struct{}{},
				"steps":      struct{}{},
				"path":       struct{}{},
				"corridor":   struct{}{},
			},
			ACCESS_MOTOR_VEHICLE: {
				"no": struct{}{},
			},
			ACCESS_MOTORCAR: {
				"no": struct{}{},
			},
		},
		AGENT_WALK: {
			ACCESS_HIGHWAY: {
				"cycleway":      struct{}{},
				"motorway":      struct{}{},
				"motorway_link": struct{}{},
				// UK trunk roads are mostly dual carriageways without pavements
				"trunk":         struct{}{},
				"trunk_link":    struct{}{},
			},
			ACCESS_FOOT: {
				"no": struct{}{},
			},
			ACCESS_OSM_ACCESS: {
				"private": struct{}{},
			},
		},
	}
)
