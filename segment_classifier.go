package streetnames

const (
	// fastSpeed is 60 km/h in lane speed units
	fastSpeed = 1.2
	// slowSpeed is 25 km/h in lane speed units
	slowSpeed = 0.5

	narrowHalfWidth = 4.0
	wideHalfWidth   = 12.0
)

// ClassifySegment maps static segment attributes onto a road category. Rules are applied in order and
// the first matching one wins
func ClassifySegment(lanes LaneProfile) RoadCategory {
	if !lanes.Road {
		return CATEGORY_NONE
	}

	if lanes.HighwayRules && lanes.Speed > fastSpeed {
		if lanes.HasForwardLanes() && lanes.HasBackwardLanes() {
			return CATEGORY_MAJOR_RURAL
		}
		return CATEGORY_MOTORWAY
	}

	vehicleLanes := lanes.VehicleLanes()
	if vehicleLanes == 0 {
		if !lanes.PedestrianLanes {
			return CATEGORY_NONE
		}
		return pedestrianCategory(lanes.HalfWidth)
	}

	if lanes.Speed <= slowSpeed && lanes.PedestrianLanes {
		return pedestrianCategory(lanes.HalfWidth)
	}

	if !lanes.Pavement {
		if lanes.Speed > fastSpeed || vehicleLanes > 2 {
			return CATEGORY_MAJOR_RURAL
		}
		return CATEGORY_MINOR_RURAL
	}

	if vehicleLanes > 3 || lanes.HalfWidth >= wideHalfWidth {
		return CATEGORY_MAJOR_URBAN
	}
	return CATEGORY_MINOR_URBAN
}

func pedestrianCategory(halfWidth float64) RoadCategory {
	if halfWidth < narrowHalfWidth {
		return CATEGORY_MINOR_PEDESTRIAN
	}
	return CATEGORY_MAJOR_PEDESTRIAN
}
