package streetnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySegment(t *testing.T) {
	tests := []struct {
		name     string
		lanes    LaneProfile
		expected RoadCategory
	}{
		{"not a road", LaneProfile{Speed: 1, ForwardVehicleLanes: 1}, CATEGORY_NONE},
		{"motorway", motorwayLanes, CATEGORY_MOTORWAY},
		{"dual carriageway under highway rules", LaneProfile{Road: true, HighwayRules: true, Speed: 2, ForwardVehicleLanes: 2, BackwardVehicleLanes: 2}, CATEGORY_MAJOR_RURAL},
		{"slow highway rules road is not a motorway", LaneProfile{Road: true, HighwayRules: true, Speed: 1, ForwardVehicleLanes: 2, Pavement: true, HalfWidth: 7}, CATEGORY_MINOR_URBAN},
		{"no lanes at all", LaneProfile{Road: true, Speed: 1}, CATEGORY_NONE},
		{"narrow footway", LaneProfile{Road: true, Speed: 0.1, PedestrianLanes: true, HalfWidth: 2}, CATEGORY_MINOR_PEDESTRIAN},
		{"wide pedestrian area", LaneProfile{Road: true, Speed: 0.1, PedestrianLanes: true, HalfWidth: 8}, CATEGORY_MAJOR_PEDESTRIAN},
		{"living street", LaneProfile{Road: true, Speed: 0.2, ForwardVehicleLanes: 1, BackwardVehicleLanes: 1, PedestrianLanes: true, Pavement: true, HalfWidth: 5}, CATEGORY_MINOR_PEDESTRIAN},
		{"slow road without pedestrians", LaneProfile{Road: true, Speed: 0.2, ForwardVehicleLanes: 1, BackwardVehicleLanes: 1}, CATEGORY_MINOR_RURAL},
		{"country lane", minorRuralLanes, CATEGORY_MINOR_RURAL},
		{"fast country road", LaneProfile{Road: true, Speed: 1.6, ForwardVehicleLanes: 1, BackwardVehicleLanes: 1}, CATEGORY_MAJOR_RURAL},
		{"wide country road", LaneProfile{Road: true, Speed: 1, ForwardVehicleLanes: 2, BackwardVehicleLanes: 1}, CATEGORY_MAJOR_RURAL},
		{"town street", minorUrbanLanes, CATEGORY_MINOR_URBAN},
		{"town avenue", majorUrbanLanes, CATEGORY_MAJOR_URBAN},
		{"wide town street", LaneProfile{Road: true, Speed: 1, ForwardVehicleLanes: 1, BackwardVehicleLanes: 1, Pavement: true, HalfWidth: 12}, CATEGORY_MAJOR_URBAN},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ClassifySegment(test.lanes))
		})
	}
}
