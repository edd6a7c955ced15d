package streetnames

import "strings"

// RoadCategory is the single predominant category of a road
type RoadCategory uint16

const (
	CATEGORY_NONE = RoadCategory(iota)
	CATEGORY_MINOR_PEDESTRIAN
	CATEGORY_MAJOR_PEDESTRIAN
	CATEGORY_MINOR_URBAN
	CATEGORY_MAJOR_URBAN
	CATEGORY_MINOR_RURAL
	CATEGORY_MAJOR_RURAL
	CATEGORY_MOTORWAY
	CATEGORY_SQUARE
	CATEGORY_CIRCLE
	CATEGORY_OVAL
	CATEGORY_LOOP
	CATEGORY_BRIDGE
	CATEGORY_TUNNEL
)

func (iotaIdx RoadCategory) String() string {
	return [...]string{"none", "minor_pedestrian", "major_pedestrian", "minor_urban", "major_urban", "minor_rural", "major_rural", "motorway", "square", "circle", "oval", "loop", "bridge", "tunnel"}[iotaIdx]
}

// Set returns the single-member CategorySet for the category. CATEGORY_NONE maps to the empty set
func (iotaIdx RoadCategory) Set() CategorySet {
	if iotaIdx == CATEGORY_NONE {
		return 0
	}
	return CategorySet(1) << (iotaIdx - 1)
}

// IsLoopShape reports whether category is one of the closed-ring shapes
func (iotaIdx RoadCategory) IsLoopShape() bool {
	switch iotaIdx {
	case CATEGORY_SQUARE, CATEGORY_CIRCLE, CATEGORY_OVAL, CATEGORY_LOOP:
		return true
	}
	return false
}

// CategorySet is a bitset of categories. It is only used for rule matching ("allowed categories")
type CategorySet uint32

// CATEGORIES_ALL matches every category
const CATEGORIES_ALL = ^CategorySet(0)

// Contains reports whether category belongs to the set
func (set CategorySet) Contains(category RoadCategory) bool {
	bit := category.Set()
	return set&bit == bit
}

func (set CategorySet) String() string {
	if set == CATEGORIES_ALL {
		return "all"
	}
	names := []string{}
	for category := CATEGORY_MINOR_PEDESTRIAN; category <= CATEGORY_TUNNEL; category++ {
		if set&category.Set() != 0 {
			names = append(names, category.String())
		}
	}
	return strings.Join(names, "|")
}

var (
	// rule-table spelling of categories. Group names expand to several members
	categoriesByName = map[string]CategorySet{
		"MINOR_PEDESTRIAN": CATEGORY_MINOR_PEDESTRIAN.Set(),
		"MAJOR_PEDESTRIAN": CATEGORY_MAJOR_PEDESTRIAN.Set(),
		"MINOR_URBAN":      CATEGORY_MINOR_URBAN.Set(),
		"MAJOR_URBAN":      CATEGORY_MAJOR_URBAN.Set(),
		"MINOR_RURAL":      CATEGORY_MINOR_RURAL.Set(),
		"MAJOR_RURAL":      CATEGORY_MAJOR_RURAL.Set(),
		"MOTORWAY":         CATEGORY_MOTORWAY.Set(),
		"PEDESTRIAN":       CATEGORY_MINOR_PEDESTRIAN.Set() | CATEGORY_MAJOR_PEDESTRIAN.Set(),
		"URBAN":            CATEGORY_MINOR_URBAN.Set() | CATEGORY_MAJOR_URBAN.Set(),
		"RURAL":            CATEGORY_MINOR_RURAL.Set() | CATEGORY_MAJOR_RURAL.Set(),
		"SQUARE":           CATEGORY_SQUARE.Set(),
		"CIRCLE":           CATEGORY_CIRCLE.Set(),
		"OVAL":             CATEGORY_OVAL.Set(),
		"LOOP":             CATEGORY_LOOP.Set(),
		"BRIDGE":           CATEGORY_BRIDGE.Set(),
		"TUNNEL":           CATEGORY_TUNNEL.Set(),
		"ALL":              CATEGORIES_ALL,
	}
)

func getCategorySet(str string) CategorySet {
	if found, ok := categoriesByName[strings.ToUpper(strings.TrimSpace(str))]; ok {
		return found
	}
	return 0
}

// members returns the categories of the set in declaration order
func (set CategorySet) members() []RoadCategory {
	out := []RoadCategory{}
	for category := CATEGORY_MINOR_PEDESTRIAN; category <= CATEGORY_TUNNEL; category++ {
		if set&category.Set() != 0 {
			out = append(out, category)
		}
	}
	return out
}
