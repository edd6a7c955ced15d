package streetnames

var (
	junctionTypes = map[string]struct{}{
		"circular":   {},
		"roundabout": {},
	}

	// See ref.: https://wiki.openstreetmap.org/wiki/Tag:oneway%3Dreversible
	onewayReversible = map[string]struct{}{
		"reversible":  {},
		"alternating": {},
	}

	// values meaning absence for tags like `sidewalk`, `bridge` or `tunnel`
	negativeTagValues = map[string]struct{}{
		"":         {},
		"no":       {},
		"none":     {},
		"0":        {},
		"false":    {},
		"separate": {},
	}

	// closed ways with one of these key/value pairs are treated as water areas
	waterTags = map[string]map[string]struct{}{
		"natural": {
			"water": {},
			"bay":   {},
		},
		"waterway": {
			"riverbank": {},
			"dock":      {},
		},
		"landuse": {
			"reservoir": {},
			"basin":     {},
		},
	}
)

func isNegativeTagValue(value string) bool {
	_, ok := negativeTagValues[value]
	return ok
}
