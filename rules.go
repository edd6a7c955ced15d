package streetnames

import "strings"

const (
	// selfContainedMarker terminates prefix names which need no suffix
	selfContainedMarker = "$"

	missingPrefix = "STREET_PREFIX_MISSING"
	missingSuffix = "STREET_SUFFIX_MISSING"
)

var (
	// frequencyLevels maps rule-table frequency names onto multipliers. Unknown names mean 1
	frequencyLevels = map[string]float64{
		"VERY_COMMON": 9.0,
		"COMMON":      3.0,
		"INFREQUENT":  1.0,
		"RARE":        1.0 / 3.0,
		"VERY_RARE":   1.0 / 9.0,
		"UNUSED":      0.0,
	}
)

func getFrequency(str string) float64 {
	if found, ok := frequencyLevels[strings.ToUpper(strings.TrimSpace(str))]; ok {
		return found
	}
	return 1.0
}

type featureModifier struct {
	feature RoadFeature
	factor  float64
}

// SuffixRule describes how often a suffix ("Street", "Lane", ...) is used for each road category and
// how road features affect that
type SuffixRule struct {
	Name string
	// frequencies holds base frequency for eligible categories only
	frequencies map[RoadCategory]float64
	// modifiers apply when the feature is present, negativeModifiers when it is absent.
	// Slices keep the table order so products are computed the same way every time
	modifiers         []featureModifier
	negativeModifiers []featureModifier
}

// NewSuffixRule returns rule with no eligible categories
func NewSuffixRule(name string) *SuffixRule {
	return &SuffixRule{
		Name:        name,
		frequencies: make(map[RoadCategory]float64),
	}
}

// SetFrequency sets base frequency for every category of the set
func (rule *SuffixRule) SetFrequency(categories CategorySet, frequency float64) {
	for _, category := range categories.members() {
		rule.frequencies[category] = frequency
	}
}

// AddModifier adds multiplier applied when feature is present (or absent when negated is true)
func (rule *SuffixRule) AddModifier(feature RoadFeature, factor float64, negated bool) {
	if negated {
		rule.negativeModifiers = append(rule.negativeModifiers, featureModifier{feature, factor})
		return
	}
	rule.modifiers = append(rule.modifiers, featureModifier{feature, factor})
}

// Probability returns unnormalised weight of the suffix for given category and features.
// Zero means the suffix is not eligible
func (rule *SuffixRule) Probability(category RoadCategory, features RoadFeature) float64 {
	probability, ok := rule.frequencies[category]
	if !ok {
		return 0
	}
	for _, modifier := range rule.modifiers {
		if features&modifier.feature != 0 {
			probability *= modifier.factor
		}
	}
	for _, modifier := range rule.negativeModifiers {
		if features&modifier.feature == 0 {
			probability *= modifier.factor
		}
	}
	return probability
}

// PrefixRule describes a prefix ("Church", "Mill", ...) and the roads it may be used for
type PrefixRule struct {
	// Name is the raw table name. Self-contained prefixes end with the terminator marker
	Name              string
	Weight            int
	AllowedCategories CategorySet
	RequiredFeatures  RoadFeature
	ForbiddenFeatures RoadFeature
	// SelfContained prefixes are complete names on their own
	SelfContained bool
}

// NewPrefixRule returns rule allowed for every category. Names ending with the terminator marker are self-contained
func NewPrefixRule(name string, weight int) *PrefixRule {
	return &PrefixRule{
		Name:              name,
		Weight:            weight,
		AllowedCategories: CATEGORIES_ALL,
		SelfContained:     strings.HasSuffix(name, selfContainedMarker),
	}
}

// Text returns the prefix as it should appear in a name
func (rule *PrefixRule) Text() string {
	return strings.TrimRight(rule.Name, selfContainedMarker)
}

// IsValidFor reports whether prefix may be used for a road with given features and effective category
func (rule *PrefixRule) IsValidFor(features RoadFeature, category RoadCategory) bool {
	if rule.SelfContained && (category == CATEGORY_BRIDGE || category == CATEGORY_TUNNEL) {
		return false
	}
	return features&rule.ForbiddenFeatures == 0 &&
		features.Has(rule.RequiredFeatures) &&
		rule.AllowedCategories.Contains(category)
}

// RuleTables holds immutable prefix and suffix tables
type RuleTables struct {
	// Prefixes and Suffixes keep table order
	Prefixes []*PrefixRule
	Suffixes []*SuffixRule
}

// NewRuleTables builds tables from rules. Rules with duplicate names are ignored, first one wins
func NewRuleTables(prefixes []*PrefixRule, suffixes []*SuffixRule) *RuleTables {
	tables := &RuleTables{
		Prefixes: make([]*PrefixRule, 0, len(prefixes)),
		Suffixes: make([]*SuffixRule, 0, len(suffixes)),
	}
	seenPrefixes := make(map[string]struct{}, len(prefixes))
	for _, rule := range prefixes {
		if _, ok := seenPrefixes[rule.Name]; ok {
			continue
		}
		seenPrefixes[rule.Name] = struct{}{}
		tables.Prefixes = append(tables.Prefixes, rule)
	}
	seenSuffixes := make(map[string]struct{}, len(suffixes))
	for _, rule := range suffixes {
		if _, ok := seenSuffixes[rule.Name]; ok {
			continue
		}
		seenSuffixes[rule.Name] = struct{}{}
		tables.Suffixes = append(tables.Suffixes, rule)
	}
	return tables
}

// missingPrefixRule substitutes an absent prefix table. It is a complete name on its own, so missing
// tables yield a single marker instead of two
func missingPrefixRule() *PrefixRule {
	rule := NewPrefixRule(missingPrefix, 1)
	rule.SelfContained = true
	return rule
}
