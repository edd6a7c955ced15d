package streetnames

import (
	"math"
	"sort"
)

// suffixEntry is a suffix together with its cumulative weight scaled onto [0; MaxUint32]
type suffixEntry struct {
	cumulative uint32
	name       string
}

// suffixList is the cumulative distribution of suffixes eligible for one category and feature set
type suffixList struct {
	entries []suffixEntry
}

// newSuffixList builds distribution over rules with positive probability. Entries are ordered by name.
// Empty distribution means there is no eligible suffix
func newSuffixList(rules []*SuffixRule, category RoadCategory, features RoadFeature) *suffixList {
	eligible := make([]*SuffixRule, 0, len(rules))
	probabilities := make(map[string]float64, len(rules))
	for _, rule := range rules {
		p := rule.Probability(category, features)
		if p > 0 {
			eligible = append(eligible, rule)
			probabilities[rule.Name] = p
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].Name < eligible[j].Name
	})

	total := 0.0
	for _, rule := range eligible {
		total += probabilities[rule.Name]
	}
	list := &suffixList{entries: make([]suffixEntry, 0, len(eligible))}
	combined := 0.0
	for _, rule := range eligible {
		combined += probabilities[rule.Name]
		list.entries = append(list.entries, suffixEntry{
			cumulative: uint32(math.Round(combined / total * math.MaxUint32)),
			name:       rule.Name,
		})
	}
	if n := len(list.entries); n > 0 {
		// rounding must not leave the top of the range uncovered
		list.entries[n-1].cumulative = math.MaxUint32
	}
	return list
}

func (list *suffixList) empty() bool {
	return len(list.entries) == 0
}

// pick returns the first suffix whose cumulative weight is not less than draw
func (list *suffixList) pick(draw uint32) string {
	if list.empty() {
		return missingSuffix
	}
	idx := sort.Search(len(list.entries), func(i int) bool {
		return list.entries[i].cumulative >= draw
	})
	if idx == len(list.entries) {
		idx = len(list.entries) - 1
	}
	return list.entries[idx].name
}
