package streetnames

// prefixList is the prefix table replicated by rule weights, in table order
type prefixList struct {
	entries []*PrefixRule
	// offset rotates the list. It is the per-session variation input
	offset int
}

// newPrefixList replicates every rule by its weight. Empty result falls back to the sentinel prefix
func newPrefixList(rules []*PrefixRule, offset int) *prefixList {
	list := &prefixList{}
	for _, rule := range rules {
		for i := 0; i < rule.Weight; i++ {
			list.entries = append(list.entries, rule)
		}
	}
	if len(list.entries) == 0 {
		list.entries = []*PrefixRule{missingPrefixRule()}
	}
	n := len(list.entries)
	list.offset = ((offset % n) + n) % n
	return list
}

// draw returns a random entry of the rotated list
func (list *prefixList) draw(rnd *randomizer) *PrefixRule {
	n := len(list.entries)
	return list.entries[(rnd.index(n)+list.offset)%n]
}

const maxPrefixAttempts = 30

// prefixCandidates is a bounded sequence of random prefix draws
type prefixCandidates struct {
	list     *prefixList
	rnd      *randomizer
	attempts int
	last     *PrefixRule
}

func (list *prefixList) candidates(rnd *randomizer) *prefixCandidates {
	return &prefixCandidates{list: list, rnd: rnd}
}

// next draws another candidate. ok is false once the attempt budget is exhausted
func (c *prefixCandidates) next() (rule *PrefixRule, ok bool) {
	if c.attempts >= maxPrefixAttempts {
		return c.last, false
	}
	c.attempts++
	c.last = c.list.draw(c.rnd)
	return c.last, true
}
