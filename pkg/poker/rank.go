package poker

// HandRank is the best category a set of cards can make plus the kickers
// needed to break ties within the category. Kickers are in descending order
// and truncated to the minimum needed to disambiguate.
type HandRank struct {
	Category Category `json:"category"`
	Kickers  []int    `json:"kickers"`
}

// Compare returns a value < 0 if r is the weaker hand, > 0 if r is the
// stronger hand, and 0 if the hands tie exactly.
// The ordering is total: category first, then kickers element-wise, then
// kicker-list length.
func (r *HandRank) Compare(other *HandRank) int {
	if other == nil {
		return 1
	}

	if r.Category != other.Category {
		return int(r.Category) - int(other.Category)
	}

	n := len(r.Kickers)
	if len(other.Kickers) < n {
		n = len(other.Kickers)
	}

	for i := 0; i < n; i++ {
		if r.Kickers[i] != other.Kickers[i] {
			return r.Kickers[i] - other.Kickers[i]
		}
	}

	return len(r.Kickers) - len(other.Kickers)
}
