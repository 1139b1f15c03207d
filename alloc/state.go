package alloc

// State is a complete, non-negative integer allocation across Categories.
// It is value-typed: every method here returns a new State rather than
// mutating the receiver, so a State can be passed and returned freely
// between engines without aliasing hazards.
type State [numCategories]int

// Get returns the amount allocated to c. Categories outside the fixed set
// (which cannot occur for any Category value produced by this package)
// return 0.
func (s State) Get(c Category) int {
	if c < 0 || c >= numCategories {
		return 0
	}
	return s[c]
}

// With returns a copy of s with category c set to amount. s itself is
// untouched.
func (s State) With(c Category, amount int) State {
	next := s
	next[c] = amount
	return next
}

// Add returns a copy of s with category c shifted by delta (may be
// negative). s itself is untouched.
func (s State) Add(c Category, delta int) State {
	return s.With(c, s.Get(c)+delta)
}

// Sum returns the total allocation across every category.
func (s State) Sum() int {
	total := 0
	for _, c := range Categories {
		total += s[c]
	}
	return total
}

// ToMap renders s as a category-name-keyed map, for JSON encoding at the
// CLI/HTTP boundary.
func (s State) ToMap() map[string]int {
	m := make(map[string]int, numCategories)
	for _, c := range Categories {
		m[c.String()] = s[c]
	}
	return m
}

// StateFromMap builds a State from a category-name-keyed map. Per spec, the
// "tabungan" key may be omitted and is then inserted as 0; every other
// category must be present, and unknown keys are rejected.
func StateFromMap(m map[string]int) (State, error) {
	var s State
	seen := make(map[string]bool, len(m))
	for name, amount := range m {
		c, ok := ParseCategory(name)
		if !ok {
			return State{}, ErrUnknownCategory
		}
		s[c] = amount
		seen[name] = true
	}
	for _, c := range Categories {
		if c == Tabungan {
			continue
		}
		if !seen[c.String()] {
			return State{}, ErrMissingCategory
		}
	}
	return s, nil
}
