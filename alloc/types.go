package alloc

// Category identifies one of the seven fixed spending buckets. The zero
// value is Kos; there is no "unset" category, matching the spec's invariant
// that every operation is defined over exactly these keys.
type Category int

// The fixed, ordered category set. Order here is load-bearing: it fixes
// neighborhood expansion order (and so A*'s tie-breaks), greedy's floor-repair
// scan and "first such category" tie-break, so it must never be reordered once
// solutions depend on it.
const (
	Kos Category = iota
	Makan
	Transport
	Internet
	Jajan
	Hiburan
	Tabungan
	numCategories
)

// Categories lists every Category in canonical order. Iterating this slice
// (rather than 0..numCategories) keeps call sites readable without coupling
// them to the underlying int representation.
var Categories = [numCategories]Category{Kos, Makan, Transport, Internet, Jajan, Hiburan, Tabungan}

// categoryNames mirrors original_source/config.py's CATEGORIES identifiers.
var categoryNames = [numCategories]string{
	Kos:       "kos",
	Makan:     "makan",
	Transport: "transport",
	Internet:  "internet",
	Jajan:     "jajan",
	Hiburan:   "hiburan",
	Tabungan:  "tabungan",
}

// String returns the lowercase identifier used throughout original_source
// and in JSON payloads (e.g. "transport", "tabungan").
func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory resolves a lowercase identifier to its Category. Used at the
// JSON/TOML/HTTP boundary; the core never calls it.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if categoryNames[c] == name {
			return c, true
		}
	}
	return 0, false
}
