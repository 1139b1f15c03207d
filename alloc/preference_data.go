package alloc

// EffortWeights and ReasonableMax are supplemental data carried over from
// original_source/config.py's BOBOT and REASONABLE_MAX tables. Neither is
// read by scorer, astar, greedy, annealing, validator or router: BOBOT was a
// "psychological effort weight" consumed only by the external preference
// layer (never by the kept solver files), and REASONABLE_MAX bounded the
// same external preference layer's suggestions. They are kept here, typed,
// as the home a future out-of-core preference layer would reach for — to
// avoid silently dropping data the original defined, not because any engine
// in this module consults them.

// EffortWeights mirrors BOBOT: a relative "cost" of moving money out of a
// category, highest for housing (kos) and lowest for savings (tabungan).
var EffortWeights = map[Category]float64{
	Kos:       3.0,
	Makan:     2.0,
	Transport: 1.5,
	Internet:  1.5,
	Jajan:     1.0,
	Hiburan:   1.2,
	Tabungan:  0.5,
}

// ReasonableMax mirrors REASONABLE_MAX: an upper bound a preference layer
// might suggest per category, independent of the hard income cap the solver
// enforces.
var ReasonableMax = map[Category]int{
	Kos:       1000000,
	Makan:     800000,
	Transport: 200000,
	Internet:  100000,
	Jajan:     400000,
	Hiburan:   300000,
	Tabungan:  500000,
}
