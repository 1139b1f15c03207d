package annealing

import (
	"math"

	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/scorer"
)

// epsilon guards the T+epsilon denominator in the acceptance probability
// against division by (near) zero as T approaches 0 at the end of the
// cooling schedule.
const epsilon = 1e-9

// Solve runs the geometric-cooling stochastic refinement of spec §4.5. It
// always returns StatusSuccess, carrying the best-scoring state observed
// across the whole run rather than wherever the random walk ended up.
//
// Complexity: O(opts.Steps) time, O(1) space beyond the current/best states.
func Solve(state0 alloc.State, income int, floors alloc.Floors, target int, step int, opts Options) Result {
	steps := opts.Steps
	if steps <= 0 {
		steps = DefaultSteps
	}
	tStart, tEnd := opts.TStart, opts.TEnd
	if tStart <= 0 {
		tStart = DefaultTStart
	}
	if tEnd <= 0 {
		tEnd = DefaultTEnd
	}

	rng := rngFromSeed(opts.Seed)
	propose := uniformProposer(rng)
	if opts.DeterministicFallback {
		propose = roundRobinProposer()
	}

	current := state0
	currentScore := scorer.Penalty(current, income, floors, target, scorer.SAWeights)
	best := current
	bestScore := currentScore

	for i := 0; i < steps; i++ {
		temperature := tStart * math.Pow(tEnd/tStart, float64(i)/float64(steps))

		cat, direction := propose()
		candidate := current.Add(cat, direction*step)

		if candidate.Get(cat) < floors.Get(cat) {
			continue
		}
		if candidate.Get(cat) < 0 {
			continue
		}
		if candidate.Sum() > income+step {
			continue
		}

		candidateScore := scorer.Penalty(candidate, income, floors, target, scorer.SAWeights)
		delta := candidateScore - currentScore

		accept := delta <= 0
		if !accept {
			acceptProb := math.Exp(-float64(delta) / (temperature + epsilon))
			accept = rng.Float64() < acceptProb
		}

		if !accept {
			continue
		}

		current = candidate
		currentScore = candidateScore
		if candidateScore < bestScore {
			best = candidate
			bestScore = candidateScore
		}
	}

	return Result{FinalState: best, Status: StatusSuccess}
}
