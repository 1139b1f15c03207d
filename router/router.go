package router

import (
	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/annealing"
	"github.com/solverkit/allocsolver/astar"
	"github.com/solverkit/allocsolver/greedy"
	"github.com/solverkit/allocsolver/internal/advisor"
	"github.com/solverkit/allocsolver/validator"
)

// Solve runs the fixed cascade astar -> greedy -> simulated annealing ->
// ai_recommendation, stopping at the first engine whose attempt succeeds,
// then passing its state through validator.Repair before returning. It
// never returns a Go error: infeasibility and non-convergence are Status
// values on the returned Result, never raised as errors.
//
// If floors alone already exceed income, no engine runs: Solve returns
// StatusPartial immediately with final_state equal to floors scaled down to
// fit income and a note explaining the conflict.
func Solve(state0 alloc.State, income int, floors alloc.Floors, target int, step int, opts Options) Result {
	if floors.Sum() > income {
		return infeasibleFloorsResult(floors, income)
	}

	var trace []TraceEntry

	aRes := astar.Solve(state0, income, floors, target, step, opts.Astar)
	trace = append(trace, TraceEntry{Method: MethodAstar, Status: Status(aRes.Status), FinalState: &aRes.FinalState})
	if aRes.Status == astar.StatusSuccess {
		return finalize(aRes.FinalState, MethodAstar, trace, floors, income)
	}

	gRes := greedy.Solve(state0, income, floors, target, step, opts.Greedy)
	trace = append(trace, TraceEntry{Method: MethodGreedy, Status: Status(gRes.Status), FinalState: &gRes.FinalState})
	if gRes.Status == greedy.StatusSuccess {
		return finalize(gRes.FinalState, MethodGreedy, trace, floors, income)
	}

	sRes := annealing.Solve(state0, income, floors, target, step, opts.Annealing)
	trace = append(trace, TraceEntry{Method: MethodSimulatedAnnealing, Status: Status(sRes.Status), FinalState: &sRes.FinalState})
	if sRes.Status == annealing.StatusSuccess {
		return finalize(sRes.FinalState, MethodSimulatedAnnealing, trace, floors, income)
	}

	// Unreachable under the current annealing contract (it always reports
	// success), kept because a future annealing revision may legitimately
	// fail and this is the only remaining stage before the non-numeric
	// fallback.
	advice := advisor.Recommend(state0, income, target)
	trace = append(trace, TraceEntry{Method: MethodAiRecommendation, Status: StatusAiRecommendation})
	return Result{
		Method:         MethodAiRecommendation,
		Status:         StatusAiRecommendation,
		Trace:          trace,
		Recommendation: advice.Directions,
		Notes:          []string{advice.Note},
	}
}

// finalize runs the winning engine's state through validator.Repair and
// folds its status and notes into the returned Result.
func finalize(state alloc.State, method Method, trace []TraceEntry, floors alloc.Floors, income int) Result {
	vRes := validator.Repair(state, floors, income)

	status := StatusSuccess
	if vRes.Status == validator.StatusWarning {
		status = StatusWarning
	}

	return Result{
		FinalState: vRes.FinalState,
		Method:     method,
		Status:     status,
		Trace:      trace,
		Notes:      vRes.Notes,
	}
}

// infeasibleFloorsResult handles the precondition where floors alone exceed
// income: no engine can do anything useful, so Solve scales floors down to
// fit and reports the conflict directly.
func infeasibleFloorsResult(floors alloc.Floors, income int) Result {
	vRes := validator.Repair(floors.ToState(), floors, income)
	notes := append([]string{"floors exceed income; no engine can produce a feasible state"}, vRes.Notes...)

	return Result{
		FinalState: vRes.FinalState,
		Method:     MethodAstar,
		Status:     StatusPartial,
		Trace: []TraceEntry{
			{Method: MethodAstar, Status: StatusPartial},
		},
		Notes: notes,
	}
}
