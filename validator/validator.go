package validator

import (
	"fmt"

	"github.com/solverkit/allocsolver/alloc"
)

// adjustableOrder is the discretionary reduction order for step 3: categories
// least essential to keep funded are trimmed first, tabungan is never
// touched by this step. Order is load-bearing, mirrors
// original_source/genai/validator.py's adjustable_order literal.
var adjustableOrder = [...]alloc.Category{
	alloc.Hiburan,
	alloc.Jajan,
	alloc.Internet,
	alloc.Transport,
	alloc.Makan,
	alloc.Kos,
}

// Repair runs the five-step repair ladder over state and returns a state
// guaranteed to satisfy: every category >= 0, every category >= its floor
// (when income allows), and state.Sum() <= income.
//
// Step order is fixed and must not be reordered: clamp negatives, lift
// floors, reduce discretionary categories down to their floors to fit
// income, brute-force proportional scaling as a last resort, then a final
// clamp into [0, income] in case scaling under/overshot due to integer
// truncation.
func Repair(state alloc.State, floors alloc.Floors, income int) Result {
	var notes []string
	s := state

	// 1. Fix negative values.
	for _, c := range alloc.Categories {
		if s.Get(c) < 0 {
			notes = append(notes, fmt.Sprintf("negative value found in %q, corrected to 0", c))
			s = s.With(c, 0)
		}
	}

	// 2. Enforce floors.
	for _, c := range alloc.Categories {
		if s.Get(c) < floors.Get(c) {
			notes = append(notes, fmt.Sprintf("%q is below its floor (%d < %d), corrected", c, s.Get(c), floors.Get(c)))
			s = s.With(c, floors.Get(c))
		}
	}

	// 3. If still over income, trim discretionary categories down to floor.
	total := s.Sum()
	if total > income {
		diff := total - income
		notes = append(notes, fmt.Sprintf("total exceeds income by %d, applying downward normalization", diff))

		for _, c := range adjustableOrder {
			if diff <= 0 {
				break
			}
			available := s.Get(c) - floors.Get(c)
			if available <= 0 {
				continue
			}
			take := available
			if diff < take {
				take = diff
			}
			s = s.Add(c, -take)
			diff -= take
		}

		// 4. Last resort: proportional brute-force scaling.
		if diff > 0 {
			notes = append(notes, "total still over income, applying proportional scaling")
			sum := s.Sum()
			if sum > 0 {
				factor := float64(income) / float64(sum)
				for _, c := range alloc.Categories {
					s = s.With(c, int(float64(s.Get(c))*factor))
				}
			}
		}
	}

	// 5. Final safety clamp.
	for _, c := range alloc.Categories {
		v := s.Get(c)
		if v < 0 {
			v = 0
		}
		if v > income {
			v = income
		}
		s = s.With(c, v)
	}

	if len(notes) == 0 {
		return Result{FinalState: s, Status: StatusSuccess}
	}
	return Result{FinalState: s, Status: StatusWarning, Notes: notes}
}
