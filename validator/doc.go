// Package validator repairs a candidate final state into one that is safe
// to hand back to a caller: non-negative, at or above every floor, and no
// larger than income.
//
// It is the last stage every solver result passes through regardless of
// which engine produced it, grounded on original_source/genai/validator.py's
// validate_final_state: a fixed five-step repair ladder rather than a
// search. Each step is allowed to leave the state unchanged; only steps
// that actually moved a value append a Note.
package validator
