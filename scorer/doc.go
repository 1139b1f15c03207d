// Package scorer implements h, the single scalar penalty function every
// solver engine minimizes: astar and annealing call Penalty directly as
// their score/heuristic; greedy enforces the same three rules procedurally
// and never calls Penalty (spec: "greedy does not call the scorer but
// enforces the same rule procedurally").
//
// Penalty is a weighted sum of three terms — overspend, floor violations,
// and savings-target miss — calibrated so overspend and floor penalties
// always dominate the savings term, per Weights' doc comment. A score of 0
// means every hard constraint is met and the savings target is hit exactly.
package scorer
