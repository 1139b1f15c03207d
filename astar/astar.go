package astar

import (
	"container/heap"

	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/neighborhood"
	"github.com/solverkit/allocsolver/scorer"
)

// Solve runs the bounded best-first search described in spec §4.3. If
// state0 omits tabungan it is inserted as 0 before the search begins (its
// zero value already satisfies this, since alloc.State is a fixed array).
//
// Complexity: O(opts.MaxIterations * len(alloc.Categories) * log N) time,
// where N is the number of frontier entries ever pushed; O(N) space for the
// frontier and closed set.
func Solve(state0 alloc.State, income int, floors alloc.Floors, target int, step int, opts Options) Result {
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	startH := scorer.Penalty(state0, income, floors, target, scorer.AstarWeights)

	var counter int
	frontier := &frontierPQ{}
	heap.Init(frontier)
	heap.Push(frontier, &node{state: state0, score: startH, seq: counter})

	closed := make(map[alloc.State]bool)
	best := state0
	bestScore := startH

	for iter := 0; iter < maxIter && frontier.Len() > 0; iter++ {
		n := heap.Pop(frontier).(*node)

		if n.score < bestScore {
			best = n.state
			bestScore = n.score
		}

		if n.score == 0 {
			return Result{FinalState: n.state, Status: StatusSuccess}
		}

		if closed[n.state] {
			continue
		}
		closed[n.state] = true

		for _, nb := range neighborhood.Expand(n.state, floors, step) {
			counter++
			heap.Push(frontier, &node{
				state: nb,
				score: scorer.Penalty(nb, income, floors, target, scorer.AstarWeights),
				seq:   counter,
			})
		}
	}

	status := StatusSuccess
	if bestScore > 0 {
		status = StatusPartial
	}
	return Result{FinalState: best, Status: status}
}

// node is one frontier/closed-set entry: a candidate state, its score, and
// an insertion sequence number that breaks ties between equal scores
// without ever comparing two alloc.State values directly.
type node struct {
	state alloc.State
	score int
	seq   int
}

// frontierPQ is a min-heap of *node ordered by (score, seq) ascending,
// mirroring dijkstra.nodePQ's container/heap.Interface implementation.
type frontierPQ []*node

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score < pq[j].score
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
