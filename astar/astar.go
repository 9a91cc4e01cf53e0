// Package astar implements weighted shortest-path search with an optional
// admissible heuristic: A* when a heuristic is supplied, Dijkstra when it
// is nil.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: a shorter route to an already-queued state pushes
//     a duplicate heap entry; stale entries are skipped when popped.
//   - A state is settled (finalized) the first time it is popped; a
//     per-state best-cost map rejects worse re-discoveries before they are
//     pushed at all.
//   - Ties order by (cost+heuristic, cost, insertion sequence), so runs
//     are fully deterministic for a deterministic successor function.
package astar

import (
	"container/heap"
	"fmt"
)

// Search computes the minimum total cost from start to any state
// satisfying goal. The successor function produces (neighbor, incremental
// cost) pairs; costs must be non-negative (ErrNegativeCost otherwise).
//
// Time-varying environments are expressed in the state type itself (e.g.
// a coordinate plus a step index) with obstacle positions recomputed as a
// pure function of the step — the engine neither knows nor cares.
//
// Complexity: O((V + E) log V) time, O(V + E) memory under lazy
// decrease-key.
func Search[S comparable](start S, goal func(S) bool, next func(S) []Edge[S], opts ...Option[S]) (int, error) {
	if goal == nil {
		return 0, ErrNilGoal
	}
	if next == nil {
		return 0, ErrNilSuccessor
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	r := &runner[S]{
		opts:    o,
		next:    next,
		best:    make(map[S]int),
		settled: make(map[S]bool),
	}

	return r.run(start, goal)
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable] struct {
	opts    Options[S]
	next    func(S) []Edge[S]
	best    map[S]int  // state → best accumulated cost seen so far
	settled map[S]bool // states whose minimum cost is finalized
	pq      nodePQ[S]
	seq     int // insertion counter for deterministic tie-breaking
}

func (r *runner[S]) run(start S, goal func(S) bool) (int, error) {
	heap.Init(&r.pq)
	r.best[start] = 0
	r.push(start, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[S])

		// Skip stale heap entries for states settled via a cheaper route.
		if r.settled[item.state] {
			continue
		}
		r.settled[item.state] = true

		if goal(item.state) {
			return item.cost, nil
		}

		if err := r.relax(item); err != nil {
			return 0, err
		}
	}

	return 0, ErrNoPath
}

// relax examines each successor edge of the popped state and records any
// strictly better route.
func (r *runner[S]) relax(item *nodeItem[S]) error {
	for _, e := range r.next(item.state) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: cost=%d", ErrNegativeCost, e.Cost)
		}
		newCost := item.cost + e.Cost
		if newCost > r.opts.MaxCost {
			continue
		}
		if prev, seen := r.best[e.To]; seen && newCost >= prev {
			continue
		}
		r.best[e.To] = newCost
		r.push(e.To, newCost)
	}

	return nil
}

// push enqueues state with its accumulated cost and heuristic estimate.
func (r *runner[S]) push(s S, cost int) {
	priority := cost
	if h := r.opts.Heuristic; h != nil {
		priority += h(s)
	}
	r.seq++
	heap.Push(&r.pq, &nodeItem[S]{state: s, cost: cost, priority: priority, seq: r.seq})
}

// nodeItem is one frontier entry: created when pushed, discarded when
// popped or skipped as stale.
type nodeItem[S comparable] struct {
	state    S
	cost     int // accumulated cost g
	priority int // g + h
	seq      int // insertion order, the final tie-break
}

// nodePQ is a min-heap of *nodeItem ordered by (priority, cost, seq).
type nodePQ[S comparable] []*nodeItem[S]

func (pq nodePQ[S]) Len() int { return len(pq) }

func (pq nodePQ[S]) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S])) }

func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
