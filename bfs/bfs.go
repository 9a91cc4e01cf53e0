// Package bfs implements breadth-first search over arbitrary comparable
// states, returning unweighted shortest-path distances.
//
// Adjacency is generated on demand: the caller supplies a successor
// function mapping a state to the states reachable in one step. There is
// no stored graph.
package bfs

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state. One walker serves exactly one
// invocation; the visited set and queue are created fresh per call and
// discarded on return.
type walker[S comparable] struct {
	opts    Options
	next    func(S) []S
	queue   []queueItem[S]
	visited map[S]bool
}

// Distance runs breadth-first search from start and returns the minimum
// number of edges to reach a state satisfying goal.
//
// A state is marked visited at enqueue time, never enqueued twice, and the
// first dequeue satisfying goal yields its depth — so if start itself
// satisfies goal the result is 0. When the queue exhausts without a hit,
// Distance returns ErrNoPath.
//
// Complexity: O(V + E) time over the reachable state space, O(V) memory.
func Distance[S comparable](start S, goal func(S) bool, next func(S) []S, opts ...Option) (int, error) {
	if goal == nil {
		return 0, ErrNilGoal
	}
	w, err := newWalker(next, opts)
	if err != nil {
		return 0, err
	}

	w.enqueue(start, 0)
	for len(w.queue) > 0 {
		item := w.dequeue()
		if goal(item.state) {
			return item.depth, nil
		}
		w.expand(item)
	}

	return 0, ErrNoPath
}

// Distances runs breadth-first search from start with no goal and returns
// the depth of every reachable state (respecting WithMaxDepth). The start
// state maps to 0.
//
// This serves two recurring needs of the adapters: all-pairs hop counts on
// small graphs, and flood fill (the key set of the result is the reachable
// region).
func Distances[S comparable](start S, next func(S) []S, opts ...Option) (map[S]int, error) {
	w, err := newWalker(next, opts)
	if err != nil {
		return nil, err
	}

	depths := make(map[S]int)
	w.enqueue(start, 0)
	for len(w.queue) > 0 {
		item := w.dequeue()
		depths[item.state] = item.depth
		w.expand(item)
	}

	return depths, nil
}

func newWalker[S comparable](next func(S) []S, opts []Option) (*walker[S], error) {
	if next == nil {
		return nil, ErrNilSuccessor
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker[S]{
		opts:    o,
		next:    next,
		visited: make(map[S]bool),
	}, nil
}

// enqueue marks s visited at depth d and appends it to the queue.
// Marking at enqueue (not dequeue) time prevents duplicate enqueues.
func (w *walker[S]) enqueue(s S, d int) {
	w.visited[s] = true
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// dequeue pops the first item.
func (w *walker[S]) dequeue() queueItem[S] {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// expand enqueues every unseen successor of item, honoring MaxDepth.
func (w *walker[S]) expand(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.next(item.state) {
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth)
		}
	}
}
